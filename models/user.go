// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a person who can list items, request bookings and leave comments.
// Email is unique across all users.
type User struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Name is the display name shown to other users (booker, comment author).
	Name string `json:"name"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

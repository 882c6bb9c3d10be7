// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Comment is feedback left by a former booker after the booking ended.
type Comment struct {
	ID int64 `json:"id"`

	Text string `json:"text"`

	// ItemID references the commented item.
	ItemID int64 `json:"-"`

	// AuthorID references the user who wrote the comment.
	AuthorID int64 `json:"-"`

	// AuthorName is resolved from the author at read time.
	AuthorName string `json:"authorName"`

	Created Timestamp `json:"created"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

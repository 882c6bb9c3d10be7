// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ItemRequest is a user's posted need for an item that others may fulfil by
// listing an item with the request's ID.
type ItemRequest struct {
	ID int64 `json:"id"`

	Description string `json:"description"`

	// RequesterID references the user who posted the request.
	RequesterID int64 `json:"-"`

	Created Timestamp `json:"created"`

	// Items lists the items listed in answer to this request.
	Items []RequestItem `json:"items"`
}

// TableName returns the name of the database table
// associated with the ItemRequest model.
func (r ItemRequest) TableName() string {
	return "requests"
}

// RequestItem is the short form of an item shown under the request it
// fulfils.
type RequestItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	OwnerID   int64  `json:"ownerId"`
	RequestID int64  `json:"-"`
}

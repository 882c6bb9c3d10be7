// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Item is a thing a user offers for lending.
type Item struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Name is a short title of the item.
	Name string `json:"name"`

	// Description is a free-form description used by search.
	Description string `json:"description"`

	// Available reports whether the owner currently lends the item out.
	Available bool `json:"available"`

	// OwnerID references the user who listed the item.
	OwnerID int64 `json:"-"`

	// RequestID references the item request this item was listed for, if any.
	RequestID *int64 `json:"requestId"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemDetails is the read model of an item: the item itself, its comments
// and, for the owner, the closest approved bookings around now.
type ItemDetails struct {
	Item

	// LastBooking is the latest approved booking that has already started.
	// Only filled when the caller is the owner.
	LastBooking *BookingShort `json:"lastBooking"`

	// NextBooking is the earliest approved booking that starts in the future.
	// Only filled when the caller is the owner.
	NextBooking *BookingShort `json:"nextBooking"`

	// Comments holds every comment left for the item, oldest first.
	Comments []Comment `json:"comments"`
}

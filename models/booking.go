// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BookingStatus is the owner's decision on a booking.
type BookingStatus string

const (
	// StatusWaiting marks a booking the owner has not decided on yet.
	StatusWaiting BookingStatus = "WAITING"
	// StatusApproved marks a booking accepted by the owner.
	StatusApproved BookingStatus = "APPROVED"
	// StatusRejected marks a booking declined by the owner.
	StatusRejected BookingStatus = "REJECTED"
)

// BookingState is the filter used when listing bookings. It combines the
// status with the position of "now" relative to the booking interval.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

var bookingStates = []BookingState{
	StateAll,
	StateCurrent,
	StatePast,
	StateFuture,
	StateWaiting,
	StateRejected,
}

// ParseBookingState matches s against the known states case-insensitively.
// An empty string means [StateAll].
func ParseBookingState(s string) (BookingState, bool) {
	if s == "" {
		return StateAll, true
	}
	for _, state := range bookingStates {
		if strings.EqualFold(string(state), s) {
			return state, true
		}
	}
	return "", false
}

// Booking is a request of a booker to use an item during [Start, End).
type Booking struct {
	ID int64 `json:"id"`

	Start Timestamp `json:"start"`
	End   Timestamp `json:"end"`

	Status BookingStatus `json:"status"`

	// Item is the booked item in short form.
	Item BookingItem `json:"item"`

	// Booker is the user who requested the booking in short form.
	Booker BookingUser `json:"booker"`

	// ItemOwnerID is the owner of the booked item, used for authorization.
	ItemOwnerID int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Booking model.
func (b Booking) TableName() string {
	return "bookings"
}

// BookingItem is the short form of the booked item.
type BookingItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingUser is the short form of the booker.
type BookingUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingShort is the compact booking shown as an item's last or next booking.
type BookingShort struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    Timestamp `json:"start"`
	End      Timestamp `json:"end"`
}

// Short converts the booking to its compact form.
func (b Booking) Short() *BookingShort {
	return &BookingShort{
		ID:       b.ID,
		BookerID: b.Booker.ID,
		Start:    b.Start,
		End:      b.End,
	}
}

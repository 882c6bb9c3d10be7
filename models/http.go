// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request payloads accepted by the API. The `validate` tags are enforced by
// the gateway before a request is relayed; the core service re-checks the
// invariants it depends on.

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"notblank,email"`
}

// UpdateUserRequest is the body of PATCH /users/{userId}.
// Only non-nil fields are applied.
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitnil,notblank"`
	Email *string `json:"email" validate:"omitnil,notblank,email"`
}

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitnil,gt=0"`
}

// UpdateItemRequest is the body of PATCH /items/{itemId}.
// Only non-nil fields are applied.
type UpdateItemRequest struct {
	Name        *string `json:"name" validate:"omitnil,notblank"`
	Description *string `json:"description" validate:"omitnil,notblank"`
	Available   *bool   `json:"available"`
}

// CreateCommentRequest is the body of POST /items/{itemId}/comment.
type CreateCommentRequest struct {
	Text string `json:"text" validate:"notblank"`
}

// CreateBookingRequest is the body of POST /bookings.
type CreateBookingRequest struct {
	ItemID int64      `json:"itemId" validate:"gt=0"`
	Start  *Timestamp `json:"start" validate:"required"`
	End    *Timestamp `json:"end" validate:"required"`
}

// CreateItemRequestRequest is the body of POST /requests.
type CreateItemRequestRequest struct {
	Description string `json:"description" validate:"notblank"`
}

// Page is an offset/limit window over a list result.
type Page struct {
	From uint64
	Size uint64
}

// DefaultPage is used when the caller does not specify from/size.
var DefaultPage = Page{From: 0, Size: 10}

// BookingQuery selects bookings of a user, either as the booker or as the
// owner of the booked items.
type BookingQuery struct {
	UserID  int64
	AsOwner bool
	State   BookingState
	Page    Page
}

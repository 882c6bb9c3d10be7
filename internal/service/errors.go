package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNotItemOwner hides the item from a caller who does not own it.
	ErrNotItemOwner = errors.New("item not found for this owner")
	// ErrBookingAccessDenied hides the booking from anyone but its booker
	// and the item owner.
	ErrBookingAccessDenied = errors.New("booking not found for this user")

	ErrItemUnavailable       = errors.New("item is not available")
	ErrBookingOverlap        = errors.New("item is already booked for this period")
	ErrOwnerCannotBook       = errors.New("owner cannot book own item")
	ErrInvalidBookingPeriod  = errors.New("booking start must be before end")
	ErrBookingAlreadyDecided = errors.New("booking already decided")
	ErrCommentNotAllowed     = errors.New("comment allowed only after a completed booking")

	ErrUnknownState = errors.New("Unknown state")
	ErrInvalidPage  = errors.New("invalid pagination parameters")
)

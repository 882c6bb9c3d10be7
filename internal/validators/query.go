package validators

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/shareit/models"
)

// ParseUserID parses the X-Sharer-User-Id header value.
func ParseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return id, nil
}

// ParseID parses a positive path identifier.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPathID, raw)
	}
	return id, nil
}

// ParsePage reads from/size query values. Missing values fall back to
// [models.DefaultPage]; from must be >= 0 and size > 0.
func ParsePage(from, size string) (models.Page, error) {
	page := models.DefaultPage

	if from != "" {
		v, err := strconv.ParseInt(from, 10, 64)
		if err != nil || v < 0 {
			return models.Page{}, fmt.Errorf("%w: from=%s", ErrInvalidPagination, from)
		}
		page.From = uint64(v)
	}

	if size != "" {
		v, err := strconv.ParseInt(size, 10, 64)
		if err != nil || v <= 0 {
			return models.Page{}, fmt.Errorf("%w: size=%s", ErrInvalidPagination, size)
		}
		page.Size = uint64(v)
	}

	return page, nil
}

// ParseState parses the booking state filter case-insensitively.
func ParseState(raw string) (models.BookingState, error) {
	state, ok := models.ParseBookingState(raw)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownState, raw)
	}
	return state, nil
}

// ParseApproved parses the approved query flag of a booking decision.
func ParseApproved(raw string) (bool, error) {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidApprovedArg, raw)
	}
	return v, nil
}

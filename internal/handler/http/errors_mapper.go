package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/shareit/internal/service"
	"github.com/MKhiriev/shareit/internal/store"
	"github.com/MKhiriev/shareit/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrItemUnavailable:       http.StatusBadRequest,
	service.ErrBookingOverlap:        http.StatusBadRequest,
	service.ErrOwnerCannotBook:       http.StatusBadRequest,
	service.ErrInvalidBookingPeriod:  http.StatusBadRequest,
	service.ErrBookingAlreadyDecided: http.StatusBadRequest,
	service.ErrCommentNotAllowed:     http.StatusBadRequest,
	service.ErrUnknownState:          http.StatusBadRequest,
	service.ErrInvalidPage:           http.StatusBadRequest,
	service.ErrNotItemOwner:          http.StatusNotFound,
	service.ErrBookingAccessDenied:   http.StatusNotFound,

	validators.ErrInvalidPathID:      http.StatusBadRequest,
	validators.ErrInvalidPagination:  http.StatusBadRequest,
	validators.ErrInvalidApprovedArg: http.StatusBadRequest,

	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrItemNotFound:       http.StatusNotFound,
	store.ErrBookingNotFound:    http.StatusNotFound,
	store.ErrRequestNotFound:    http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError is the text written for a client error. Store errors
// that wrap driver output are reduced to their sentinel.
func messageFromError(err error) string {
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return store.ErrEmailAlreadyExists.Error()
	}
	return err.Error()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/shareit/internal/app"
	"github.com/MKhiriev/shareit/internal/validators"
	"github.com/MKhiriev/shareit/models"
)

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, r, "*Handler.createBooking", app.MsgInvalidDataProvided, err)
		return
	}

	booking, err := h.services.BookingService.CreateBooking(r.Context(), callerID(r), req)
	if err != nil {
		h.writeError(w, r, "*Handler.createBooking", err)
		return
	}

	h.writeJSON(w, r, booking, http.StatusCreated)
}

// decideBooking handles PATCH /bookings/{bookingId}?approved=true|false.
func (h *Handler) decideBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := pathID(r, "bookingId")
	if err != nil {
		h.writeError(w, r, "*Handler.decideBooking", err)
		return
	}

	approved, err := validators.ParseApproved(r.URL.Query().Get("approved"))
	if err != nil {
		h.writeError(w, r, "*Handler.decideBooking", err)
		return
	}

	booking, err := h.services.BookingService.DecideBooking(r.Context(), callerID(r), bookingID, approved)
	if err != nil {
		h.writeError(w, r, "*Handler.decideBooking", err)
		return
	}

	h.writeJSON(w, r, booking, http.StatusOK)
}

func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := pathID(r, "bookingId")
	if err != nil {
		h.writeError(w, r, "*Handler.getBooking", err)
		return
	}

	booking, err := h.services.BookingService.GetBooking(r.Context(), callerID(r), bookingID)
	if err != nil {
		h.writeError(w, r, "*Handler.getBooking", err)
		return
	}

	h.writeJSON(w, r, booking, http.StatusOK)
}

func (h *Handler) listBookerBookings(w http.ResponseWriter, r *http.Request) {
	h.listBookings(w, r, false)
}

func (h *Handler) listOwnerBookings(w http.ResponseWriter, r *http.Request) {
	h.listBookings(w, r, true)
}

// listBookings reads state, from and size. The state string is passed on
// unparsed so the service reports unknown values.
func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request, asOwner bool) {
	q := r.URL.Query()

	page, err := validators.ParsePage(q.Get("from"), q.Get("size"))
	if err != nil {
		h.writeError(w, r, "*Handler.listBookings", err)
		return
	}

	bookings, err := h.services.BookingService.ListBookings(r.Context(), models.BookingQuery{
		UserID:  callerID(r),
		AsOwner: asOwner,
		State:   models.BookingState(q.Get("state")),
		Page:    page,
	})
	if err != nil {
		h.writeError(w, r, "*Handler.listBookings", err)
		return
	}

	h.writeJSON(w, r, bookings, http.StatusOK)
}

package http

import (
	"net/http"

	"github.com/MKhiriev/shareit/internal/app"
	"github.com/MKhiriev/shareit/internal/validators"
	"github.com/MKhiriev/shareit/models"
)

func (h *Handler) createRequest(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, r, "*Handler.createRequest", app.MsgInvalidDataProvided, err)
		return
	}

	request, err := h.services.ItemRequestService.CreateRequest(r.Context(), callerID(r), req)
	if err != nil {
		h.writeError(w, r, "*Handler.createRequest", err)
		return
	}

	h.writeJSON(w, r, request, http.StatusCreated)
}

func (h *Handler) listOwnRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.services.ItemRequestService.ListOwnRequests(r.Context(), callerID(r))
	if err != nil {
		h.writeError(w, r, "*Handler.listOwnRequests", err)
		return
	}

	h.writeJSON(w, r, requests, http.StatusOK)
}

func (h *Handler) listOtherRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := validators.ParsePage(q.Get("from"), q.Get("size"))
	if err != nil {
		h.writeError(w, r, "*Handler.listOtherRequests", err)
		return
	}

	requests, err := h.services.ItemRequestService.ListOtherRequests(r.Context(), callerID(r), page)
	if err != nil {
		h.writeError(w, r, "*Handler.listOtherRequests", err)
		return
	}

	h.writeJSON(w, r, requests, http.StatusOK)
}

func (h *Handler) getRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r, "requestId")
	if err != nil {
		h.writeError(w, r, "*Handler.getRequest", err)
		return
	}

	request, err := h.services.ItemRequestService.GetRequest(r.Context(), callerID(r), requestID)
	if err != nil {
		h.writeError(w, r, "*Handler.getRequest", err)
		return
	}

	h.writeJSON(w, r, request, http.StatusOK)
}

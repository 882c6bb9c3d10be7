package http

import (
	"net/http"

	"github.com/MKhiriev/shareit/internal/app"
	"github.com/MKhiriev/shareit/models"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, r, "*Handler.createItem", app.MsgInvalidDataProvided, err)
		return
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), callerID(r), req)
	if err != nil {
		h.writeError(w, r, "*Handler.createItem", err)
		return
	}

	h.writeJSON(w, r, item, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		h.writeError(w, r, "*Handler.getItem", err)
		return
	}

	item, err := h.services.ItemService.GetItem(r.Context(), callerID(r), itemID)
	if err != nil {
		h.writeError(w, r, "*Handler.getItem", err)
		return
	}

	h.writeJSON(w, r, item, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		h.writeError(w, r, "*Handler.updateItem", err)
		return
	}

	var patch models.UpdateItemRequest
	if err = decodeJSON(r, &patch); err != nil {
		h.writeBadRequest(w, r, "*Handler.updateItem", app.MsgInvalidDataProvided, err)
		return
	}

	item, err := h.services.ItemService.UpdateItem(r.Context(), callerID(r), itemID, patch)
	if err != nil {
		h.writeError(w, r, "*Handler.updateItem", err)
		return
	}

	h.writeJSON(w, r, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		h.writeError(w, r, "*Handler.deleteItem", err)
		return
	}

	if err = h.services.ItemService.DeleteItem(r.Context(), callerID(r), itemID); err != nil {
		h.writeError(w, r, "*Handler.deleteItem", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOwnerItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.ListOwnerItems(r.Context(), callerID(r))
	if err != nil {
		h.writeError(w, r, "*Handler.listOwnerItems", err)
		return
	}

	h.writeJSON(w, r, items, http.StatusOK)
}

func (h *Handler) searchItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.SearchItems(r.Context(), r.URL.Query().Get("text"))
	if err != nil {
		h.writeError(w, r, "*Handler.searchItems", err)
		return
	}

	h.writeJSON(w, r, items, http.StatusOK)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		h.writeError(w, r, "*Handler.addComment", err)
		return
	}

	var req models.CreateCommentRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, r, "*Handler.addComment", app.MsgInvalidDataProvided, err)
		return
	}

	comment, err := h.services.ItemService.AddComment(r.Context(), callerID(r), itemID, req)
	if err != nil {
		h.writeError(w, r, "*Handler.addComment", err)
		return
	}

	h.writeJSON(w, r, comment, http.StatusCreated)
}

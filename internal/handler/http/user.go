package http

import (
	"net/http"

	"github.com/MKhiriev/shareit/internal/app"
	"github.com/MKhiriev/shareit/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeBadRequest(w, r, "*Handler.createUser", app.MsgInvalidDataProvided, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), models.User{Name: req.Name, Email: req.Email})
	if err != nil {
		h.writeError(w, r, "*Handler.createUser", err)
		return
	}

	h.writeJSON(w, r, user, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		h.writeError(w, r, "*Handler.getUser", err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, "*Handler.getUser", err)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.listUsers", err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	h.writeJSON(w, r, users, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		h.writeError(w, r, "*Handler.updateUser", err)
		return
	}

	var patch models.UpdateUserRequest
	if err = decodeJSON(r, &patch); err != nil {
		h.writeBadRequest(w, r, "*Handler.updateUser", app.MsgInvalidDataProvided, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), userID, patch)
	if err != nil {
		h.writeError(w, r, "*Handler.updateUser", err)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		h.writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		h.writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

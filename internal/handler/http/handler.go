package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/shareit/internal/app"
	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/service"
	"github.com/MKhiriev/shareit/internal/utils"
	"github.com/MKhiriev/shareit/internal/validators"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// decodeJSON reads a JSON body into dst. An empty body is an error.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return errors.New("empty body")
	}
	return err
}

// pathID parses the positive integer URL parameter name.
func pathID(r *http.Request, name string) (int64, error) {
	return validators.ParseID(chi.URLParam(r, name))
}

// callerID returns the id stored by middleware.RequireUserID.
func callerID(r *http.Request) int64 {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return userID
}

// writeError logs err and writes it with the status from errorStatusMap.
// Messages of internal errors are not exposed.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}

	log.Warn().Err(err).Str("func", fn).Int("status", status).Send()
	utils.WriteError(w, messageFromError(err), status)
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, r *http.Request, fn, message string, err error) {
	logger.FromRequest(r).Warn().Err(err).Str("func", fn).Msg(message)
	utils.WriteError(w, message, http.StatusBadRequest)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

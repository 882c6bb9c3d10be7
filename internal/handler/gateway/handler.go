package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/shareit/internal/adapter"
	"github.com/MKhiriev/shareit/internal/app"
	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/utils"
	"github.com/MKhiriev/shareit/internal/validators"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	core      adapter.CoreAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(core adapter.CoreAdapter, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("gateway handler created")
	return &Handler{
		core:      core,
		validator: validator,
		logger:    logger,
	}
}

// check inspects a request before it is relayed. body is the raw request
// body, already read.
type check func(h *Handler, r *http.Request, body []byte) (message string, err error)

// forward returns a handler that runs checks in order and relays the request
// once all of them pass. The first failing check answers 400.
func (h *Handler) forward(fn string, checks ...check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Warn().Err(err).Str("func", fn).Msg("error reading request body")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		for _, c := range checks {
			if message, err := c(h, r, body); err != nil {
				log.Warn().Err(err).Str("func", fn).Msg("request rejected")
				utils.WriteError(w, message, http.StatusBadRequest)
				return
			}
		}

		h.relay(w, r, fn, body)
	}
}

func (h *Handler) relay(w http.ResponseWriter, r *http.Request, fn string, body []byte) {
	resp, err := h.core.Relay(r.Context(), adapter.RelayRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header,
		Body:   body,
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("core service unreachable")
		utils.WriteError(w, app.MsgServiceUnavailable, http.StatusInternalServerError)
		return
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.StatusCode)
	if len(resp.Body) > 0 {
		if _, err = w.Write(resp.Body); err != nil {
			logger.FromRequest(r).Err(err).Str("func", fn).Msg("error writing response")
		}
	}
}

// pathID rejects a non-positive or non-numeric URL parameter.
func pathID(name string) check {
	return func(_ *Handler, r *http.Request, _ []byte) (string, error) {
		if _, err := validators.ParseID(chi.URLParam(r, name)); err != nil {
			return app.MsgInvalidID, err
		}
		return "", nil
	}
}

func pagination(_ *Handler, r *http.Request, _ []byte) (string, error) {
	q := r.URL.Query()
	if _, err := validators.ParsePage(q.Get("from"), q.Get("size")); err != nil {
		return app.MsgInvalidPagination, err
	}
	return "", nil
}

// bookingState accepts an absent state, meaning ALL.
func bookingState(_ *Handler, r *http.Request, _ []byte) (string, error) {
	if _, err := validators.ParseState(r.URL.Query().Get("state")); err != nil {
		return err.Error(), err
	}
	return "", nil
}

func approved(_ *Handler, r *http.Request, _ []byte) (string, error) {
	if _, err := validators.ParseApproved(r.URL.Query().Get("approved")); err != nil {
		return err.Error(), err
	}
	return "", nil
}

// jsonBody decodes the body into T and validates it.
func jsonBody[T any]() check {
	return func(h *Handler, r *http.Request, body []byte) (string, error) {
		if len(body) == 0 {
			return app.MsgInvalidDataProvided, errors.New("empty body")
		}

		var dst T
		if err := json.Unmarshal(body, &dst); err != nil {
			return app.MsgInvalidDataProvided, err
		}

		if err := h.validator.Validate(r.Context(), dst); err != nil {
			return err.Error(), err
		}
		return "", nil
	}
}

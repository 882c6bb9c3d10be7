package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/shareit/internal/config"
	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/utils"
)

// Headers copied from the gateway request to the core service.
const (
	HeaderUserID  = "X-Sharer-User-Id"
	HeaderTraceID = "X-Trace-ID"
)

var forwardedHeaders = []string{HeaderUserID, HeaderTraceID, "Content-Type", "Accept"}

type httpCoreAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCoreAdapter constructs an HTTP implementation of [CoreAdapter]
// targeting cfg.ServerURL with cfg.RequestTimeout per request.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a URL.
func NewHTTPCoreAdapter(cfg config.Gateway, logger *logger.Logger) (CoreAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpCoreAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Relay implements [CoreAdapter].
func (h *httpCoreAdapter) Relay(ctx context.Context, req RelayRequest) (RelayResponse, error) {
	log := logger.FromContext(ctx)

	r := h.client.R().SetContext(ctx)
	for _, name := range forwardedHeaders {
		if v := req.Header.Get(name); v != "" {
			r.SetHeader(name, v)
		}
	}
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		log.Err(err).Str("func", "*httpCoreAdapter.Relay").
			Str("method", req.Method).Str("path", req.Path).
			Msg("error relaying request to core service")
		return RelayResponse{}, fmt.Errorf("%w: %w", ErrCoreUnavailable, err)
	}

	log.Debug().Str("func", "*httpCoreAdapter.Relay").
		Str("method", req.Method).Str("path", req.Path).
		Int("status", resp.StatusCode()).Msg("relayed")

	return RelayResponse{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Header:      resp.Header(),
		Body:        resp.Body(),
	}, nil
}

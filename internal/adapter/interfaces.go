// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport the gateway uses to reach the
// ShareIt core service.
//
// The primary abstraction is [CoreAdapter]. It forwards a validated request
// unchanged and hands back the core service's status, content type and body
// so the gateway can copy them to its own response. The package ships an
// HTTP implementation built on resty ([NewHTTPCoreAdapter]).
//
// Transport failures (connection refused, timeouts) are reported as
// [ErrCoreUnavailable]; any HTTP response, including 4xx and 5xx, is a
// successful relay.
package adapter

import (
	"context"
	"net/http"
	"net/url"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/core_adapter_mock.go -package=mock

// CoreAdapter relays requests to the core service.
type CoreAdapter interface {
	// Relay sends req to the core service and returns its response verbatim.
	Relay(ctx context.Context, req RelayRequest) (RelayResponse, error)
}

// RelayRequest is a request as received by the gateway.
type RelayRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// RelayResponse is the core service's answer.
type RelayResponse struct {
	StatusCode  int
	ContentType string
	Header      http.Header
	Body        []byte
}

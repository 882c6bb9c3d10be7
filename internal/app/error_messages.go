// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// ShareIt server handlers, the gateway, and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoUserIDProvided is returned when the X-Sharer-User-Id header is
	// missing, not a number, or not positive.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgInvalidID is returned when a path identifier is not a positive
	// integer.
	MsgInvalidID = "invalid id"

	// MsgInvalidPagination is returned when from is negative or size is not
	// positive.
	MsgInvalidPagination = "invalid pagination parameters"

	// MsgServiceUnavailable is returned by the gateway when the core server
	// cannot be reached.
	MsgServiceUnavailable = "core service unavailable"

	// MsgTooManyRequests is returned by the gateway rate limiter.
	MsgTooManyRequests = "too many requests"
)

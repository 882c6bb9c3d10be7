// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway implements the public HTTP front door of ShareIt.
//
// The gateway exposes the same routes as the core service. Each request is
// checked before it leaves the process: the X-Sharer-User-Id header on the
// /items, /bookings and /requests routes, path identifiers, pagination,
// booking state and approval flags, and the JSON body against the
// `validate` tags of the request models. Requests that pass are relayed
// verbatim through an [adapter.CoreAdapter] and the core service's status,
// content type and body are copied back to the client.
//
// Rejected requests never reach the core service. A per-IP token bucket
// answers 429 when a client exceeds the configured rate.
package gateway

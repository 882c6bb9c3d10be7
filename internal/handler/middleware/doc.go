// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package middleware holds the HTTP middleware shared by the core server and
// the gateway: trace ids, access logging, gzip, the X-Sharer-User-Id
// header check, per-client rate limiting and the 404 fallback for
// unsupported methods.
//
// Every middleware has the chi-compatible signature
// func(http.Handler) http.Handler and writes failures as the JSON
// `{"error": message}` body.
package middleware

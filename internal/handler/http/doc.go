// Package http implements the REST transport of the ShareIt core server.
//
// It wires chi routes for users, items, bookings and item requests, decodes
// JSON bodies, reads the caller from the X-Sharer-User-Id header and maps
// service and store errors to HTTP statuses. Tracing, access logging and
// compression come from the shared middleware package.
package http

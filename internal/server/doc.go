// Package server runs the transports of the ShareIt binaries.
//
// [NewServer] builds the core service's HTTP API and optional gRPC health
// endpoint; [NewGatewayServer] builds the gateway's HTTP front door. Both
// block in RunServer until SIGINT, SIGTERM or SIGQUIT and then shut every
// transport down gracefully.
package server

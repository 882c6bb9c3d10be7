package server

// Server is a set of transports sharing one lifecycle.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down.
	RunServer()

	// Shutdown stops every transport, letting in-flight requests finish.
	Shutdown()
}

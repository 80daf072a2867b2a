package server

// Server is the lifecycle of the catalog server process.
type Server interface {
	// RunServer starts the HTTP API and the background workers, then blocks
	// until SIGINT, SIGTERM or SIGQUIT arrives and shutdown has finished.
	RunServer()

	// Shutdown stops the HTTP listener, waiting for in-flight requests, and
	// then the background workers.
	Shutdown()
}

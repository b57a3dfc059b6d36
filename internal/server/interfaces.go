package server

// Server is the lifecycle of the running API process.
type Server interface {
	// RunServer blocks until a termination signal arrives and the HTTP
	// server has drained.
	RunServer()

	Shutdown()
}

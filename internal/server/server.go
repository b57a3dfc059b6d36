package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/handler"
	"github.com/MKhiriev/go-contacts/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down
// gracefully.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx, nil); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until ctx is done. ready, when non-nil, receives the bound
// address once the listener is open.
func (s *server) run(ctx context.Context, ready chan<- string) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	listener, err := s.httpServer.listen()
	if err != nil {
		return err
	}
	if ready != nil {
		ready <- listener.Addr().String()
	}

	served := make(chan struct{})
	go func() {
		s.httpServer.serve(listener)
		close(served)
	}()

	<-ctx.Done()
	s.Shutdown()
	<-served

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

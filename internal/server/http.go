package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type httpServer struct {
	server *http.Server

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// listen binds the configured address. Serve is split from it so that the
// bound address is known before requests are accepted.
func (h *httpServer) listen() (net.Listener, error) {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("HTTP server listen on %s: %w", h.server.Addr, err)
	}
	return listener, nil
}

func (h *httpServer) serve(listener net.Listener) {
	h.logger.Info().Str("address", listener.Addr().String()).Msg("Launching HTTP server")
	if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server Serve")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}

package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/playwise/kidsync/internal/config"
	"github.com/playwise/kidsync/internal/logger"
)

// StatusServer serves the local status endpoint over loopback HTTP.
type StatusServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewStatusServer creates the loopback HTTP server for the status endpoint.
func NewStatusServer(handler *Handler, cfg config.ClientServer, logger *logger.Logger) *StatusServer {
	return &StatusServer{
		server: &http.Server{
			Addr:    cfg.Address,
			Handler: handler.Init(),
		},
		logger: logger,
	}
}

// Run starts serving and blocks until the server stops.
// A graceful Shutdown is not reported as an error.
func (s *StatusServer) Run() error {
	s.logger.Info().Str("address", s.server.Addr).Msg("launching status HTTP server")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *StatusServer) Shutdown(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("status HTTP server shutdown")
	}
}

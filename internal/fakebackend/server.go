package fakebackend

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/sparknest-admin/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server runs a Handler on an address until its context is cancelled.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(addr string, h *Handler, logger *logger.Logger) *Server {
	logger.Info().Str("addr", addr).Msg("creating fake backend server...")
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           h.Init(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Run listens on the configured address and blocks until ctx is done, then
// shuts the server down gracefully. ready, when non-nil, receives the bound
// address once the listener is open.
func (s *Server) Run(ctx context.Context, ready func(addr string)) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	if ready != nil {
		ready(ln.Addr().String())
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("Launching fake backend")
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Msg("fake backend Shutdown")
		return err
	}

	s.logger.Info().Msg("fake backend shut down gracefully")
	return nil
}

package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/cjrsolutions/cjrweb/internal/module"
)

// SignalContext returns a context cancelled by an interrupt or terminate
// signal.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// Shutdown stops accepting requests, then shuts the modules down in reverse
// boot order.
func (s *Server) Shutdown(ctx context.Context) error {
	httpErr := s.E.Shutdown(ctx)
	modErr := module.ShutdownAll(ctx, s.modules)
	return errors.Join(httpErr, modErr)
}

// Package server manages the HTTP server lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Config for the HTTP server runner.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Runner owns the HTTP server and its graceful shutdown.
type Runner struct {
	handler http.Handler
	config  Config
	logger  *slog.Logger
}

// NewRunner creates a new runner.
func NewRunner(handler http.Handler, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
	return &Runner{
		handler: handler,
		config:  cfg,
		logger:  logger,
	}
}

// Run starts the HTTP server.
// It blocks until the context is canceled or the server fails. Shutdown is
// graceful, bounded by ShutdownTimeout; in-flight requests get to finish.
func (r *Runner) Run(ctx context.Context) error {
	srv := &http.Server{Addr: r.config.Addr, Handler: r.handler}

	// Use errgroup to tie the serve loop and the shutdown watcher together
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		r.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	r.logger.Info("server stopped")
	return err
}

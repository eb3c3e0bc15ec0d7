package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httphandler "github.com/ericfisherdev/credcheck/internal/adapter/driving/http"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the verification HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup signal-based context (SIGINT, SIGTERM).
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", a.cfg.ListenAddr)
			if err != nil {
				return err
			}
			return a.serve(ctx, ln)
		},
	}
}

// serve runs the HTTP API on ln until ctx is done, then drains in-flight
// requests for up to 10s.
func (a *app) serve(ctx context.Context, ln net.Listener) error {
	verifier, err := a.newVerifier()
	if err != nil {
		_ = ln.Close()
		return err
	}

	apiHandler := httphandler.NewHandler(verifier, a.cfg.LookupTimeout, a.logger)

	srv := &http.Server{
		Handler:           httphandler.NewServeMux(apiHandler, a.logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	a.logger.Info("credcheck started",
		"listen_addr", ln.Addr().String(),
		"backend", a.cfg.Backend,
	)

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}
	a.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", "error", err)
	}

	a.logger.Info("shutdown complete")
	return nil
}

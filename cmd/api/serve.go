// ABOUTME: serve command starts the HTTP server
// ABOUTME: Shuts down gracefully on SIGINT or SIGTERM

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"shopthelook-api/api"
	"shopthelook-api/pkg/featureflags"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

func runServe(ctx context.Context, port string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Server.Port = port
	}

	a, err := newApp(ctx, cfg, featureflags.NewEnvManager(""))
	if err != nil {
		return err
	}
	defer a.Close()

	humaAPI, router, stopLimiter := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     a.logger,
		RateLimit:  cfg.RateLimit.Requests,
		RateWindow: cfg.RateLimit.Window,
	})
	defer stopLimiter()

	api.RegisterRoutes(humaAPI, api.Services{
		Search:    a.search,
		Pinterest: a.pinterest,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-serveErr:
		if ok {
			a.logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-sigCtx.Done():
	}

	a.logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("shutdown: %w", err)
	}

	a.logger.Info("Server stopped", nil)
	return nil
}

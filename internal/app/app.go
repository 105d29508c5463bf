package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/heartmarshall/bpe-analyzer/internal/config"
)

// Run is the server entry point. It serves the HTTP API until ctx is
// cancelled, then drains in-flight requests within the configured
// shutdown timeout.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}
	return Serve(ctx, ln, cfg, logger)
}

// Serve is Run on an existing listener. The listener is closed on return.
func Serve(ctx context.Context, ln net.Listener, cfg *config.Config, logger *slog.Logger) error {
	router := NewRouter(cfg, logger)
	defer router.Close()

	srv := &http.Server{
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	logger.Info("starting server",
		slog.String("version", BuildVersion()),
		slog.String("addr", ln.Addr().String()),
		slog.String("log_level", cfg.Log.Level),
		slog.Int64("upload_max_bytes", cfg.Upload.MaxBytes),
		slog.Int("rate_limit_rpm", cfg.RateLimit.RequestsPerMinute),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

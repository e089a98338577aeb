package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/thronelight/platform/internal/config"
	"github.com/thronelight/platform/internal/transport/middleware"
	"github.com/thronelight/platform/internal/transport/rest"
)

// Run loads configuration, wires the services and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("narration", cfg.NarrationEnabled()),
	)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           NewHandler(cfg, c, limiter, logger),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case serveErr = <-errCh:
		logger.Error("http server failed", slog.String("error", serveErr.Error()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}
	c.Close(shutdownCtx)
	logger.Info("stopped")

	if serveErr != nil {
		return fmt.Errorf("app.Run: %w", serveErr)
	}
	return nil
}

// NewHandler builds the HTTP handler over a wired container.
func NewHandler(cfg *config.Config, c *Container, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	checks := []rest.Check{{Name: "database", Pinger: c.Pool}}
	if c.Redis != nil {
		checks = append(checks, rest.Check{
			Name:     "redis",
			Pinger:   rest.PingFunc(func(ctx context.Context) error { return c.Redis.Ping(ctx).Err() }),
			Optional: true,
		})
	}

	svc := rest.Services{
		Sessions:   c.Sessions,
		Admin:      c.Admin,
		Audit:      c.Audit,
		Partners:   c.Partners,
		Payments:   c.Payments,
		Orders:     c.Orders,
		Library:    c.Library,
		Content:    c.Content,
		Gatherings: c.Gatherings,
	}
	if c.Narration != nil {
		svc.Narration = c.Narration
	}

	return rest.NewRouter(rest.RouterConfig{
		Auth:      cfg.Auth,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		SiteURL:   cfg.Server.SiteURL,
		Version:   Version,
		Checks:    checks,
		Limiter:   limiter,
		Logger:    logger,
	}, svc)
}

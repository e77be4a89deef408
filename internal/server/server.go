package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/telemetry"
	mw "github.com/DjordjeVuckovic/recipe-hunter/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

type Server struct {
	Echo *echo.Echo

	cfg *Config
}

func NewServer(e *echo.Echo, cfg *Config, collector *telemetry.Collector) *Server {
	e.DisableHTTP2 = !cfg.UseHttp2
	e.HideBanner = true
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	s := &Server{
		Echo: e,
		cfg:  cfg,
	}

	s.setupMiddlewares(collector)

	return s
}

func (s *Server) setupMiddlewares(collector *telemetry.Collector) {
	s.Echo.Use(mw.Logger(mw.SkipPaths("/health", "/metrics")))
	s.Echo.Use(middleware.Recover())
	if collector != nil {
		s.Echo.Use(collector.Middleware())
	}
	s.Echo.Use(middleware.BodyLimit(s.cfg.BodyLimit))
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
}

// SetupOpenApi serves the registered swagger documentation under path.
func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", s.cfg.Port, "http2", s.cfg.UseHttp2)
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	slog.Info("Shutting down server")
	return s.Echo.Shutdown(shutdownCtx)
}

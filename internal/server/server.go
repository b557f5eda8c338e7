package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibdrv/internal/config"
	"github.com/agbru/fibdrv/internal/device"
	apperrors "github.com/agbru/fibdrv/internal/errors"
	"github.com/agbru/fibdrv/internal/logging"
)

const (
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
)

// Server is the HTTP host of one device.
type Server struct {
	device     *device.Device
	cfg        config.AppConfig
	httpServer *http.Server
	metrics    *Metrics
	logger     logging.Logger
	security   SecurityConfig
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and lifecycle logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics shares a Metrics instance, typically one already attached to
// the device as its observer.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithSecurityConfig replaces DefaultSecurityConfig.
func WithSecurityConfig(sc SecurityConfig) Option {
	return func(s *Server) { s.security = sc }
}

// NewServer creates a host for dev. cfg.Addr and cfg.Timeout are used by
// Run.
func NewServer(dev *device.Device, cfg config.AppConfig, opts ...Option) *Server {
	s := &Server{
		device:   dev,
		cfg:      cfg,
		logger:   logging.Nop(),
		security: DefaultSecurityConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
	return s
}

// Handler returns the routed handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/fib", s.wrap("fib", s.handleFib))
	mux.HandleFunc("/health", s.wrap("health", s.handleHealth))
	mux.HandleFunc("/metrics", s.wrap("metrics", s.handleMetrics))
	return mux
}

func (s *Server) wrap(name string, h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.metricsMiddleware(s.tracingMiddleware(name, h)))
}

// Run listens on cfg.Addr and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return apperrors.WrapError(err, "listen on %s", s.cfg.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully within cfg.Timeout. A clean shutdown returns nil; exceeding the
// limit returns an apperrors.TimeoutError.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("serving device",
			logging.String("addr", ln.Addr().String()),
			logging.String("device", s.device.Name()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down", logging.Duration("timeout", s.cfg.Timeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return apperrors.TimeoutError{Operation: "shutdown", Limit: s.cfg.Timeout}
			}
			return err
		}
		return nil
	})

	return g.Wait()
}

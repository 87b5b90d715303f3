package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/myrcvr/onboardmail/pkg/logger"
)

var (
	ErrStart    = errors.New("failed to start HTTP server")
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)

// Config holds listener settings, loaded from the environment.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithListener serves on an existing listener instead of Config.Addr.
func WithListener(l net.Listener) Option {
	return func(s *Server) { s.listener = l }
}

// Server wraps http.Server with graceful shutdown.
type Server struct {
	cfg      Config
	log      *slog.Logger
	listener net.Listener

	mu       sync.Mutex
	srv      *http.Server
	shutdown sync.Once
}

func New(cfg Config, opts ...Option) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	s := &Server{cfg: cfg, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves handler until ctx is cancelled, a termination signal arrives or
// the listener fails. A clean shutdown returns nil.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}
	s.srv = &http.Server{
		Handler:      handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}
	srv := s.srv
	s.mu.Unlock()

	ln := s.listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", s.cfg.Addr); err != nil {
			return errors.Join(ErrStart, err)
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.log.Info("http server started", logger.Component("httpserver"), slog.String("addr", ln.Addr().String()))

	var runErr error
	select {
	case <-ctx.Done():
		if err := s.Shutdown(context.Background()); err != nil {
			s.log.Error("graceful shutdown failed", logger.Component("httpserver"), logger.Error(err))
		}
		runErr = <-errCh
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	s.log.Info("http server stopped", logger.Component("httpserver"))
	return nil
}

// Shutdown stops the server, waiting up to Config.ShutdownTimeout for active
// requests. Repeated calls are no-ops.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdown.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
	})
	if err != nil {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}

package server

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

type Option func(*server)

// WithListener serves on ln instead of binding cfg's address.
func WithListener(ln net.Listener) Option {
	return func(s *server) {
		s.httpServer.listener = ln
	}
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger, opts ...Option) (Server, error) {
	if handler == nil {
		return nil, ErrNoHandler
	}

	logger.Info().Msg("creating new server...")

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = config.DefaultShutdownTimeout
	}

	s := &server{
		httpServer: &httpServer{
			server: &http.Server{
				Addr:              cfg.Address(),
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       timeout,
				WriteTimeout:      timeout,
				IdleTimeout:       2 * timeout,
				ErrorLog:          newErrorLog(logger),
			},
		},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *server) Listen() (net.Addr, error) {
	return s.httpServer.listen()
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if _, err := s.Listen(); err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case err := <-serveErr:
		// serve failed before any shutdown was requested
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down HTTP server")
	if err := s.httpServer.shutdown(s.shutdownTimeout); err != nil {
		return err
	}
	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

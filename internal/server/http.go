package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener
}

func (h *httpServer) listen() (net.Addr, error) {
	if h.listener == nil {
		ln, err := net.Listen("tcp", h.server.Addr)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrBind, h.server.Addr, err)
		}
		h.listener = ln
	}
	return h.listener.Addr(), nil
}

// serve blocks until the server is shut down; http.ErrServerClosed is not
// reported as an error.
func (h *httpServer) serve() error {
	if h.listener == nil {
		return ErrNotListening
	}
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrShutdown, err)
	}
	return nil
}

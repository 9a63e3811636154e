package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the HTTP transport.
type Server interface {
	// Listen binds the listen address and returns the bound address.
	Listen() (net.Addr, error)

	// RunServer serves on the bound listener and blocks until ctx is done,
	// a termination signal arrives or serving fails. It then shuts the
	// server down gracefully.
	RunServer(ctx context.Context) error
}

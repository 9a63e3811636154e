// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
)

var helloHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("hello"))
})

func TestNewServer_NilHandler(t *testing.T) {
	_, err := NewServer(nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoHandler)
}

func TestNewServer_DefaultAddress(t *testing.T) {
	s, err := NewServer(helloHandler, config.Server{}, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	assert.Equal(t, ":8000", srv.httpServer.server.Addr)
	assert.Equal(t, config.DefaultRequestTimeout, srv.httpServer.server.ReadTimeout)
	assert.Equal(t, config.DefaultShutdownTimeout, srv.shutdownTimeout)
}

func TestServer_RunAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s, err := NewServer(helloHandler, config.Server{ShutdownTimeout: time.Second}, logger.Nop(), WithListener(ln))
	require.NoError(t, err)

	addr, err := s.Listen()
	require.NoError(t, err)
	assert.Equal(t, ln.Addr(), addr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	var body []byte
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr.String() + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ = io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "hello", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ListenAddressInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	_, port, err := net.SplitHostPort(taken.Addr().String())
	require.NoError(t, err)

	s, err := NewServer(helloHandler, config.Server{Host: "127.0.0.1", Port: port}, logger.Nop())
	require.NoError(t, err)

	_, err = s.Listen()
	assert.ErrorIs(t, err, ErrBind)

	err = s.RunServer(context.Background())
	assert.ErrorIs(t, err, ErrBind)
}

func TestHTTPServer_ServeWithoutListener(t *testing.T) {
	h := &httpServer{server: &http.Server{}}
	assert.ErrorIs(t, h.serve(), ErrNotListening)
}

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

func healthServer(status string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.HealthResponse{Status: status, Phase: "listening"})
	}))
}

func TestRun(t *testing.T) {
	ok := healthServer("ok")
	defer ok.Close()
	degraded := healthServer("degraded")
	defer degraded.Close()

	tests := []struct {
		name   string
		addr   string
		strict bool
		want   int
	}{
		{name: "healthy", addr: ok.URL, want: 0},
		{name: "healthy strict", addr: ok.URL, strict: true, want: 0},
		{name: "degraded", addr: degraded.URL, want: 0},
		{name: "degraded strict", addr: degraded.URL, strict: true, want: 1},
		{name: "unreachable", addr: "http://127.0.0.1:1", want: 1},
		{name: "bad address", addr: "", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.addr, time.Second, tt.strict, logger.Nop()))
		})
	}
}

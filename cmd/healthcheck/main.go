// Command healthcheck probes a running go-blog-api server and exits with a
// non-zero status when it is unreachable. With -strict a degraded server
// (datastore unavailable) is reported as unhealthy too.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/adapter"
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
)

func main() {
	env := config.ParseEnvironment(os.Getenv("NODE_ENV"))
	defaultAddr := fmt.Sprintf("http://localhost:%d", config.Server{Port: os.Getenv("PORT")}.ListenPort())

	addr := flag.String("addr", defaultAddr, "server base URL")
	timeout := flag.Duration("timeout", 3*time.Second, "request timeout")
	strict := flag.Bool("strict", false, "treat a degraded server as unhealthy")
	flag.Parse()

	log := logger.NewLogger("healthcheck", env)
	os.Exit(run(*addr, *timeout, *strict, log))
}

func run(addr string, timeout time.Duration, strict bool, log *logger.Logger) int {
	api, err := adapter.NewHTTPBlogAdapter(addr, timeout, log)
	if err != nil {
		log.Err(err).Msg("error creating adapter")
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	health, err := api.Health(ctx)
	if err != nil {
		log.Err(err).Str("addr", addr).Msg("server is unreachable")
		return 1
	}

	log.Info().
		Str("status", health.Status).
		Str("phase", health.Phase).
		Str("database", health.Database).
		Str("version", health.Version).
		Msg("server answered")

	if strict && health.Status != "ok" {
		return 1
	}
	return 0
}

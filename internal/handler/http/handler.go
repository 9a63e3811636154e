package http

import (
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/monitoring"
	"github.com/MKhiriev/go-blog-api/internal/ratelimit"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/models"
)

// HealthReporter reports the current startup phase and datastore state.
type HealthReporter interface {
	Health() models.HealthResponse
}

// Options carries the pipeline dependencies of a [Handler]. Nil Limiter,
// Metrics or Health disable the corresponding feature.
type Options struct {
	Env     config.Environment
	Server  config.Server
	Limiter *ratelimit.Limiter
	KeyFunc ratelimit.KeyFunc
	Metrics *monitoring.Metrics
	Health  HealthReporter
}

type Handler struct {
	services *service.Services

	env     config.Environment
	server  config.Server
	limiter *ratelimit.Limiter
	keyFunc ratelimit.KeyFunc
	metrics *monitoring.Metrics
	health  HealthReporter

	logger *logger.Logger
}

func NewHandler(services *service.Services, opts Options, logger *logger.Logger) *Handler {
	keyFunc := opts.KeyFunc
	if keyFunc == nil {
		keyFunc = ratelimit.DefaultKeyFunc(false)
	}

	server := opts.Server
	if server.BodyLimit <= 0 {
		server.BodyLimit = config.DefaultBodyLimit
	}
	if server.CompressionThreshold <= 0 {
		server.CompressionThreshold = config.DefaultCompressionThreshold
	}
	if server.CORSOrigin == "" {
		server.CORSOrigin = config.DefaultCORSOrigin
	}

	logger.Info().Str("env", opts.Env.String()).Msg("http handler created")
	return &Handler{
		services: services,
		env:      opts.Env,
		server:   server,
		limiter:  opts.Limiter,
		keyFunc:  keyFunc,
		metrics:  opts.Metrics,
		health:   opts.Health,
		logger:   logger,
	}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-blog-api/internal/config"
	apphttp "github.com/MKhiriev/go-blog-api/internal/handler/http"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/monitoring"
	"github.com/MKhiriev/go-blog-api/internal/ratelimit"
	"github.com/MKhiriev/go-blog-api/internal/server"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/workers"
	"github.com/MKhiriev/go-blog-api/models"
)

const defaultProbeInterval = 30 * time.Second

type App struct {
	cfg    *config.StructuredConfig
	build  models.AppBuildInfo
	logger *logger.Logger

	listener      net.Listener
	registry      *prometheus.Registry
	probeInterval time.Duration

	phase   atomic.Int32
	dbState atomic.Int32
	synced  atomic.Bool
	ran     atomic.Bool
}

type Option func(*App)

// WithListener makes Run serve on ln instead of binding the configured
// address.
func WithListener(ln net.Listener) Option {
	return func(a *App) { a.listener = ln }
}

// WithProbeInterval sets how often a degraded server re-checks the
// database.
func WithProbeInterval(d time.Duration) Option {
	return func(a *App) { a.probeInterval = d }
}

func New(cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		cfg:           cfg,
		build:         build,
		logger:        logger,
		probeInterval: defaultProbeInterval,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.registry == nil {
		a.registry = prometheus.NewRegistry()
		a.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	a.setPhase(PhaseCreated)
	return a
}

// Run executes the startup sequence and serves until ctx is done or a
// termination signal arrives. It returns nil after a graceful shutdown.
func (a *App) Run(ctx context.Context) (err error) {
	if !a.ran.CompareAndSwap(false, true) {
		return ErrAlreadyRun
	}

	defer func() {
		if err != nil {
			a.logger.Err(err).Str("phase", a.Phase().String()).Msg("startup sequence aborted")
			a.setPhase(PhaseFailed)
			return
		}
		a.setPhase(PhaseStopped)
	}()

	a.logger.Info().Str("build", a.build.String()).Bool("require_database", a.cfg.Startup.RequireDatabase).Msg("starting startup sequence")

	db, err := store.NewConnect(a.cfg.Storage.DB, a.logger)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartupFailed, err)
	}
	defer func() {
		if cErr := db.Close(); cErr != nil {
			a.logger.Warn().Err(cErr).Msg("error closing database")
		}
	}()

	relations, err := store.InitRelations()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartupFailed, err)
	}
	a.setPhase(PhaseRelations)

	limitStore, closeStore, err := a.newRateLimitStore(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartupFailed, err)
	}
	defer func() {
		if cErr := closeStore(); cErr != nil {
			a.logger.Warn().Err(cErr).Msg("error closing rate limit store")
		}
	}()

	limiter, err := ratelimit.NewLimiter(limitStore, a.cfg.RateLimit.Max, a.cfg.RateLimit.Window)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartupFailed, err)
	}

	storages := store.NewStorages(db, relations, a.logger)
	services, err := service.NewServices(storages, a.cfg, a.build, a.logger)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartupFailed, err)
	}

	metrics := monitoring.NewMetrics(a.registry)
	handler := apphttp.NewHandler(services, apphttp.Options{
		Env:     a.cfg.Env,
		Server:  a.cfg.Server,
		Limiter: limiter,
		KeyFunc: ratelimit.DefaultKeyFunc(a.cfg.RateLimit.TrustProxy),
		Metrics: metrics,
		Health:  a,
	}, a.logger)
	router := handler.Init()
	a.setPhase(PhaseMiddlewareRegistered)

	if err = a.prepareDatabase(ctx, db, metrics); err != nil {
		return err
	}

	background := workers.NewWorkers(a.logger)
	if memory, ok := limitStore.(*ratelimit.MemoryStore); ok {
		background.Add(workers.Periodic(janitorInterval(limiter.Window()), func(context.Context) {
			if n := memory.Cleanup(); n > 0 {
				a.logger.Debug().Int("evicted", n).Msg("expired rate limit counters evicted")
			}
		}))
	}
	if a.DatabaseState() != DatabaseReady {
		background.Add(workers.Periodic(a.probeInterval, func(ctx context.Context) {
			a.probeDatabase(ctx, db, metrics)
		}))
	}

	var serverOpts []server.Option
	if a.listener != nil {
		serverOpts = append(serverOpts, server.WithListener(a.listener))
	}
	srv, err := server.NewServer(router, a.cfg.Server, a.logger, serverOpts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartupFailed, err)
	}

	addr, err := srv.Listen()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartupFailed, err)
	}
	a.setPhase(PhaseListening)
	a.logger.Info().Str("addr", addr.String()).Msgf("HTTP server listening on port %d", listenPort(addr, a.cfg.Server))

	workerCtx, stopWorkers := context.WithCancel(ctx)
	background.Start(workerCtx)
	defer func() {
		stopWorkers()
		background.Wait()
	}()

	return srv.RunServer(ctx)
}

// prepareDatabase runs the authenticate and sync steps and applies the
// startup policy to their failures.
func (a *App) prepareDatabase(ctx context.Context, db *store.DB, metrics *monitoring.Metrics) error {
	strict := a.cfg.Startup.RequireDatabase

	if err := a.withTimeout(ctx, db.Authenticate); err != nil {
		a.setDatabaseState(DatabaseUnavailable, metrics)
		if strict {
			return fmt.Errorf("%w: %w", ErrStartupFailed, err)
		}
		a.logger.Warn().Err(err).Msg("unable to connect to the database, continuing in degraded mode")
	} else {
		a.setDatabaseState(DatabaseReady, metrics)
	}
	a.setPhase(PhaseDatabaseAuthenticated)

	if err := a.withTimeout(ctx, db.Sync); err != nil {
		if !errors.Is(err, store.ErrDatabaseUnavailable) {
			err = fmt.Errorf("%w: %w", store.ErrDatabaseUnavailable, err)
		}
		a.setDatabaseState(DatabaseUnavailable, metrics)
		if strict {
			return fmt.Errorf("%w: %w", ErrStartupFailed, err)
		}
		a.logger.Warn().Err(err).Msg("unable to synchronize database schema, continuing in degraded mode")
	} else {
		a.synced.Store(true)
	}
	a.setPhase(PhaseSchemaSynced)

	return nil
}

// probeDatabase is run periodically in degraded mode until the database is
// reachable and the schema is synced.
func (a *App) probeDatabase(ctx context.Context, db *store.DB, metrics *monitoring.Metrics) {
	if a.DatabaseState() == DatabaseReady {
		return
	}
	if err := a.withTimeout(ctx, db.Authenticate); err != nil {
		return
	}
	if !a.synced.Load() {
		if err := a.withTimeout(ctx, db.Sync); err != nil {
			return
		}
		a.synced.Store(true)
	}

	a.setDatabaseState(DatabaseReady, metrics)
	a.logger.Info().Msg("database became available, leaving degraded mode")
}

func (a *App) newRateLimitStore(ctx context.Context) (ratelimit.Store, func() error, error) {
	s, closeFn, err := ratelimit.NewStore(ctx, a.cfg.RateLimit, a.logger)
	if err == nil {
		return s, closeFn, nil
	}
	if a.cfg.Startup.RequireDatabase || errors.Is(err, ratelimit.ErrUnknownStore) {
		return nil, nil, err
	}

	a.logger.Warn().Err(err).Msg("rate limit store unavailable, falling back to in-memory counters")
	return ratelimit.NewMemoryStore(a.cfg.RateLimit.Window), func() error { return nil }, nil
}

func (a *App) withTimeout(ctx context.Context, fn func(context.Context) error) error {
	timeout := a.cfg.Startup.DatabaseTimeout
	if timeout <= 0 {
		timeout = config.DefaultDatabaseTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(ctx)
}

func (a *App) setPhase(p Phase) {
	a.phase.Store(int32(p))
	a.logger.Debug().Str("phase", p.String()).Msg("startup phase reached")
}

func (a *App) Phase() Phase {
	return Phase(a.phase.Load())
}

func (a *App) setDatabaseState(s DatabaseState, metrics *monitoring.Metrics) {
	a.dbState.Store(int32(s))
	metrics.SetDatabaseUp(s == DatabaseReady)
}

func (a *App) DatabaseState() DatabaseState {
	return DatabaseState(a.dbState.Load())
}

// Health reports the sequencer state for GET /health.
func (a *App) Health() models.HealthResponse {
	status := "ok"
	if a.DatabaseState() != DatabaseReady {
		status = "degraded"
	}

	return models.HealthResponse{
		Status:   status,
		Phase:    a.Phase().String(),
		Database: a.DatabaseState().String(),
	}
}

// janitorInterval evicts expired counters ten times per window, but never
// more than once per second.
func janitorInterval(window time.Duration) time.Duration {
	return max(window/10, time.Second)
}

func listenPort(addr net.Addr, cfg config.Server) int {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.Port
	}
	return cfg.ListenPort()
}

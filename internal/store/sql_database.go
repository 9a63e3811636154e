package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/migrations"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// DB is the shared database handle. It carries the driver specific
// placeholder format and error classifier used by every repository.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a connection pool for cfg.Driver. No connection is made
// here: reachability is checked by [DB.Authenticate] so that the startup
// sequencer decides how to react to an unreachable database.
func NewConnect(cfg config.DB, log *logger.Logger) (*DB, error) {
	db := &DB{
		driver: cfg.Driver,
		logger: log,
	}

	dsn := cfg.DSN
	switch cfg.Driver {
	case config.DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
		dsn = sqliteDSN(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	conn, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during opening database")
		return nil, fmt.Errorf("error occured during opening database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxOpenConns)
	db.DB = conn

	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("database handle created")

	return db, nil
}

// Authenticate verifies that the database accepts connections with the
// configured credentials.
func (db *DB) Authenticate(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		db.logger.Err(err).Str("func", "*DB.Authenticate").Msg("error connecting database (ping)")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	db.logger.Info().Str("func", "*DB.Authenticate").Msg("connection has been established successfully")
	return nil
}

// Sync brings the schema up to date by applying pending migrations.
func (db *DB) Sync(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB, db.driver); err != nil {
		db.logger.Err(err).Str("func", "*DB.Sync").Msg("error synchronizing database schema")
		return err
	}

	db.logger.Info().Str("func", "*DB.Sync").Msg("database schema synced")
	return nil
}

// Driver returns the database/sql driver name the handle was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// wrapError attaches base to err unless the driver reported a transient
// failure, in which case err is reported as [ErrDatabaseUnavailable].
func (db *DB) wrapError(err error, base error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return fmt.Errorf("%w: %w", base, err)
}

// classify returns the classification of err, or NonRetryable when the
// handle has no classifier.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// sqliteDSN switches on foreign key enforcement, which sqlite leaves off
// for every new connection.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

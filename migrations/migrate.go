// Package migrations embeds the SQL schema of the blog and applies it with
// goose. Each supported driver has its own directory of migrations because
// postgres and sqlite disagree on identity columns and timestamp types.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB             = errors.New("db is nil")
	ErrUnsupportedDriver = errors.New("unsupported migration driver")
)

// dialects maps a database/sql driver name to the goose dialect and the
// embedded directory holding its migrations.
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	"pgx":     {dialect: "postgres", dir: "postgres"},
	"sqlite3": {dialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies every pending migration for driver ("pgx" or "sqlite3").
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(d.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
)

// ── NewConnect ──────────────────────────────────────────────────────────────

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewConnect_DoesNotDial(t *testing.T) {
	db, err := NewConnect(config.DB{
		Driver:       config.DriverPostgres,
		DSN:          "postgres://nobody@127.0.0.1:1/none?connect_timeout=1",
		MaxOpenConns: 2,
	}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, config.DriverPostgres, db.Driver())
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "blog.db", want: "blog.db?_foreign_keys=on"},
		{in: "file:blog.db?cache=shared", want: "file:blog.db?cache=shared&_foreign_keys=on"},
		{in: "blog.db?_foreign_keys=off", want: "blog.db?_foreign_keys=off"},
		{in: "blog.db?_fk=1", want: "blog.db?_fk=1"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.in))
		})
	}
}

// ── Authenticate ────────────────────────────────────────────────────────────

func TestAuthenticate(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer conn.Close()

	db := &DB{DB: conn, logger: logger.Nop()}

	mock.ExpectPing()
	assert.NoError(t, db.Authenticate(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("password authentication failed"))
	assert.ErrorIs(t, db.Authenticate(context.Background()), ErrDatabaseUnavailable)
}

// ── error classification ────────────────────────────────────────────────────

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "unique", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: UniqueViolation},
		{name: "foreign key", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: ForeignKeyViolation},
		{name: "wrapped unique", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation}), want: UniqueViolation},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "syntax", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: NonRetryable},
		{name: "bad conn", err: driver.ErrBadConn, want: Retryable},
		{name: "net error", err: timeoutErr{}, want: Retryable},
		{name: "plain", err: errors.New("boom"), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestWrapError(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	err := db.wrapError(driver.ErrBadConn, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
	assert.NotErrorIs(t, err, ErrExecutingQuery)

	err = db.wrapError(errors.New("boom"), ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── relations ───────────────────────────────────────────────────────────────

func TestInitRelations(t *testing.T) {
	r, err := InitRelations()
	require.NoError(t, err)

	assert.Equal(t, "users AS author ON author.id = posts.user_id", r.PostAuthor.Join())
	assert.Equal(t, "comments AS c ON c.post_id = posts.id", r.PostComments.Join())
	assert.Equal(t, "users AS author ON author.id = comments.user_id", r.CommentAuthor.Join())
	assert.Equal(t, "author.name", r.PostAuthor.Column("name"))
}

func TestRelationValidate(t *testing.T) {
	assert.ErrorIs(t, Relation{Table: "posts"}.validate(), ErrInvalidRelation)
	assert.ErrorIs(t, Relation{Kind: 7, Table: "a", Target: "b", Alias: "b", ForeignKey: "a_id"}.validate(), ErrInvalidRelation)
}

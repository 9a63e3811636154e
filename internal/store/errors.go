package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert or update would give
	// two accounts the same email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no active user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPostNotFound is returned when no active post matches the lookup.
	ErrPostNotFound = errors.New("post was not found")

	// ErrCommentNotFound is returned when no active comment matches the lookup.
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrReferencedRowNotFound is returned when a foreign key points at a
	// row that does not exist.
	ErrReferencedRowNotFound = errors.New("referenced row does not exist")

	// ErrDatabaseUnavailable is returned when the driver reports a
	// connection-level or otherwise transient failure.
	ErrDatabaseUnavailable = errors.New("database is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or an
	// INSERT ... RETURNING against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// without a result set (UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

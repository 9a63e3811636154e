package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns it with the server-assigned
// fields (ID, Role, Status, timestamps) filled in.
//
// Error handling:
//   - unique index on email → [ErrEmailAlreadyExists].
//   - anything else → [ErrExecutingQuery] or [ErrDatabaseUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Role == "" {
		user.Role = models.RoleNormal
	}

	query, args, err := insertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.translate(err)
	}

	return created, nil
}

// FindUserByID returns the active user with the given id or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUsersQuery(r.db.builder).Where("id = ?", id).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", id).Msg("error finding user")
		return models.User{}, r.translate(err)
	}

	return user, nil
}

// FindUserByEmail returns the active user with the given email or
// [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUsersQuery(r.db.builder).Where("email = ?", email).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, r.translate(err)
	}

	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUsersQuery(r.db.builder).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error querying users")
		return nil, r.db.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUser overwrites the mutable fields of an active user.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.ID).Msg("error updating user")
		return models.User{}, r.translate(err)
	}

	return updated, nil
}

// DeleteUser soft-deletes an active user.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := softDeleteQuery(r.db.builder, "users", id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execSoftDelete(ctx, r.db, query, args, ErrUserNotFound)
}

func (r *userRepository) translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	if r.db.classify(err) == UniqueViolation {
		return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	}
	return r.db.wrapError(err, ErrExecutingQuery)
}

// execSoftDelete runs a soft delete statement and reports notFound when no
// active row matched.
func execSoftDelete(ctx context.Context, db *DB, query string, args []any, notFound error) error {
	log := logger.FromContext(ctx)

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "execSoftDelete").Msg("error executing delete")
		return db.wrapError(err, ErrExecutingStatement)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

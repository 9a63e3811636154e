package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

func newTestCommentRepo(t *testing.T) (*commentRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &commentRepository{db: db, relations: newTestRelations(t), logger: logger.Nop()}, mock
}

func TestCreateComment(t *testing.T) {
	repo, mock := newTestCommentRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO comments").
		WithArgs("nice", int64(4), int64(10)).
		WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(3, "nice", 4, 10, "active", now, now))

	c, err := repo.CreateComment(context.Background(), models.Comment{Comment: "nice", UserID: 4, PostID: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID)
	assert.Equal(t, int64(10), c.PostID)
}

func TestCreateComment_MissingPost(t *testing.T) {
	repo, mock := newTestCommentRepo(t)

	mock.ExpectQuery("INSERT INTO comments").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateComment(context.Background(), models.Comment{PostID: 404})
	assert.ErrorIs(t, err, ErrReferencedRowNotFound)
}

func TestFindCommentByID(t *testing.T) {
	repo, mock := newTestCommentRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM comments JOIN users AS author ON author.id = comments.user_id WHERE comments.status = \$1 AND comments.id = \$2`).
		WithArgs("active", int64(3)).
		WillReturnRows(sqlmock.NewRows(commentWithAuthorColumns).
			AddRow(3, "nice", 4, 10, "active", now, now, 4, "Ann", "ann@example.com", "normal", "active", now, now))

	c, err := repo.FindCommentByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, c.User)
	assert.Equal(t, "Ann", c.User.Name)
}

func TestFindCommentByID_NotFound(t *testing.T) {
	repo, mock := newTestCommentRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM comments").WillReturnRows(sqlmock.NewRows(commentWithAuthorColumns))

	_, err := repo.FindCommentByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestListComments(t *testing.T) {
	repo, mock := newTestCommentRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM comments (.+) ORDER BY comments.id`).
		WillReturnRows(sqlmock.NewRows(commentWithAuthorColumns).
			AddRow(1, "a", 4, 10, "active", now, now, 4, "Ann", "ann@example.com", "normal", "active", now, now).
			AddRow(2, "b", 4, 11, "active", now, now, 4, "Ann", "ann@example.com", "normal", "active", now, now))

	comments, err := repo.ListComments(context.Background())
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestUpdateComment(t *testing.T) {
	repo, mock := newTestCommentRepo(t)
	now := time.Now()

	mock.ExpectQuery(`UPDATE comments SET comment = \$1`).
		WithArgs("edited", int64(3), "active").
		WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(3, "edited", 4, 10, "active", now, now))

	c, err := repo.UpdateComment(context.Background(), models.Comment{ID: 3, Comment: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", c.Comment)
}

func TestDeleteComment_NotFound(t *testing.T) {
	repo, mock := newTestCommentRepo(t)

	mock.ExpectExec("UPDATE comments SET status").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteComment(context.Background(), 3), ErrCommentNotFound)
}

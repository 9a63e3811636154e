package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/mock"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

func newTestCommentService(ctrl *gomock.Controller) (CommentService, *mock.MockCommentRepository, *mock.MockPostRepository) {
	comments := mock.NewMockCommentRepository(ctrl)
	posts := mock.NewMockPostRepository(ctrl)
	return NewCommentService(comments, posts, validators.NewBlogValidator(), logger.Nop()), comments, posts
}

func TestCommentService_CreateComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, comments, posts := newTestCommentService(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		posts.EXPECT().FindPostByID(ctx, int64(10)).Return(models.Post{ID: 10}, nil),
		comments.EXPECT().CreateComment(ctx, models.Comment{Comment: "nice", UserID: stranger.ID, PostID: 10}).
			Return(models.Comment{ID: 3, Comment: "nice", UserID: stranger.ID, PostID: 10}, nil),
	)

	c, err := svc.CreateComment(ctx, stranger, models.CreateCommentRequest{PostID: 10, Comment: "nice"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID)
}

func TestCommentService_CreateComment_PostMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, posts := newTestCommentService(ctrl)

	posts.EXPECT().FindPostByID(gomock.Any(), int64(404)).Return(models.Post{}, store.ErrPostNotFound)

	_, err := svc.CreateComment(context.Background(), owner, models.CreateCommentRequest{PostID: 404, Comment: "x"})
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestCommentService(ctrl)

	_, err := svc.CreateComment(context.Background(), owner, models.CreateCommentRequest{Comment: "x"})
	assert.ErrorIs(t, err, validators.ErrInvalidPostID)
}

func TestCommentService_UpdateComment(t *testing.T) {
	tests := []struct {
		name    string
		actor   models.User
		wantErr error
	}{
		{name: "owner", actor: owner},
		{name: "admin", actor: admin},
		{name: "stranger", actor: stranger, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, comments, _ := newTestCommentService(ctrl)
			ctx := context.Background()

			existing := models.Comment{ID: 3, Comment: "old", UserID: owner.ID, PostID: 10, User: &models.User{ID: owner.ID}}
			comments.EXPECT().FindCommentByID(ctx, int64(3)).Return(existing, nil)
			if tt.wantErr == nil {
				comments.EXPECT().UpdateComment(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, c models.Comment) (models.Comment, error) {
						c.User = nil
						return c, nil
					})
			}

			c, err := svc.UpdateComment(ctx, tt.actor, 3, models.UpdateCommentRequest{Comment: strPtr("edited")})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "edited", c.Comment)
			assert.NotNil(t, c.User)
		})
	}
}

func TestCommentService_DeleteComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, comments, _ := newTestCommentService(ctrl)
	ctx := context.Background()

	comments.EXPECT().FindCommentByID(ctx, int64(3)).Return(models.Comment{ID: 3, UserID: owner.ID}, nil).Times(2)
	comments.EXPECT().DeleteComment(ctx, int64(3)).Return(nil)

	assert.ErrorIs(t, svc.DeleteComment(ctx, stranger, 3), ErrForbidden)
	assert.NoError(t, svc.DeleteComment(ctx, admin, 3))
}

func TestCommentService_DeleteComment_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, comments, _ := newTestCommentService(ctrl)

	comments.EXPECT().FindCommentByID(gomock.Any(), int64(3)).Return(models.Comment{}, store.ErrCommentNotFound)

	assert.ErrorIs(t, svc.DeleteComment(context.Background(), owner, 3), store.ErrCommentNotFound)
}

func TestCommentService_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, comments, _ := newTestCommentService(ctrl)
	ctx := context.Background()

	comments.EXPECT().ListComments(ctx).Return([]models.Comment{{ID: 1}}, nil)
	comments.EXPECT().FindCommentByID(ctx, int64(1)).Return(models.Comment{ID: 1}, nil)

	list, err := svc.ListComments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	c, err := svc.GetComment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
}

package interactions_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"threadline/internal/core"
	"threadline/internal/interactions"
	"threadline/internal/persistence"
	"threadline/internal/persistence/likes"
	"threadline/internal/persistence/persistencetest"
	"threadline/internal/persistence/posts"
)

type fakeInvalidator struct {
	paths []string
}

func (f *fakeInvalidator) Invalidate(_ context.Context, path string) error {
	f.paths = append(f.paths, path)
	return nil
}

func newService(t *testing.T) (*interactions.Service, *persistence.DB, *fakeInvalidator) {
	t.Helper()

	db := persistencetest.Open(t)
	inv := &fakeInvalidator{}

	svc := &interactions.Service{
		Logger:      slog.New(slog.DiscardHandler),
		DB:          db,
		PostsRepo:   &posts.Repository{DB: db},
		LikesRepo:   &likes.Repository{DB: db},
		Invalidator: inv,
	}
	return svc, db, inv
}

func seedUser(t *testing.T, db *persistence.DB, handle string) *core.UserModel {
	t.Helper()

	user := &core.UserModel{
		ID:         uuid.NewString(),
		ExternalID: uuid.NewString(),
		Handle:     handle,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, db.Model(&core.UserModel{}).Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *persistence.DB, author *core.UserModel, content string) *core.PostModel {
	t.Helper()

	post := &core.PostModel{
		ID:        uuid.NewString(),
		AuthorID:  author.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Model(&core.PostModel{}).Create(post).Error)
	return post
}

func countRows(t *testing.T, db *persistence.DB, model any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestToggleLikeTwiceReturnsToAbsent(t *testing.T) {
	t.Parallel()

	svc, db, _ := newService(t)
	author := seedUser(t, db, "author")
	liker := seedUser(t, db, "liker")
	post := seedPost(t, db, author, "hello")

	require.NoError(t, svc.ToggleLike(t.Context(), liker.ID, post.ID))
	require.EqualValues(t, 1, countRows(t, db, &core.LikeModel{}))
	require.EqualValues(t, 1, countRows(t, db, &core.NotificationModel{}))

	var notification core.NotificationModel
	require.NoError(t, db.Model(&core.NotificationModel{}).Take(&notification).Error)
	require.Equal(t, core.NotificationLike, notification.Kind)
	require.Equal(t, author.ID, notification.RecipientID)
	require.Equal(t, liker.ID, notification.ActorID)
	require.Equal(t, post.ID, notification.PostID)
	require.Nil(t, notification.CommentID)

	// Unliking removes the like but leaves the prior notification.
	require.NoError(t, svc.ToggleLike(t.Context(), liker.ID, post.ID))
	require.EqualValues(t, 0, countRows(t, db, &core.LikeModel{}))
	require.EqualValues(t, 1, countRows(t, db, &core.NotificationModel{}))
}

func TestToggleLikeOwnPostEmitsNoNotification(t *testing.T) {
	t.Parallel()

	svc, db, _ := newService(t)
	author := seedUser(t, db, "author")
	post := seedPost(t, db, author, "hello")

	require.NoError(t, svc.ToggleLike(t.Context(), author.ID, post.ID))
	require.EqualValues(t, 1, countRows(t, db, &core.LikeModel{}))
	require.EqualValues(t, 0, countRows(t, db, &core.NotificationModel{}))
}

func TestToggleLikeMissingPost(t *testing.T) {
	t.Parallel()

	svc, db, _ := newService(t)
	liker := seedUser(t, db, "liker")

	err := svc.ToggleLike(t.Context(), liker.ID, uuid.NewString())
	require.ErrorIs(t, err, core.ErrNotFound)
	require.EqualValues(t, 0, countRows(t, db, &core.LikeModel{}))
}

func TestToggleLikeUnauthenticated(t *testing.T) {
	t.Parallel()

	svc, db, _ := newService(t)

	err := svc.ToggleLike(t.Context(), "", uuid.NewString())
	require.ErrorIs(t, err, core.ErrUnauthenticated)
	require.EqualValues(t, 0, countRows(t, db, &core.LikeModel{}))
}

func TestToggleLikeInvalidatesFeed(t *testing.T) {
	t.Parallel()

	svc, db, inv := newService(t)
	author := seedUser(t, db, "author")
	post := seedPost(t, db, author, "hello")

	require.NoError(t, svc.ToggleLike(t.Context(), author.ID, post.ID))
	require.Equal(t, []string{"/"}, inv.paths)
}

func TestCreateCommentNotifiesAuthor(t *testing.T) {
	t.Parallel()

	svc, db, _ := newService(t)
	author := seedUser(t, db, "author")
	commenter := seedUser(t, db, "commenter")
	post := seedPost(t, db, author, "hello")

	comment, err := svc.CreateComment(t.Context(), commenter.ID, post.ID, "nice!")
	require.NoError(t, err)
	require.Equal(t, "nice!", comment.Content)
	require.Equal(t, post.ID, comment.PostID)
	require.Equal(t, commenter.ID, comment.AuthorID)

	var notification core.NotificationModel
	require.NoError(t, db.Model(&core.NotificationModel{}).Take(&notification).Error)
	require.Equal(t, core.NotificationComment, notification.Kind)
	require.Equal(t, author.ID, notification.RecipientID)
	require.Equal(t, commenter.ID, notification.ActorID)
	require.Equal(t, post.ID, notification.PostID)
	require.NotNil(t, notification.CommentID)
	require.Equal(t, comment.ID, *notification.CommentID)
}

func TestCreateCommentOwnPostEmitsNoNotification(t *testing.T) {
	t.Parallel()

	svc, db, _ := newService(t)
	author := seedUser(t, db, "author")
	post := seedPost(t, db, author, "hello")

	_, err := svc.CreateComment(t.Context(), author.ID, post.ID, "replying to myself")
	require.NoError(t, err)
	require.EqualValues(t, 1, countRows(t, db, &core.CommentModel{}))
	require.EqualValues(t, 0, countRows(t, db, &core.NotificationModel{}))
}

func TestCreateCommentRequiresContent(t *testing.T) {
	t.Parallel()

	svc, db, inv := newService(t)
	author := seedUser(t, db, "author")
	commenter := seedUser(t, db, "commenter")
	post := seedPost(t, db, author, "hello")

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := svc.CreateComment(t.Context(), commenter.ID, post.ID, content)
		require.ErrorIs(t, err, core.ErrInvalidInput)
	}

	require.EqualValues(t, 0, countRows(t, db, &core.CommentModel{}))
	require.EqualValues(t, 0, countRows(t, db, &core.NotificationModel{}))
	require.Empty(t, inv.paths)
}

func TestCreateCommentMissingPost(t *testing.T) {
	t.Parallel()

	svc, db, _ := newService(t)
	commenter := seedUser(t, db, "commenter")

	_, err := svc.CreateComment(t.Context(), commenter.ID, uuid.NewString(), "hello?")
	require.ErrorIs(t, err, core.ErrNotFound)
	require.EqualValues(t, 0, countRows(t, db, &core.CommentModel{}))
}

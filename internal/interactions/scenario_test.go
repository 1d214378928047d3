package interactions_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"threadline/internal/core"
	"threadline/internal/interactions"
	"threadline/internal/persistence/likes"
	"threadline/internal/persistence/persistencetest"
	"threadline/internal/persistence/posts"
	"threadline/internal/posting"
)

// Full lifecycle of a post across three users: create, like, unlike,
// comment, and delete with the ownership guard in between.
func TestPostLifecycle(t *testing.T) {
	t.Parallel()

	db := persistencetest.Open(t)
	inv := &fakeInvalidator{}
	postsRepo := &posts.Repository{DB: db}

	poster := &posting.Service{
		Logger:      slog.New(slog.DiscardHandler),
		DB:          db,
		PostsRepo:   postsRepo,
		Invalidator: inv,
	}
	interactor := &interactions.Service{
		Logger:      slog.New(slog.DiscardHandler),
		DB:          db,
		PostsRepo:   postsRepo,
		LikesRepo:   &likes.Repository{DB: db},
		Invalidator: inv,
	}

	userA := seedUser(t, db, "a")
	userB := seedUser(t, db, "b")
	userC := seedUser(t, db, "c")

	post, err := poster.Create(t.Context(), userA.ID, "hello", "")
	require.NoError(t, err)
	require.Equal(t, userA.ID, post.AuthorID)

	// B likes A's post: one like, one LIKE notification for A.
	require.NoError(t, interactor.ToggleLike(t.Context(), userB.ID, post.ID))
	require.EqualValues(t, 1, countRows(t, db, &core.LikeModel{}))
	require.EqualValues(t, 1, countRows(t, db, &core.NotificationModel{}))

	// B unlikes: the like goes, the notification stays.
	require.NoError(t, interactor.ToggleLike(t.Context(), userB.ID, post.ID))
	require.EqualValues(t, 0, countRows(t, db, &core.LikeModel{}))
	require.EqualValues(t, 1, countRows(t, db, &core.NotificationModel{}))

	// C's empty comment is rejected with no side effects.
	_, err = interactor.CreateComment(t.Context(), userC.ID, post.ID, "")
	require.ErrorIs(t, err, core.ErrInvalidInput)
	require.EqualValues(t, 0, countRows(t, db, &core.CommentModel{}))
	require.EqualValues(t, 1, countRows(t, db, &core.NotificationModel{}))

	// C's real comment lands together with its notification.
	comment, err := interactor.CreateComment(t.Context(), userC.ID, post.ID, "nice!")
	require.NoError(t, err)
	require.EqualValues(t, 1, countRows(t, db, &core.CommentModel{}))
	require.EqualValues(t, 2, countRows(t, db, &core.NotificationModel{}))

	var commentNotification core.NotificationModel
	require.NoError(t, db.Model(&core.NotificationModel{}).
		Where("kind = ?", core.NotificationComment).
		Take(&commentNotification).Error)
	require.Equal(t, userA.ID, commentNotification.RecipientID)
	require.Equal(t, userC.ID, commentNotification.ActorID)
	require.Equal(t, comment.ID, *commentNotification.CommentID)

	// B cannot delete A's post.
	err = poster.Delete(t.Context(), userB.ID, post.ID)
	require.ErrorIs(t, err, core.ErrPermissionDenied)
	require.EqualValues(t, 1, countRows(t, db, &core.PostModel{}))

	// A can, and the dependent rows go with it.
	require.NoError(t, poster.Delete(t.Context(), userA.ID, post.ID))
	require.EqualValues(t, 0, countRows(t, db, &core.PostModel{}))
	require.EqualValues(t, 0, countRows(t, db, &core.CommentModel{}))
	require.EqualValues(t, 0, countRows(t, db, &core.NotificationModel{}))
}

package interactions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"threadline/internal/core"
	"threadline/internal/persistence"
)

type Service struct {
	Logger      *slog.Logger
	DB          core.DB
	PostsRepo   core.PostRepository
	LikesRepo   core.LikeRepository
	Invalidator core.CacheInvalidator
}

func (s *Service) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "interactions.Service")
	return nil
}

// ToggleLike flips the like state of (actorID, postID). Creating a like
// and its notification is one atomic commit; removing a like emits no
// notification and leaves prior ones untouched.
func (s *Service) ToggleLike(ctx context.Context, actorID, postID string) error {
	if actorID == "" {
		return core.ErrUnauthenticated
	}

	authorID, err := s.PostsRepo.AuthorID(ctx, postID)
	if err != nil {
		return err
	}

	existing, err := s.LikesRepo.Find(ctx, actorID, postID)
	if err != nil {
		return err
	}

	if existing != nil {
		err = s.DB.Commit(ctx,
			persistence.Delete(&core.LikeModel{}, "user_id = ? AND post_id = ?", actorID, postID),
		)
	} else {
		like := &core.LikeModel{
			ID:        uuid.NewString(),
			UserID:    actorID,
			PostID:    postID,
			CreatedAt: time.Now().UTC(),
		}

		intents := []core.Intent{persistence.Create(like)}
		if n := NotificationFor(core.NotificationLike, authorID, actorID, postID, nil); n != nil {
			intents = append(intents, persistence.Create(n))
		}

		err = s.DB.Commit(ctx, intents...)
	}
	if err != nil {
		return err
	}

	s.invalidateFeed(ctx)

	return nil
}

// CreateComment persists a comment on postID. Comment content is required;
// post content is not validated anywhere, comments are.
func (s *Service) CreateComment(ctx context.Context, actorID, postID, content string) (*core.CommentModel, error) {
	if actorID == "" {
		return nil, core.ErrUnauthenticated
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", core.ErrInvalidInput)
	}

	authorID, err := s.PostsRepo.AuthorID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &core.CommentModel{
		ID:        uuid.NewString(),
		PostID:    postID,
		AuthorID:  actorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	intents := []core.Intent{persistence.Create(comment)}
	if n := NotificationFor(core.NotificationComment, authorID, actorID, postID, &comment.ID); n != nil {
		intents = append(intents, persistence.Create(n))
	}

	if err := s.DB.Commit(ctx, intents...); err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)

	return comment, nil
}

func (s *Service) invalidateFeed(ctx context.Context) {
	if err := s.Invalidator.Invalidate(ctx, "/"); err != nil {
		s.Logger.Warn("feed invalidation failed", "error", err)
	}
}

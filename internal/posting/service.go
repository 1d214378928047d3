package posting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"threadline/internal/core"
	"threadline/internal/persistence"
)

type Service struct {
	Logger      *slog.Logger
	DB          core.DB
	PostsRepo   core.PostRepository
	Invalidator core.CacheInvalidator
}

func (s *Service) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "posting.Service")
	return nil
}

// CanDelete is the entire deletion policy: only the author may delete a
// post. No roles, no admin override.
func CanDelete(authorID, actorID string) bool {
	return authorID == actorID
}

// Create persists a new post authored by actorID. Content and image URL
// are accepted as-is.
func (s *Service) Create(ctx context.Context, actorID, content, imageURL string) (*core.PostModel, error) {
	if actorID == "" {
		return nil, core.ErrUnauthenticated
	}

	post := &core.PostModel{
		ID:        uuid.NewString(),
		AuthorID:  actorID,
		Content:   content,
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.PostsRepo.Insert(ctx, post); err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)

	return post, nil
}

// Delete removes a post and its dependent comments, likes and
// notifications in one transaction.
func (s *Service) Delete(ctx context.Context, actorID, postID string) error {
	if postID == "" {
		return fmt.Errorf("%w: empty post id", core.ErrInvalidInput)
	}
	if actorID == "" {
		return core.ErrUnauthenticated
	}

	authorID, err := s.PostsRepo.AuthorID(ctx, postID)
	if err != nil {
		return err
	}

	if !CanDelete(authorID, actorID) {
		return fmt.Errorf("%w: not the author of post %s", core.ErrPermissionDenied, postID)
	}

	err = s.DB.Commit(ctx,
		persistence.Delete(&core.NotificationModel{}, "post_id = ?", postID),
		persistence.Delete(&core.LikeModel{}, "post_id = ?", postID),
		persistence.Delete(&core.CommentModel{}, "post_id = ?", postID),
		persistence.Delete(&core.PostModel{}, "id = ?", postID),
	)
	if err != nil {
		return err
	}

	s.invalidateFeed(ctx)

	return nil
}

func (s *Service) invalidateFeed(ctx context.Context) {
	if err := s.Invalidator.Invalidate(ctx, "/"); err != nil {
		s.Logger.Warn("feed invalidation failed", "error", err)
	}
}

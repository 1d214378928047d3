package feed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"threadline/internal/core"
)

// maxPosts bounds the feed read. This is an unbounded-growth guard, not
// pagination: there is no cursor past the newest hundred posts.
const maxPosts = 100

type Service struct {
	Logger    *slog.Logger
	PostsRepo core.PostRepository
}

func (s *Service) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "feed.Service")
	return nil
}

// Posts returns the newest posts, newest first, denormalized with authors,
// ordered comments and liking users. Unlike the mutation paths, read
// failures propagate with the underlying cause: an error here has no safe
// "nothing happened" reading.
func (s *Service) Posts(ctx context.Context) ([]core.FeedPost, error) {
	posts, err := s.PostsRepo.List(ctx, maxPosts)
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}

	return lo.Map(posts, func(post core.PostModel, _ int) core.FeedPost {
		return feedPost(post)
	}), nil
}

func feedPost(post core.PostModel) core.FeedPost {
	return core.FeedPost{
		ID:       post.ID,
		Content:  post.Content,
		ImageURL: post.ImageURL,
		Author:   feedAuthor(post.Author),
		Comments: lo.Map(post.Comments, func(comment core.CommentModel, _ int) core.FeedComment {
			return core.FeedComment{
				ID:        comment.ID,
				Content:   comment.Content,
				Author:    feedAuthor(comment.Author),
				CreatedAt: comment.CreatedAt,
			}
		}),
		LikeUserIDs: lo.Map(post.Likes, func(like core.LikeModel, _ int) string {
			return like.UserID
		}),
		LikeCount:    len(post.Likes),
		CommentCount: len(post.Comments),
		CreatedAt:    post.CreatedAt,
	}
}

func feedAuthor(user *core.UserModel) core.FeedAuthor {
	if user == nil {
		return core.FeedAuthor{}
	}
	return core.FeedAuthor{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Handle:      user.Handle,
		AvatarURL:   user.AvatarURL,
	}
}

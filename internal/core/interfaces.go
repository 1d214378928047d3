package core

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Intent is a single pending write. Intents are built up by policy code and
// committed together in one transaction, so conditional side effects (like
// notifications) are decided before any statement runs.
type Intent func(tx *gorm.DB) error

type DB interface {
	Model(a any) *gorm.DB
	Commit(ctx context.Context, intents ...Intent) error
	EstimatedCount(tableName string) (int64, error)
	DB() (*sql.DB, error)
}

type UserRepository interface {
	Upsert(ctx context.Context, user *UserModel) (*UserModel, error)
	FindByID(ctx context.Context, id string) (*UserModel, error)
}

type PostRepository interface {
	Insert(ctx context.Context, post *PostModel) error
	// AuthorID loads only the author reference of a post. Returns
	// ErrNotFound when the post does not exist.
	AuthorID(ctx context.Context, postID string) (string, error)
	// List returns at most limit posts, newest first, with author,
	// comments (oldest first, with authors) and likes preloaded.
	List(ctx context.Context, limit int) ([]PostModel, error)
}

type LikeRepository interface {
	// Find returns the like for (userID, postID), or nil when absent.
	Find(ctx context.Context, userID, postID string) (*LikeModel, error)
}

type NotificationRepository interface {
	ListByRecipient(ctx context.Context, recipientID string) ([]NotificationModel, error)
}

// IdentityResolver maps a bearer token to the local user record, syncing
// the provider profile on the way. A nil user with a nil error means
// "unauthenticated": callers treat it as a silent no-op, not a failure.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*UserModel, error)
}

type PostingService interface {
	Create(ctx context.Context, actorID, content, imageURL string) (*PostModel, error)
	Delete(ctx context.Context, actorID, postID string) error
}

type InteractionService interface {
	ToggleLike(ctx context.Context, actorID, postID string) error
	CreateComment(ctx context.Context, actorID, postID, content string) (*CommentModel, error)
}

type FeedService interface {
	Posts(ctx context.Context) ([]FeedPost, error)
}

type MetricsServer interface{}

type MetricsCollector interface{}

type Migrator interface {
	Up(ctx context.Context) error
	Down(ctx context.Context) error
}

type CacheInvalidator interface {
	// Invalidate signals that the rendered view at path is stale. Best
	// effort: failures are reported but must not fail the mutation that
	// triggered them.
	Invalidate(ctx context.Context, path string) error
}

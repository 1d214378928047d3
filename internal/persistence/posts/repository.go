package posts

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"threadline/internal/core"
)

type Repository struct {
	DB core.DB
}

func (r *Repository) Insert(ctx context.Context, post *core.PostModel) error {
	return r.DB.Model(&core.PostModel{}).WithContext(ctx).Create(post).Error
}

// AuthorID fetches only the author reference, not the full row.
func (r *Repository) AuthorID(ctx context.Context, postID string) (string, error) {
	var authorID string
	err := r.DB.Model(&core.PostModel{}).
		WithContext(ctx).
		Select("author_id").
		Where("id = ?", postID).
		Take(&authorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: post %s", core.ErrNotFound, postID)
		}
		return "", err
	}
	return authorID, nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]core.PostModel, error) {
	var posts []core.PostModel
	err := r.DB.Model(&core.PostModel{}).
		WithContext(ctx).
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Preload("Likes").
		Order("created_at DESC, id").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

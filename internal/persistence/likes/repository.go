package likes

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"threadline/internal/core"
)

type Repository struct {
	DB core.DB
}

// Find returns nil without error when the (user, post) pair has no like.
func (r *Repository) Find(ctx context.Context, userID, postID string) (*core.LikeModel, error) {
	var like core.LikeModel
	err := r.DB.Model(&core.LikeModel{}).
		WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Take(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

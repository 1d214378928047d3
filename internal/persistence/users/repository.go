package users

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"threadline/internal/core"
)

type Repository struct {
	DB core.DB
}

// Upsert inserts the user keyed by its external identity, refreshing the
// profile fields when the row already exists. Returns the local record.
func (r *Repository) Upsert(ctx context.Context, user *core.UserModel) (*core.UserModel, error) {
	user.UpdatedAt = time.Now().UTC()

	err := r.DB.Model(&core.UserModel{}).
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"handle", "display_name", "avatar_url", "updated_at",
			}),
		}).
		Create(user).Error
	if err != nil {
		return nil, err
	}

	var synced core.UserModel
	err = r.DB.Model(&core.UserModel{}).
		WithContext(ctx).
		Where("external_id = ?", user.ExternalID).
		Take(&synced).Error
	if err != nil {
		return nil, err
	}
	return &synced, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*core.UserModel, error) {
	var user core.UserModel
	err := r.DB.Model(&core.UserModel{}).
		WithContext(ctx).
		Where("id = ?", id).
		Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

package notifications

import (
	"context"

	"threadline/internal/core"
)

type Repository struct {
	DB core.DB
}

func (r *Repository) ListByRecipient(ctx context.Context, recipientID string) ([]core.NotificationModel, error) {
	var rows []core.NotificationModel
	err := r.DB.Model(&core.NotificationModel{}).
		WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

package interactions

import (
	"time"

	"github.com/google/uuid"

	"threadline/internal/core"
)

// NotificationFor decides whether an interaction notifies anyone. Pure
// function over its inputs: a self-interaction (actor is the recipient)
// produces no notification, everything else produces exactly one.
func NotificationFor(kind core.NotificationKind, recipientID, actorID, postID string, commentID *string) *core.NotificationModel {
	if recipientID == actorID {
		return nil
	}

	return &core.NotificationModel{
		ID:          uuid.NewString(),
		Kind:        kind,
		RecipientID: recipientID,
		ActorID:     actorID,
		PostID:      postID,
		CommentID:   commentID,
		CreatedAt:   time.Now().UTC(),
	}
}

package api

import (
	"encoding/json"
	"net/http"
	"time"

	"threadline/internal/core"
)

// envelope is the uniform mutation result: success with an optional
// payload, or a short user-safe error message. Failure causes are not
// distinguished on the wire beyond the message text.
type envelope struct {
	Success bool     `json:"success"`
	Post    *post    `json:"post,omitempty"`
	Comment *comment `json:"comment,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageURL,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func postPayload(p *core.PostModel) *post {
	return &post{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
	}
}

func commentPayload(c *core.CommentModel) *comment {
	return &comment{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

type notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	ActorID   string    `json:"actorId"`
	PostID    string    `json:"postId"`
	CommentID *string   `json:"commentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func notificationPayloads(rows []core.NotificationModel) []notification {
	out := make([]notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, notification{
			ID:        row.ID,
			Kind:      string(row.Kind),
			ActorID:   row.ActorID,
			PostID:    row.PostID,
			CommentID: row.CommentID,
			CreatedAt: row.CreatedAt,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

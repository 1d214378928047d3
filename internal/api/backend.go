package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"threadline/internal/core"
	"threadline/internal/metrics"
)

type Backend struct {
	Logger        *slog.Logger
	Identity      core.IdentityResolver
	Posting       core.PostingService
	Interactions  core.InteractionService
	Feed          core.FeedService
	Notifications core.NotificationRepository
}

func (b *Backend) Init(_ context.Context) error {
	b.Logger = b.Logger.With("component", "api.Backend")
	return nil
}

func (b *Backend) Routes(r chi.Router) {
	r.Get("/v1/posts", b.getPosts)
	r.Post("/v1/posts", b.createPost)
	r.Delete("/v1/posts/{postID}", b.deletePost)
	r.Post("/v1/posts/{postID}/like", b.toggleLike)
	r.Post("/v1/posts/{postID}/comments", b.createComment)
	r.Get("/v1/notifications", b.getNotifications)
}

type createPostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageURL"`
}

type createCommentRequest struct {
	Content string `json:"content"`
}

func (b *Backend) createPost(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	if actor == nil {
		b.failure(w, r, "create_post", "Failed to create post", core.ErrUnauthenticated)
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		b.failure(w, r, "create_post", "Failed to create post", err)
		return
	}

	post, err := b.Posting.Create(r.Context(), actor.ID, req.Content, req.ImageURL)
	if err != nil {
		b.failure(w, r, "create_post", "Failed to create post", err)
		return
	}

	b.success(w, "create_post", envelope{Success: true, Post: postPayload(post)})
}

func (b *Backend) getPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := b.Feed.Posts(r.Context())
	if err != nil {
		// The read path propagates the underlying cause; there is no
		// "nothing happened" reading of a failed fetch.
		b.Logger.Error("get_posts failed", "error", err)
		metrics.Operations.WithLabelValues("get_posts", "failure").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	metrics.Operations.WithLabelValues("get_posts", "success").Inc()
	writeJSON(w, http.StatusOK, posts)
}

func (b *Backend) deletePost(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())

	actorID := ""
	if actor != nil {
		actorID = actor.ID
	}

	err := b.Posting.Delete(r.Context(), actorID, chi.URLParam(r, "postID"))
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			b.failure(w, r, "delete_post", "Invalid post ID", err)
		case errors.Is(err, core.ErrUnauthenticated):
			b.failure(w, r, "delete_post", "Unauthorized", err)
		case errors.Is(err, core.ErrNotFound):
			b.failure(w, r, "delete_post", "Post not found", err)
		case errors.Is(err, core.ErrPermissionDenied):
			b.failure(w, r, "delete_post", "Unauthorized - no delete permission", err)
		default:
			b.failure(w, r, "delete_post", "Failed to delete post", err)
		}
		return
	}

	b.success(w, "delete_post", envelope{Success: true})
}

func (b *Backend) toggleLike(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	if actor == nil {
		// Unauthenticated toggles no-op: the caller sees the same
		// "nothing happened" as a signed-out page would.
		b.success(w, "toggle_like", envelope{Success: true})
		return
	}

	err := b.Interactions.ToggleLike(r.Context(), actor.ID, chi.URLParam(r, "postID"))
	if err != nil {
		// Every toggle failure, not-found included, collapses to the
		// generic message; the cause stays in the server log.
		b.failure(w, r, "toggle_like", "Failed to toggle like", err)
		return
	}

	b.success(w, "toggle_like", envelope{Success: true})
}

func (b *Backend) createComment(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	if actor == nil {
		b.success(w, "create_comment", envelope{Success: true})
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		b.failure(w, r, "create_comment", "Failed to create comment", err)
		return
	}

	comment, err := b.Interactions.CreateComment(r.Context(), actor.ID, chi.URLParam(r, "postID"), req.Content)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			b.failure(w, r, "create_comment", "Content is required", err)
		} else {
			b.failure(w, r, "create_comment", "Failed to create comment", err)
		}
		return
	}

	b.success(w, "create_comment", envelope{Success: true, Comment: commentPayload(comment)})
}

func (b *Backend) getNotifications(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	if actor == nil {
		// A signed-out caller sees an empty inbox, not an error.
		metrics.Operations.WithLabelValues("get_notifications", "success").Inc()
		writeJSON(w, http.StatusOK, []notification{})
		return
	}

	rows, err := b.Notifications.ListByRecipient(r.Context(), actor.ID)
	if err != nil {
		b.Logger.Error("get_notifications failed", "error", err)
		metrics.Operations.WithLabelValues("get_notifications", "failure").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	metrics.Operations.WithLabelValues("get_notifications", "success").Inc()
	writeJSON(w, http.StatusOK, notificationPayloads(rows))
}

func (b *Backend) success(w http.ResponseWriter, operation string, env envelope) {
	metrics.Operations.WithLabelValues(operation, "success").Inc()
	writeJSON(w, http.StatusOK, env)
}

// failure logs the specific cause server-side and returns only the fixed
// user-facing message.
func (b *Backend) failure(w http.ResponseWriter, r *http.Request, operation, message string, err error) {
	b.Logger.Error(operation+" failed", "path", r.URL.Path, "error", err)
	metrics.Operations.WithLabelValues(operation, "failure").Inc()
	writeJSON(w, http.StatusOK, envelope{Success: false, Error: message})
}

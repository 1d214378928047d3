package invalidation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"threadline/internal/nats"
	"threadline/pkg/retry"
)

const maxPublishAttempts = 3

type signal struct {
	Path string `json:"path"`
}

// Invalidator tells the rendering layer which paths went stale. Delivery
// is best effort with no consistency guarantee relative to the database:
// a stale page may be served briefly after a write.
type Invalidator struct {
	Logger *slog.Logger
	NATS   *nats.NATS
}

func (i *Invalidator) Init(_ context.Context) error {
	i.Logger = i.Logger.With("component", "invalidation.Invalidator")
	return nil
}

func (i *Invalidator) Invalidate(ctx context.Context, path string) error {
	data, err := json.Marshal(signal{Path: path})
	if err != nil {
		return err
	}

	publish := retry.WrapWithRetry(func() error {
		_, err := i.NATS.JS.Publish(ctx, nats.SubjectInvalidate, data)
		return err
	}, func(_ error, attempt int) bool {
		return attempt < maxPublishAttempts
	}, 10)

	if err := publish(); err != nil {
		return fmt.Errorf("publishing invalidation of %q: %w", path, err)
	}

	i.Logger.Debug("published invalidation", "path", path)

	return nil
}

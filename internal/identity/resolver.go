package identity

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"threadline/internal/core"
	"threadline/pkg/ident"
)

// Provider verifies session tokens against the identity provider.
type Provider interface {
	Verify(ctx context.Context, token string) (*ident.Principal, error)
}

type Resolver struct {
	Logger   *slog.Logger
	Users    core.UserRepository
	Provider Provider
}

func (r *Resolver) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "identity.Resolver")
	return nil
}

// Resolve maps a session token to the local user record, refreshing the
// mirrored profile on every call. An empty or rejected token resolves to
// (nil, nil): unauthenticated callers must be indistinguishable from
// "nothing happened", never an error.
func (r *Resolver) Resolve(ctx context.Context, token string) (*core.UserModel, error) {
	if token == "" {
		return nil, nil
	}

	principal, err := r.Provider.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, ident.ErrInvalidSession) {
			return nil, nil
		}
		return nil, err
	}

	user, err := r.Users.Upsert(ctx, &core.UserModel{
		ID:          uuid.NewString(),
		ExternalID:  principal.ID,
		Handle:      principal.Handle,
		DisplayName: principal.DisplayName,
		AvatarURL:   principal.AvatarURL,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("resolved principal", "external_id", principal.ID, "user_id", user.ID)

	return user, nil
}

package ident

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

const getSession = "/v1/sessions/me"

// ErrInvalidSession means the provider rejected the token. Expected for
// expired or absent sessions, as opposed to provider outages.
var ErrInvalidSession = errors.New("invalid session")

// Principal is the provider's view of an authenticated user.
type Principal struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`

	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
}

// Verify introspects a session token and returns the principal it belongs
// to.
func (c *Client) Verify(ctx context.Context, token string) (*Principal, error) {
	res, err := c.r(ctx).
		SetAuthToken(token).
		SetResult(&Principal{}).
		Get(c.cfg.BaseURL + getSession)

	if err != nil {
		return nil, err
	}
	if res.StatusCode() == http.StatusUnauthorized || res.StatusCode() == http.StatusForbidden {
		return nil, ErrInvalidSession
	}
	if res.IsError() {
		return nil, fmt.Errorf("identity provider: %s", res.Status())
	}
	return res.Result().(*Principal), nil
}

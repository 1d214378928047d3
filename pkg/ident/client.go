// Package ident is a client for the identity provider's session
// introspection API.
package ident

import (
	"context"

	"resty.dev/v3"
)

type Client struct {
	client *resty.Client
	cfg    *ClientConfig
}

func NewClient(cfg *ClientConfig) *Client {
	client := resty.NewWithTransportSettings(cfg.TransportSettings)

	for _, m := range cfg.RequestMiddlewares {
		client.AddRequestMiddleware(m)
	}
	for _, m := range cfg.ResponseMiddlewares {
		client.AddResponseMiddleware(m)
	}

	return &Client{
		client: client,
		cfg:    cfg,
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) r(ctx context.Context) *resty.Request {
	return c.client.R().WithContext(ctx)
}

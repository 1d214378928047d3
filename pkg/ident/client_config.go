package ident

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"resty.dev/v3"
)

type ClientConfig struct {
	BaseURL string `envconfig:"IDENT_BASE_URL"`

	TransportSettings *resty.TransportSettings `ignored:"true"`

	ResponseMiddlewares []resty.ResponseMiddleware `ignored:"true"`
	RequestMiddlewares  []resty.RequestMiddleware  `ignored:"true"`
}

var defaultTransportSettings = &resty.TransportSettings{
	DialerTimeout:         1 * time.Second,
	DialerKeepAlive:       1 * time.Second,
	IdleConnTimeout:       1 * time.Second,
	TLSHandshakeTimeout:   1 * time.Second,
	ExpectContinueTimeout: 1 * time.Second,
	ResponseHeaderTimeout: 1 * time.Second,
}

// ConfigFromEnv reads the provider base URL from THREADLINE_IDENT_BASE_URL
// and fills in default transport settings.
func ConfigFromEnv() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := envconfig.Process("threadline", cfg); err != nil {
		return nil, err
	}
	cfg.TransportSettings = defaultTransportSettings
	return cfg, nil
}

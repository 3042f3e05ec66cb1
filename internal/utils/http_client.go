package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientConfig describes the transport of an API client. Zero values keep
// resty's defaults: no timeout, no rate limit, resty's own logger.
type HTTPClientConfig struct {
	// BaseURL is prepended to relative request paths. Absolute URLs are
	// sent as they are.
	BaseURL string
	Timeout time.Duration
	// Limiter throttles outgoing requests. Requests over the limit fail
	// with resty.ErrRateLimitExceeded without reaching the network.
	Limiter *rate.Limiter
	Logger  resty.Logger
	// Client, when set, supplies the transport, TLS and cookie settings.
	Client *http.Client
}

// NewHTTPClient creates an independent client with its own connection pool
// unless cfg.Client is shared.
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	var rc *resty.Client
	if cfg.Client != nil {
		rc = resty.NewWithClient(cfg.Client)
	} else {
		rc = resty.New()
	}

	if cfg.BaseURL != "" {
		rc.SetBaseURL(cfg.BaseURL)
	}
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}
	if cfg.Limiter != nil {
		rc.SetRateLimiter(cfg.Limiter)
	}
	if cfg.Logger != nil {
		rc.SetLogger(cfg.Logger)
	}

	return &HTTPClient{Client: rc}
}

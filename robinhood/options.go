package robinhood

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-robinhood/internal/logger"
)

type options struct {
	username string
	password string
	token    string
	mfaCode  string

	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	registerer prometheus.Registerer
	logger     *logger.Logger
}

// Option configures a Client.
type Option func(*options)

// WithCredentials sets the username and password submitted by Login.
func WithCredentials(username, password string) Option {
	return func(o *options) {
		o.username = username
		o.password = password
	}
}

// WithToken pre-authenticates the client with an existing session token.
func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

// WithMFACode sets the one-time code sent with the first credential login.
func WithMFACode(code string) Option {
	return func(o *options) {
		o.mfaCode = code
	}
}

// WithBaseURL overrides the API origin. Intended for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the per-request transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHTTPClient makes the client send requests through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithRateLimit rejects requests locally once more than r requests per
// second (with the given burst) are attempted. Rejected calls fail with
// resty.ErrRateLimitExceeded and never reach the network.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(o *options) {
		o.limiter = rate.NewLimiter(r, burst)
	}
}

// WithMetrics registers request metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithLogger sets the logger used for request and login events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger.FromZerolog(l)
	}
}

func defaultOptions() options {
	return options{
		baseURL: DefaultBaseURL,
		logger:  logger.Nop(),
	}
}

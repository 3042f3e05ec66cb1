package robinhood

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	assert.Equal(t, DefaultBaseURL, o.baseURL)
	assert.NotNil(t, o.logger)
	assert.Nil(t, o.limiter)
	assert.Nil(t, o.registerer)
}

func TestOptions_Apply(t *testing.T) {
	hc := &http.Client{}
	o := defaultOptions()
	for _, opt := range []Option{
		WithCredentials("alice", "secret"),
		WithToken("tok"),
		WithMFACode("123456"),
		WithTimeout(5 * time.Second),
		WithHTTPClient(hc),
		WithRateLimit(2, 4),
	} {
		opt(&o)
	}

	assert.Equal(t, "alice", o.username)
	assert.Equal(t, "secret", o.password)
	assert.Equal(t, "tok", o.token)
	assert.Equal(t, "123456", o.mfaCode)
	assert.Equal(t, 5*time.Second, o.timeout)
	assert.Same(t, hc, o.httpClient)
	require.NotNil(t, o.limiter)
	assert.Equal(t, 4, o.limiter.Burst())
}

func TestWithLogger_LogsRequests(t *testing.T) {
	f := newFakeUpstream(t)
	f.respond(http.MethodGet, "/markets/", http.StatusOK, `{"results":[]}`)

	var buf bytes.Buffer
	c := newTestClient(t, f, WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	_, err := c.Markets(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"op":"markets"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

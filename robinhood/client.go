package robinhood

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-robinhood/internal/logger"
	"github.com/MKhiriev/go-robinhood/internal/metrics"
	"github.com/MKhiriev/go-robinhood/internal/utils"
	"github.com/MKhiriev/go-robinhood/internal/validators"
	"github.com/MKhiriev/go-robinhood/models"
)

// Client is an authenticated session against the brokerage API. It is safe
// for concurrent use once Login has returned; concurrent Login calls racing
// with other operations must be serialized by the caller.
type Client struct {
	http      *utils.HTTPClient
	session   *session
	validator validators.Validator
	logger    *logger.Logger
}

var _ API = (*Client)(nil)

// New creates a client. No request is made until the first operation.
func New(opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	baseURL, err := normalizeBaseURL(o.baseURL)
	if err != nil {
		return nil, err
	}

	hc := utils.NewHTTPClient(utils.HTTPClientConfig{
		BaseURL: baseURL,
		Timeout: o.timeout,
		Limiter: o.limiter,
		Logger:  o.logger,
		Client:  o.httpClient,
	})
	if o.registerer != nil {
		collector, err := metrics.NewCollector(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("register client metrics: %w", err)
		}
		collector.Instrument(hc.Client)
	}

	return &Client{
		http:      hc,
		session:   newSession(o.username, o.password, o.token, o.mfaCode),
		validator: validators.NewOrderValidator(),
		logger:    o.logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base url %q must be absolute", raw)
	}
	return raw, nil
}

// DefaultAccountURL returns the account URL cached by the last Login, or ""
// if none has been resolved.
func (c *Client) DefaultAccountURL() string {
	return c.session.defaultAccount()
}

// newRequest builds a request carrying the current header snapshot and the
// operation name used by logs and metrics.
func (c *Client) newRequest(ctx context.Context, op string) *resty.Request {
	return c.http.R().
		SetContext(utils.WithOperation(ctx, op)).
		SetHeaders(c.session.headerSnapshot())
}

// send executes req and logs the outcome. The returned response is non-nil
// whenever err is nil; its status is not inspected here.
func (c *Client) send(op, method, path string, req *resty.Request) (*resty.Response, error) {
	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Debug().
			Str("op", op).
			Str("method", method).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("request failed")
		return nil, fmt.Errorf("%s request: %w", op, err)
	}

	c.logger.Debug().
		Str("op", op).
		Str("method", method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request completed")
	return resp, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values) (*resty.Response, error) {
	req := c.newRequest(ctx, op)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	resp, err := c.send(op, http.MethodGet, path, req)
	if err != nil {
		return nil, err
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) post(ctx context.Context, op, path string, form map[string]string) (*resty.Response, error) {
	req := c.newRequest(ctx, op)
	if form != nil {
		req.SetFormData(form)
	}
	resp, err := c.send(op, http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func decode[T any](op string, resp *resty.Response) (T, error) {
	var out T
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", op, err)
	}
	return out, nil
}

func getJSON[T any](ctx context.Context, c *Client, op, path string, query url.Values) (T, error) {
	resp, err := c.get(ctx, op, path, query)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](op, resp)
}

func postJSON[T any](ctx context.Context, c *Client, op, path string, form map[string]string) (T, error) {
	resp, err := c.post(ctx, op, path, form)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](op, resp)
}

// raw returns the body of a 2xx response unparsed. An empty body is returned
// as JSON null so the result is always valid JSON.
func raw(resp *resty.Response) json.RawMessage {
	body := resp.Body()
	if len(body) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(body)
}

// resolveAccount caches the first account URL as the default account. An
// empty account list leaves the default unset.
func (c *Client) resolveAccount(ctx context.Context) error {
	page, err := c.Accounts(ctx)
	if err != nil {
		return fmt.Errorf("resolve default account: %w", err)
	}
	if first, ok := page.First(); ok {
		c.session.setAccount(first.URL)
	}
	return nil
}

// accountForOrder returns the cached default account, resolving it first
// when the session was pre-authenticated with a token.
func (c *Client) accountForOrder(ctx context.Context) (string, error) {
	if account := c.session.defaultAccount(); account != "" {
		return account, nil
	}
	if c.session.authToken() == "" {
		return "", ErrNoAccount
	}
	if err := c.resolveAccount(ctx); err != nil {
		return "", err
	}
	if account := c.session.defaultAccount(); account != "" {
		return account, nil
	}
	return "", ErrNoAccount
}

// URL fetches an absolute hypermedia link returned by the API (pagination
// cursors, resource links) with the session headers.
func (c *Client) URL(ctx context.Context, fullURL string) (json.RawMessage, error) {
	if fullURL == "" {
		return nil, errors.New("empty url")
	}
	return c.getRaw(ctx, opURL, fullURL)
}

// NextPage follows page.Next through c and decodes it as the same page type.
// It returns false when there is no next page.
func NextPage[T any](ctx context.Context, c *Client, page models.Page[T]) (models.Page[T], bool, error) {
	if !page.HasNext() {
		return models.Page[T]{}, false, nil
	}
	next, err := getJSON[models.Page[T]](ctx, c, opURL, *page.Next, nil)
	if err != nil {
		return models.Page[T]{}, false, err
	}
	return next, true, nil
}

package robinhood

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-robinhood/models"
)

// Login authenticates the session.
//
// With a token already known (WithToken, SetAuthToken or an earlier Login)
// it only installs the Authorization header and resolves the default
// account. Otherwise it submits the credentials and any MFA code. A response
// with MFARequired set is returned as is with no state change; call
// SetMfaCode with the one-time code to continue. A response carrying neither
// a token nor an MFA request fails with *AuthError.
func (c *Client) Login(ctx context.Context) (models.LoginResponse, error) {
	if token := c.session.authToken(); token != "" {
		c.session.setToken(token)
		if err := c.resolveAccount(ctx); err != nil {
			return models.LoginResponse{}, err
		}
		c.logger.Info().Str("username", c.session.user()).Msg("session restored from token")
		return models.LoginResponse{Token: token}, nil
	}

	req := c.newRequest(ctx, opLogin).SetFormData(c.session.loginForm())
	resp, err := c.send(opLogin, http.MethodPost, endpointLogin, req)
	if err != nil {
		return models.LoginResponse{}, err
	}

	// The body decides the outcome; a 400 with mfa_required is a normal
	// first step.
	var login models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &login); err != nil {
		if resp.IsError() {
			return models.LoginResponse{}, &AuthError{StatusCode: resp.StatusCode(), Body: resp.Body()}
		}
		return models.LoginResponse{}, fmt.Errorf("decode %s response: %w", opLogin, err)
	}

	if login.MFARequired {
		c.logger.Info().
			Str("username", c.session.user()).
			Str("mfa_type", login.MFAType).
			Msg("multi-factor code required")
		return login, nil
	}
	if login.Token == "" {
		c.logger.Warn().
			Str("username", c.session.user()).
			Int("status", resp.StatusCode()).
			Msg("login rejected")
		return models.LoginResponse{}, &AuthError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}

	c.session.setToken(login.Token)
	if err = c.resolveAccount(ctx); err != nil {
		return login, err
	}
	c.logger.Info().Str("username", c.session.user()).Msg("logged in")
	return login, nil
}

// SetMfaCode stores the one-time code and re-runs Login.
func (c *Client) SetMfaCode(ctx context.Context, code string) (models.LoginResponse, error) {
	c.session.setMFACode(code)
	return c.Login(ctx)
}

// AuthToken returns the current session token, or "" if none is known.
func (c *Client) AuthToken() string {
	return c.session.authToken()
}

// SetAuthToken replaces the session token and forgets the cached default
// account. An empty token drops the Authorization header.
func (c *Client) SetAuthToken(token string) {
	c.session.setToken(token)
}

// ExpireToken revokes the token server side. The local token and headers are
// left untouched.
func (c *Client) ExpireToken(ctx context.Context) error {
	_, err := c.post(ctx, opLogout, endpointLogout, nil)
	return err
}

// RequestPasswordReset asks the API to email a password reset link.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := c.post(ctx, opPasswordReset, endpointPasswordReset, map[string]string{"email": email})
	return err
}

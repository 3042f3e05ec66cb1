// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package robinhood is a session client for the brokerage's private HTTP API.
//
// A [Client] owns the credential state of one user: the session token, an
// optional MFA code and the default account URL resolved after login. Every
// API operation is a method that builds exactly one request (two for
// [Client.Popularity]) against the fixed API origin, injects the current
// header set and decodes the JSON response into a type from the models
// package.
//
// # Authentication
//
//	c, err := robinhood.New(robinhood.WithCredentials("user", "pass"))
//	resp, err := c.Login(ctx)
//	if resp.MFARequired {
//		resp, err = c.SetMfaCode(ctx, code)
//	}
//
// A client built with [WithToken] is already authenticated; [Client.Login]
// then skips the credential round-trip and only resolves the default account.
//
// # Errors
//
// Transport failures are returned wrapped with the operation name. Non-2xx
// responses become a [*StatusError] matching one of the status sentinels
// ([ErrUnauthorized], [ErrNotFound], ...). A login response without a token is
// an [*AuthError]. Local precondition failures ([ErrNoAccount],
// [*OrderNotCancellableError], ...) are returned without touching the network.
//
// # Concurrency
//
// Methods are safe for concurrent use. The session state is replaced as a
// whole under a lock whenever the token changes, but callers must still finish
// Login before issuing authenticated calls: requests already in flight keep
// the header set they started with.
package robinhood

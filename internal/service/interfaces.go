package service

import (
	"context"

	"github.com/MKhiriev/go-robinhood/models"
)

// SessionService manages the lifetime of the brokerage session: restoring a
// persisted token, logging in with credentials and MFA, and logging out.
type SessionService interface {
	// Start authenticates the client. A sealed token stored for the
	// configured user is tried first; when the API rejects it as
	// unauthorized the stored session is dropped and a credential login
	// follows. A token obtained by a credential login is sealed and
	// persisted.
	//
	// If the API asks for a one-time code and an MFAProvider is configured,
	// the code is requested from it and submitted. Without a provider the
	// MFA response is returned with ErrMFARequired.
	Start(ctx context.Context) (models.LoginResponse, error)

	// Logout revokes the token server side, clears it locally and deletes
	// the stored session.
	Logout(ctx context.Context) error
}

// MFAProvider supplies a one-time code when the API requests one. mfaType is
// the delivery channel reported by the API (e.g. "sms", "app").
type MFAProvider func(ctx context.Context, mfaType string) (string, error)

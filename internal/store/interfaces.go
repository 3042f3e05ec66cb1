package store

import (
	"context"

	"github.com/MKhiriev/go-robinhood/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_repository_mock.go -package=mock

// SessionRepository persists sealed session tokens, one per username.
type SessionRepository interface {
	// SaveSession inserts the session or replaces the one stored for the
	// same username. CreatedAt of an existing row is kept.
	SaveSession(ctx context.Context, session models.StoredSession) error

	// GetSession returns the session stored for username, or
	// ErrSessionNotFound.
	GetSession(ctx context.Context, username string) (models.StoredSession, error)

	// DeleteSession removes the session stored for username. Deleting a
	// missing session is not an error.
	DeleteSession(ctx context.Context, username string) error
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-robinhood/internal/logger"
	"github.com/MKhiriev/go-robinhood/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository returns a SessionRepository backed by db.
func NewSessionRepository(db *DB, log *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: log,
		now:    time.Now,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.StoredSession) error {
	now := r.now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	query, args, err := buildSaveSessionQuery(session)
	if err != nil {
		r.logger.Err(err).Str("func", "SaveSession").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "SaveSession").Str("username", session.Username).Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	r.logger.Debug().Str("func", "SaveSession").Str("username", session.Username).Msg("session saved")
	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, username string) (models.StoredSession, error) {
	query, args, err := buildGetSessionQuery(username)
	if err != nil {
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.StoredSession
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.Username,
		&s.SealedToken,
		&s.Salt,
		&s.AccountURL,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredSession{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "GetSession").Str("username", username).Msg("error reading session")
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, username string) error {
	query, args, err := buildDeleteSessionQuery(username)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "DeleteSession").Str("username", username).Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

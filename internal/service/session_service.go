package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-robinhood/internal/crypto"
	"github.com/MKhiriev/go-robinhood/internal/logger"
	"github.com/MKhiriev/go-robinhood/internal/store"
	"github.com/MKhiriev/go-robinhood/models"
	"github.com/MKhiriev/go-robinhood/robinhood"
)

// SessionConfig holds the persistence settings of a SessionService.
type SessionConfig struct {
	// Username keys the stored session. Persistence is off when empty.
	Username string
	// SealKey is the passphrase the stored token is sealed with.
	SealKey string
}

type sessionService struct {
	api    robinhood.API
	repo   store.SessionRepository
	sealer crypto.TokenSealer
	mfa    MFAProvider

	username string
	sealKey  string

	logger *logger.Logger
}

// NewSessionService builds a SessionService around api. repo and sealer may
// be nil, which disables session persistence; mfa may be nil, in which case
// MFA challenges are returned to the caller.
func NewSessionService(
	api robinhood.API,
	repo store.SessionRepository,
	sealer crypto.TokenSealer,
	cfg SessionConfig,
	mfa MFAProvider,
	log *logger.Logger,
) SessionService {
	if log == nil {
		log = logger.Nop()
	}
	return &sessionService{
		api:      api,
		repo:     repo,
		sealer:   sealer,
		mfa:      mfa,
		username: cfg.Username,
		sealKey:  cfg.SealKey,
		logger:   log,
	}
}

func (s *sessionService) persistent() bool {
	return s.repo != nil && s.sealer != nil && s.username != "" && s.sealKey != ""
}

func (s *sessionService) Start(ctx context.Context) (models.LoginResponse, error) {
	if s.persistent() && s.api.AuthToken() == "" {
		resp, ok, err := s.restore(ctx)
		if err != nil {
			return models.LoginResponse{}, err
		}
		if ok {
			return resp, nil
		}
	}

	resp, err := s.api.Login(ctx)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login: %w", err)
	}

	if resp.MFARequired {
		if resp, err = s.completeMFA(ctx, resp); err != nil {
			return resp, err
		}
	}

	s.persist(ctx)
	return resp, nil
}

// restore tries the stored session. ok is false when there is nothing
// usable stored and a credential login should follow.
func (s *sessionService) restore(ctx context.Context) (models.LoginResponse, bool, error) {
	log := s.logger.With().Str("func", "restore").Str("username", s.username).Logger()

	stored, err := s.repo.GetSession(ctx, s.username)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.LoginResponse{}, false, nil
	}
	if err != nil {
		log.Warn().Err(err).Msg("cannot read stored session")
		return models.LoginResponse{}, false, nil
	}

	token, err := s.sealer.Open(stored.SealedToken, stored.Salt, s.username, s.sealKey)
	if err != nil {
		log.Warn().Err(err).Msg("cannot open stored session, discarding it")
		s.forget(ctx)
		return models.LoginResponse{}, false, nil
	}

	s.api.SetAuthToken(token)
	resp, err := s.api.Login(ctx)
	if errors.Is(err, robinhood.ErrUnauthorized) {
		log.Info().Msg("stored session expired, logging in again")
		s.api.SetAuthToken("")
		s.forget(ctx)
		return models.LoginResponse{}, false, nil
	}
	if err != nil {
		return models.LoginResponse{}, false, fmt.Errorf("login with stored session: %w", err)
	}

	log.Info().Msg("session restored")
	return resp, true, nil
}

func (s *sessionService) completeMFA(ctx context.Context, challenge models.LoginResponse) (models.LoginResponse, error) {
	if s.mfa == nil {
		return challenge, ErrMFARequired
	}

	code, err := s.mfa(ctx, challenge.MFAType)
	if err != nil {
		return challenge, fmt.Errorf("%w: %w", ErrMFAProvider, err)
	}

	resp, err := s.api.SetMfaCode(ctx, code)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login with mfa code: %w", err)
	}
	if resp.MFARequired {
		return resp, ErrMFARequired
	}
	return resp, nil
}

// persist seals and stores the current token. Failures are logged only;
// the session itself is usable.
func (s *sessionService) persist(ctx context.Context) {
	if !s.persistent() {
		return
	}

	token := s.api.AuthToken()
	if token == "" {
		return
	}

	sealed, salt, err := s.sealer.Seal(token, s.username, s.sealKey)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "persist").Msg("cannot seal session token")
		return
	}

	err = s.repo.SaveSession(ctx, models.StoredSession{
		Username:    s.username,
		SealedToken: sealed,
		Salt:        salt,
		AccountURL:  s.api.DefaultAccountURL(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("func", "persist").Msg("cannot save session")
	}
}

func (s *sessionService) forget(ctx context.Context) {
	if err := s.repo.DeleteSession(ctx, s.username); err != nil {
		s.logger.Warn().Err(err).Str("func", "forget").Msg("cannot delete stored session")
	}
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.api.ExpireToken(ctx); err != nil {
		return fmt.Errorf("expire token: %w", err)
	}
	s.api.SetAuthToken("")

	if s.persistent() {
		if err := s.repo.DeleteSession(ctx, s.username); err != nil {
			return fmt.Errorf("delete stored session: %w", err)
		}
	}
	return nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/sparknest-admin/internal/adapter"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/internal/store"
	"github.com/MKhiriev/sparknest-admin/internal/utils"
	"github.com/MKhiriev/sparknest-admin/models"
)

type clientSessionService struct {
	store   store.SecureStore
	adapter adapter.ServerAdapter

	// transitions serialises Restore, Login and Logout so the persisted
	// record and the in-memory state change together.
	transitions sync.Mutex

	mu      sync.RWMutex
	session models.Session

	logger *logger.Logger
}

// NewClientSessionService returns an Anonymous session service. Call Restore
// to pick up a persisted session.
func NewClientSessionService(secureStore store.SecureStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) SessionService {
	return &clientSessionService{
		store:   secureStore,
		adapter: serverAdapter,
		logger:  logger,
	}
}

func (s *clientSessionService) Restore(ctx context.Context) (models.Session, error) {
	s.transitions.Lock()
	defer s.transitions.Unlock()

	token, err := s.store.Get(ctx, models.SessionTokenKey)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		return s.becomeAnonymous(), nil
	case errors.Is(err, store.ErrOpeningValue):
		// sealed with another secret: unusable, start over
		s.logger.Warn().Err(err).Msg("persisted session cannot be opened, clearing it")
		return s.becomeAnonymous(), s.clearPersisted(ctx)
	case err != nil:
		return s.becomeAnonymous(), fmt.Errorf("read session token: %w", err)
	}

	if len(token) == 0 {
		return s.becomeAnonymous(), nil
	}

	user, err := s.readUser(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("session token without user data, clearing it")
		return s.becomeAnonymous(), s.clearPersisted(ctx)
	}

	sess := s.becomeAuthenticated(string(token), user)
	s.logger.Info().Str("email", user.Email).Msg("session restored")
	return sess, nil
}

func (s *clientSessionService) readUser(ctx context.Context) (models.User, error) {
	raw, err := s.store.Get(ctx, models.SessionUserKey)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrCorruptSession, err)
	}

	var user models.User
	if err = json.Unmarshal(raw, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrCorruptSession, err)
	}
	return user, nil
}

func (s *clientSessionService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	const op = "login"

	s.transitions.Lock()
	defer s.transitions.Unlock()

	resp, err := s.adapter.Login(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", creds.Email).Msg("login rejected")
		return s.Session(), newAuthError(op, err)
	}
	if resp.Token == "" {
		return s.Session(), newAuthError(op, ErrEmptyToken)
	}

	userData, err := json.Marshal(resp.User)
	if err != nil {
		return s.Session(), newAuthError(op, fmt.Errorf("%w: %w", ErrPersistSession, err))
	}

	err = s.store.SetMany(ctx, map[string][]byte{
		models.SessionTokenKey: []byte(resp.Token),
		models.SessionUserKey:  userData,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session")
		return s.Session(), newAuthError(op, fmt.Errorf("%w: %w", ErrPersistSession, err))
	}

	sess := s.becomeAuthenticated(resp.Token, resp.User)
	s.logger.Info().Str("email", resp.User.Email).Msg("logged in")
	return sess, nil
}

func (s *clientSessionService) Register(ctx context.Context, reg models.Registration) (string, error) {
	msg, err := s.adapter.Register(ctx, reg)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", reg.Email).Msg("registration rejected")
		return "", newAuthError("register", err)
	}

	s.logger.Info().Str("email", reg.Email).Msg("account registered")
	return msg, nil
}

// Logout always ends Anonymous. A store failure is reported but does not
// keep the session alive in memory.
func (s *clientSessionService) Logout(ctx context.Context) error {
	s.transitions.Lock()
	defer s.transitions.Unlock()

	s.becomeAnonymous()
	if err := s.clearPersisted(ctx); err != nil {
		return err
	}

	s.logger.Info().Msg("logged out")
	return nil
}

func (s *clientSessionService) clearPersisted(ctx context.Context) error {
	if err := s.store.DeleteMany(ctx, models.SessionTokenKey, models.SessionUserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *clientSessionService) becomeAuthenticated(token string, user models.User) models.Session {
	sess := models.Session{State: models.Authenticated, User: user}
	if exp, err := utils.TokenExpiry(token); err == nil {
		sess.ExpiresAt = exp
	}

	s.adapter.SetToken(token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = sess
	return sess
}

func (s *clientSessionService) becomeAnonymous() models.Session {
	s.adapter.SetToken("")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = models.Session{State: models.Anonymous}
	return s.session
}

func (s *clientSessionService) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *clientSessionService) State() models.SessionState {
	return s.Session().State
}

func (s *clientSessionService) CurrentUser() (models.User, bool) {
	sess := s.Session()
	return sess.User, sess.State == models.Authenticated
}

func (s *clientSessionService) SessionExpiry() (time.Time, bool) {
	sess := s.Session()
	return sess.ExpiresAt, !sess.ExpiresAt.IsZero()
}

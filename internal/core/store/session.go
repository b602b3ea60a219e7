package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shopstream/storefront/internal/core/domain"
	"github.com/shopstream/storefront/internal/core/ports"
)

// Session holds the authenticated user, mediates login/signup/logout and
// persists the session under the "token" and "user" storage keys. One
// instance is constructed at process start and shared by reference; all
// state transitions are applied atomically under the mutex.
type Session struct {
	mu      sync.Mutex
	user    *domain.User
	token   string
	loading bool

	storage ports.Storage
	backend ports.Backend
	logger  zerolog.Logger
}

// NewSession builds the session store and synchronously rehydrates it.
// Both the token and the user record must be present for the session to
// be restored; a user record that fails to parse wipes both keys and
// leaves the session unauthenticated (silent reset, logged only).
func NewSession(storage ports.Storage, backend ports.Backend, logger zerolog.Logger) *Session {
	s := &Session{storage: storage, backend: backend, logger: logger}
	s.rehydrate()
	return s
}

func (s *Session) rehydrate() {
	token, err := s.storage.Get(ports.KeyToken)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			s.logger.Warn().Err(err).Msg("session: token read failed")
		}
		return
	}

	raw, err := s.storage.Get(ports.KeyUser)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			s.logger.Warn().Err(err).Msg("session: user read failed")
		}
		return
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Warn().Err(err).Msg("session: stored user corrupt, resetting")
		_ = s.storage.Delete(ports.KeyToken)
		_ = s.storage.Delete(ports.KeyUser)
		return
	}

	s.user = &user
	s.token = string(token)
}

// Login exchanges credentials for a bearer token. On success the token
// and a normalized user are persisted and the session becomes
// authenticated; on failure the session stays unauthenticated and the
// error wraps domain.ErrAuthFailed for the caller's messaging. Either
// the full (token, user) pair commits or nothing does.
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.setLoading(true)

	res, err := s.backend.Login(ctx, ports.Credentials{Email: email, Password: password})
	if err != nil {
		s.setLoading(false)
		s.logger.Debug().Err(err).Msg("session: login failed")
		return fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}

	return s.commit(res)
}

// Signup registers a new account. Failure semantics match Login.
func (s *Session) Signup(ctx context.Context, username, email, password string) error {
	s.setLoading(true)

	res, err := s.backend.Signup(ctx, ports.SignupInput{Username: username, Email: email, Password: password})
	if err != nil {
		s.setLoading(false)
		s.logger.Debug().Err(err).Msg("session: signup failed")
		return fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}

	return s.commit(res)
}

// commit persists the auth result and flips the session to authenticated.
// The auth response does not echo username or email, so the stored user
// carries the placeholder name and an empty email.
func (s *Session) commit(res *ports.AuthResult) error {
	user := &domain.User{
		ID:       res.UserID,
		Username: domain.PlaceholderUsername,
		Email:    "",
		Admin:    res.Admin,
	}

	raw, err := json.Marshal(user)
	if err != nil {
		s.setLoading(false)
		return fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}

	if err := s.storage.Set(ports.KeyToken, []byte(res.Token)); err != nil {
		s.setLoading(false)
		return fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}
	if err := s.storage.Set(ports.KeyUser, raw); err != nil {
		_ = s.storage.Delete(ports.KeyToken)
		s.setLoading(false)
		return fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}

	s.mu.Lock()
	s.user = user
	s.token = res.Token
	s.loading = false
	s.mu.Unlock()

	s.logger.Info().Str("user_id", user.ID).Bool("admin", user.Admin).Msg("session: authenticated")
	return nil
}

// Logout clears the persisted token and user record and resets the
// session. It is synchronous and never fails.
func (s *Session) Logout() {
	_ = s.storage.Delete(ports.KeyToken)
	_ = s.storage.Delete(ports.KeyUser)

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.loading = false
	s.mu.Unlock()

	s.logger.Info().Msg("session: logged out")
}

// User returns a copy of the authenticated user, or nil when logged out.
func (s *Session) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the persisted bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Loading reports whether an authentication request is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Package session owns the client's authentication state: which user,
// if any, is logged in and the bearer token proving it. The store is
// the only component that mutates this state; everything else reads the
// token by value and never persists it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jkimani/safarihub/internal/logging"
	"github.com/jkimani/safarihub/internal/models"
	"github.com/jkimani/safarihub/internal/session/credentials"
)

// ErrRegisteredLoginFailed means registration succeeded but the
// follow-up login did not, leaving the store unauthenticated. Callers
// can unwrap it to get the login failure. The account exists; the user
// should log in manually rather than register again.
var ErrRegisteredLoginFailed = errors.New("registered, but automatic login failed")

// AuthAPI is the slice of the API client the store depends on.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (models.AuthResult, error)
	Register(ctx context.Context, reg models.Registration) error
}

// Store is the process-wide session singleton. It moves between two
// states, unauthenticated and authenticated, and keeps its in-memory
// state and the durable credential store in agreement: both are
// written on login and cleared on logout, inside the same operation.
type Store struct {
	api   AuthAPI
	creds credentials.Repository
	log   logging.Logger

	mu    sync.RWMutex
	user  *models.User
	token string
}

// New returns an unauthenticated store. Call Restore to pick up a
// persisted session from a previous run.
func New(api AuthAPI, creds credentials.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{api: api, creds: creds, log: log}
}

// Restore loads a persisted credential pair, if any, and becomes
// authenticated with it. The restore is local only: no round-trip
// verifies the token is still accepted, a stale token simply fails on
// its first use.
func (s *Store) Restore(ctx context.Context) error {
	pair, err := s.creds.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if pair == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(pair.User, &user); err != nil {
		// A pair we cannot decode is useless; drop it rather than
		// restoring a half-valid session.
		s.log.Warn(ctx, "discarding unreadable persisted session", "error", err)
		if cerr := s.creds.Clear(ctx); cerr != nil {
			s.log.Error(ctx, "failed to clear unreadable credentials", "error", cerr)
		}
		return nil
	}

	s.mu.Lock()
	s.user = &user
	s.token = pair.Token
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "email", user.Email, "role", user.Role)
	return nil
}

// Login authenticates against the backend and, on success, stores the
// resulting pair in memory and durably. On failure the current state,
// whatever it was, is untouched.
func (s *Store) Login(ctx context.Context, email, password string) (models.User, error) {
	res, err := s.api.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		return models.User{}, err
	}
	if err := s.adopt(ctx, res); err != nil {
		return models.User{}, err
	}
	s.log.Info(ctx, "logged in", "email", res.User.Email, "role", res.User.Role)
	return res.User, nil
}

// Register creates the account and immediately logs in with the same
// credentials, since registration alone yields no token. If the login
// step fails the store stays unauthenticated and the returned error
// wraps both ErrRegisteredLoginFailed and the login failure.
func (s *Store) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	if err := s.api.Register(ctx, reg); err != nil {
		return models.User{}, err
	}

	user, err := s.Login(ctx, reg.Email, reg.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrRegisteredLoginFailed, err)
	}
	return user, nil
}

// adopt installs an authenticated pair in memory and durable storage.
func (s *Store) adopt(ctx context.Context, res models.AuthResult) error {
	raw, err := json.Marshal(res.User)
	if err != nil {
		return fmt.Errorf("encode user record: %w", err)
	}
	if err := s.creds.Save(ctx, &credentials.Pair{Token: res.AccessToken, User: raw}); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	user := res.User
	s.mu.Lock()
	s.user = &user
	s.token = res.AccessToken
	s.mu.Unlock()
	return nil
}

// Logout clears the in-memory session unconditionally and wipes the
// durable pair. A storage failure is logged but does not resurrect the
// session; logout never fails from the caller's point of view.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.creds.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear persisted session", "error", err)
	}
	s.log.Info(ctx, "logged out")
}

// Authenticated reports whether a user is logged in.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user record, or nil when
// unauthenticated.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

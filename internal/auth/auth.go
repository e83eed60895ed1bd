// Package auth handles account registration, login and opaque-token
// sessions backed by the store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/mindflow/internal/store"
)

const (
	// SessionTTL is how long a login lasts.
	SessionTTL = 7 * 24 * time.Hour

	bcryptCost = 10

	minUsernameLen = 3
	minPasswordLen = 6
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords, so the response does not leak which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken is returned on registration conflicts.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrSessionExpired is returned for known but stale tokens.
	ErrSessionExpired = errors.New("session expired")

	// ErrWeakCredentials is returned when username or password is too short.
	ErrWeakCredentials = fmt.Errorf("username must be at least %d and password at least %d characters", minUsernameLen, minPasswordLen)
)

// Service issues and validates sessions.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// NewService builds an auth service. now may be nil for wall-clock time.
func NewService(s *store.Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: s, now: now}
}

// Register creates an account and an initial session.
func (s *Service) Register(ctx context.Context, username, password string) (*store.User, string, error) {
	if len(username) < minUsernameLen || len(password) < minPasswordLen {
		return nil, "", ErrWeakCredentials
	}

	if _, err := s.store.UserByUsername(ctx, username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, username, string(hash))
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials and issues a session.
func (s *Service) Login(ctx context.Context, username, password string) (*store.User, string, error) {
	user, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes a session. Unknown tokens are not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, token)
}

// Authenticate resolves a session token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (*store.User, error) {
	sess, err := s.store.SessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if s.now().After(sess.ExpiresAt) {
		// Clean up on the way out; failure here doesn't matter.
		_ = s.store.DeleteSession(ctx, token)
		return nil, ErrSessionExpired
	}

	return s.store.UserByID(ctx, sess.UserID)
}

func (s *Service) issueSession(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.store.CreateSession(ctx, token, userID, s.now().Add(SessionTTL)); err != nil {
		return "", err
	}
	return token, nil
}

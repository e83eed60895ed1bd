package store

import (
	"context"
	"fmt"
	"time"
)

// CreateUser inserts a new account. The password must already be hashed.
func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (*User, error) {
	user := &User{Username: username, Password: passwordHash}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// UserByID looks up an account by primary key.
func (s *Store) UserByID(ctx context.Context, id string) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "user")
	}
	return &user, nil
}

// UserByUsername looks up an account by its unique username.
func (s *Store) UserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, notFound(err, "user")
	}
	return &user, nil
}

// CreateSession inserts a login session.
func (s *Store) CreateSession(ctx context.Context, token, userID string, expiresAt time.Time) error {
	sess := &Session{Token: token, UserID: userID, ExpiresAt: expiresAt}
	if err := s.db.WithContext(ctx).Create(sess).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// SessionByToken returns the session for a token, expired or not. Expiry
// is the auth layer's call.
func (s *Store) SessionByToken(ctx context.Context, token string) (*Session, error) {
	var sess Session
	if err := s.db.WithContext(ctx).First(&sess, "token = ?", token).Error; err != nil {
		return nil, notFound(err, "session")
	}
	return &sess, nil
}

// DeleteSession removes a session. Deleting a missing token is not an
// error; logout is idempotent.
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Delete(&Session{}, "token = ?", token).Error
}

// DeleteExpiredSessions clears sessions past their expiry.
func (s *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	return s.db.WithContext(ctx).Delete(&Session{}, "expires_at < ?", now).Error
}

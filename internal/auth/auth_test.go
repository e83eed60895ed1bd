package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/mindflow/internal/store"
)

func testService(t *testing.T, now func() time.Time) *Service {
	t.Helper()
	s, err := store.Open(store.Config{Driver: "sqlite", DSN: ":memory:"})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s, now)
}

func TestRegister_IssuesWorkingSession(t *testing.T) {
	svc := testService(t, nil)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "sam", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("no session token issued")
	}
	if user.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}

	got, err := svc.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated as %s, want %s", got.ID, user.ID)
	}
}

func TestRegister_RejectsDuplicateUsername(t *testing.T) {
	svc := testService(t, nil)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "sam", "secret123"); err != nil {
		t.Fatal(err)
	}
	_, _, err := svc.Register(ctx, "sam", "different1")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegister_RejectsWeakCredentials(t *testing.T) {
	svc := testService(t, nil)
	ctx := context.Background()

	tests := []struct{ username, password string }{
		{"ab", "secret123"},
		{"sam", "short"},
	}
	for _, tt := range tests {
		if _, _, err := svc.Register(ctx, tt.username, tt.password); !errors.Is(err, ErrWeakCredentials) {
			t.Errorf("Register(%q, %q): expected ErrWeakCredentials, got %v", tt.username, tt.password, err)
		}
	}
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	svc := testService(t, nil)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "sam", "secret123"); err != nil {
		t.Fatal(err)
	}

	_, _, wrongPass := svc.Login(ctx, "sam", "wrongpass")
	_, _, unknown := svc.Login(ctx, "nobody", "secret123")
	if !errors.Is(wrongPass, ErrInvalidCredentials) || !errors.Is(unknown, ErrInvalidCredentials) {
		t.Errorf("got %v and %v, want ErrInvalidCredentials for both", wrongPass, unknown)
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	svc := testService(t, nil)
	ctx := context.Background()

	_, token, err := svc.Register(ctx, "sam", "secret123")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials after logout, got %v", err)
	}
}

func TestAuthenticate_ExpiredSession(t *testing.T) {
	current := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc := testService(t, func() time.Time { return current })
	ctx := context.Background()

	_, token, err := svc.Register(ctx, "sam", "secret123")
	if err != nil {
		t.Fatal(err)
	}

	current = current.Add(SessionTTL + time.Hour)
	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
	// The expired token is gone for good.
	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials on retry, got %v", err)
	}
}

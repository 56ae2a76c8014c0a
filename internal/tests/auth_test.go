package tests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"petroserve/internal/repository/memory"
	"petroserve/internal/service"
)

// ──────────────────────────────────────────────
// LOGIN FLOW
// ──────────────────────────────────────────────

func TestLogin_AllDemoCredentialsSucceed(t *testing.T) {
	t.Parallel()

	demoAccounts := []struct {
		email    string
		password string
		name     string
	}{
		{"demo@petroserve.com", "demo123", "Demo User"},
		{"admin@petroserve.com", "admin123", "Admin User"},
		{"test@example.com", "test123", "Test User"},
	}

	sessions := NewMockSessionStore()
	authService := service.NewAuthService(memory.NewUserRepository(), sessions, 0)

	for _, account := range demoAccounts {
		result, err := authService.AttemptLogin(context.Background(), account.email, account.password)
		if err != nil {
			t.Fatalf("login %s: unexpected error: %v", account.email, err)
		}

		if result.User.Name != account.name {
			t.Errorf("login %s: expected name %q, got %q", account.email, account.name, result.User.Name)
		}
		if result.Token == "" {
			t.Errorf("login %s: expected a session token", account.email)
		}

		// The persisted session must resolve back to the same user.
		user, err := sessions.Get(context.Background(), result.Token)
		if err != nil {
			t.Fatalf("session get: unexpected error: %v", err)
		}
		if user == nil || user.Email != account.email {
			t.Errorf("login %s: session did not round-trip", account.email)
		}
	}

	if sessions.CreateCallCount != 3 {
		t.Errorf("expected 3 sessions created, got %d", sessions.CreateCallCount)
	}
}

func TestLogin_InvalidCredentialsPersistNoSession(t *testing.T) {
	t.Parallel()

	attempts := []struct {
		email    string
		password string
	}{
		{"demo@petroserve.com", "wrong"},
		{"nobody@petroserve.com", "demo123"},
		{"", ""},
		{"demo@petroserve.com", ""},
	}

	sessions := NewMockSessionStore()
	authService := service.NewAuthService(memory.NewUserRepository(), sessions, 0)

	for _, attempt := range attempts {
		_, err := authService.AttemptLogin(context.Background(), attempt.email, attempt.password)
		if !errors.Is(err, service.ErrInvalidCredentials) {
			t.Errorf("login %q/%q: expected ErrInvalidCredentials, got %v", attempt.email, attempt.password, err)
		}
	}

	if sessions.SessionCount() != 0 {
		t.Errorf("expected no sessions persisted, got %d", sessions.SessionCount())
	}
}

func TestLogin_DelayIsAbandonedOnCancel(t *testing.T) {
	t.Parallel()

	sessions := NewMockSessionStore()
	authService := service.NewAuthService(memory.NewUserRepository(), sessions, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := authService.AttemptLogin(ctx, "demo@petroserve.com", "demo123")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("cancelled login should return well before the full delay")
	}

	// No state update after teardown.
	if sessions.SessionCount() != 0 {
		t.Errorf("expected no session after cancelled login, got %d", sessions.SessionCount())
	}
}

// ──────────────────────────────────────────────
// SIGNUP FLOW
// ──────────────────────────────────────────────

func TestLogin_SessionWriteFailureSurfaces(t *testing.T) {
	t.Parallel()

	sessions := NewMockSessionStore()
	sessions.CreateError = errors.New("redis connection refused")
	authService := service.NewAuthService(memory.NewUserRepository(), sessions, 0)

	// Valid credentials with no session to show for them is a failure,
	// not a half-logged-in state.
	_, err := authService.AttemptLogin(context.Background(), "demo@petroserve.com", "demo123")
	if !errors.Is(err, sessions.CreateError) {
		t.Fatalf("expected the store error, got %v", err)
	}
	if sessions.SessionCount() != 0 {
		t.Errorf("expected no sessions after a failed write, got %d", sessions.SessionCount())
	}
}

func TestSignup_AlwaysSucceedsWithoutPersisting(t *testing.T) {
	t.Parallel()

	sessions := NewMockSessionStore()
	userRepo := memory.NewUserRepository()
	authService := service.NewAuthService(userRepo, sessions, 0)

	result, err := authService.AttemptSignup(context.Background(), "New User", "new@example.com", "secret", "+1999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Message == "" {
		t.Error("expected a signup message directing to the demo login")
	}

	// Signup is a stub: the new account must not be able to log in.
	_, err = authService.AttemptLogin(context.Background(), "new@example.com", "secret")
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected signup to create no account, got %v", err)
	}
}

func TestSignup_KnownEmailPointsAtLogin(t *testing.T) {
	t.Parallel()

	sessions := NewMockSessionStore()
	authService := service.NewAuthService(memory.NewUserRepository(), sessions, 0)

	result, err := authService.AttemptSignup(context.Background(), "Demo Again", "demo@petroserve.com", "secret", "+1999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Message, "already registered") {
		t.Errorf("expected an already-registered message, got %q", result.Message)
	}
	if !strings.Contains(result.Message, "demo@petroserve.com") {
		t.Errorf("expected the message to echo the email, got %q", result.Message)
	}

	// The existing account keeps its original password.
	if _, err := authService.AttemptLogin(context.Background(), "demo@petroserve.com", "demo123"); err != nil {
		t.Errorf("expected the demo login to survive a re-signup, got %v", err)
	}
	if _, err := authService.AttemptLogin(context.Background(), "demo@petroserve.com", "secret"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected the attempted password to stay invalid, got %v", err)
	}
}

func TestSignup_RequiredFields(t *testing.T) {
	t.Parallel()

	authService := service.NewAuthService(memory.NewUserRepository(), NewMockSessionStore(), 0)

	cases := []struct {
		name, email, password, phone string
	}{
		{"", "a@b.com", "pw", "+1"},
		{"A", "", "pw", "+1"},
		{"A", "a@b.com", "", "+1"},
		{"A", "a@b.com", "pw", ""},
	}

	for _, c := range cases {
		_, err := authService.AttemptSignup(context.Background(), c.name, c.email, c.password, c.phone)
		if !errors.Is(err, service.ErrMissingRequiredFields) {
			t.Errorf("signup %+v: expected ErrMissingRequiredFields, got %v", c, err)
		}
	}
}

// ──────────────────────────────────────────────
// LOGOUT
// ──────────────────────────────────────────────

func TestLogout_InvalidatesSession(t *testing.T) {
	t.Parallel()

	sessions := NewMockSessionStore()
	authService := service.NewAuthService(memory.NewUserRepository(), sessions, 0)

	result, err := authService.AttemptLogin(context.Background(), "demo@petroserve.com", "demo123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := authService.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := sessions.Get(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Error("expected session to be destroyed after logout")
	}
}

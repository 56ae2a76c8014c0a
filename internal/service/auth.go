package service

import (
	"context"
	"errors"
	"time"

	"petroserve/internal/domain"
	"petroserve/internal/redis"
	"petroserve/internal/repository"
)

// AuthService handles login, signup and logout.
type AuthService struct {
	userRepo repository.UserRepository
	sessions redis.SessionStoreInterface
	delay    time.Duration
}

// NewAuthService creates a new AuthService. delay is the artificial latency
// applied to login and signup (the demo's simulated network round trip).
func NewAuthService(userRepo repository.UserRepository, sessions redis.SessionStoreInterface, delay time.Duration) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		delay:    delay,
	}
}

// LoginResult contains the outcome of a successful login.
type LoginResult struct {
	User  *domain.User
	Token string
}

// AttemptLogin matches the credentials against the demo account table and,
// on success, creates a session. The artificial delay runs before the
// credential check and is abandoned when ctx is cancelled, so a torn-down
// caller never observes a late result.
func (s *AuthService) AttemptLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	session, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: session.Token}, nil
}

// SignupResult contains the outcome of a signup attempt.
type SignupResult struct {
	Message string
}

// AttemptSignup validates required fields and reports success without
// creating an account. Signup is intentionally a stub: the demo directs new
// users to the fixed demo login instead of persisting anything. An email
// that already belongs to a demo account gets steered to login directly.
func (s *AuthService) AttemptSignup(ctx context.Context, name, email, password, phone string) (*SignupResult, error) {
	if name == "" || email == "" || password == "" || phone == "" {
		return nil, ErrMissingRequiredFields
	}

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return &SignupResult{
			Message: "This email is already registered. Log in with " + email,
		}, nil
	}

	return &SignupResult{
		Message: "Signup successful! You can now log in with demo@petroserve.com / demo123",
	}, nil
}

// Logout invalidates the session for the given token. Unknown tokens are a
// no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// CurrentUser resolves the user bound to a session token. Returns nil when
// the token is missing, expired or malformed.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	return s.sessions.Get(ctx, token)
}

// simulateLatency waits for the configured delay or until ctx is done.
func (s *AuthService) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

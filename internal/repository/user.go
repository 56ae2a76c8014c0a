package repository

import (
	"context"

	"petroserve/internal/domain"
)

// UserRepository defines credential lookup for login.
type UserRepository interface {
	// Authenticate returns the user matching the given email and password.
	// Returns ErrNotFound when no credential matches.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

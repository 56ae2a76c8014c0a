package redis

import (
	"context"

	"petroserve/internal/domain"
)

// SessionStoreInterface defines the interface for session operations.
type SessionStoreInterface interface {
	Create(ctx context.Context, user *domain.User) (*Session, error)
	Get(ctx context.Context, token string) (*domain.User, error)
	Destroy(ctx context.Context, token string) error
}

// Ensure concrete types implement interfaces.
var _ SessionStoreInterface = (*SessionStore)(nil)

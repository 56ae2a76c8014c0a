package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"petroserve/internal/domain"
	"petroserve/internal/repository"
)

// UserRepository is an in-memory implementation of repository.UserRepository
// backed by the fixed demo credential table.
type UserRepository struct {
	mu          sync.RWMutex
	credentials []domain.Credential
	users       map[string]*domain.User // keyed by email
}

// Ensure interface is satisfied.
var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a user repository seeded with the demo accounts.
func NewUserRepository() *UserRepository {
	r := &UserRepository{
		credentials: []domain.Credential{
			{Email: "demo@petroserve.com", Password: "demo123", Name: "Demo User", Phone: "+1234567890", Role: domain.RoleCustomer},
			{Email: "admin@petroserve.com", Password: "admin123", Name: "Admin User", Phone: "+1234567891", Role: domain.RoleAdmin},
			{Email: "test@example.com", Password: "test123", Name: "Test User", Phone: "+1234567892", Role: domain.RoleCustomer},
		},
		users: make(map[string]*domain.User),
	}

	for _, cred := range r.credentials {
		r.users[cred.Email] = &domain.User{
			ID:        uuid.New().String(),
			Name:      cred.Name,
			Email:     cred.Email,
			Phone:     cred.Phone,
			Role:      cred.Role,
			CreatedAt: time.Now(),
		}
	}

	return r
}

// Authenticate matches email and password by exact string equality against
// the demo credential table.
func (r *UserRepository) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cred := range r.credentials {
		if cred.Email == email && cred.Password == password {
			user := *r.users[cred.Email]
			return &user, nil
		}
	}

	return nil, repository.ErrNotFound
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}

	copy := *user
	return &copy, nil
}

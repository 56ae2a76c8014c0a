package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petroserve/internal/domain"
	"petroserve/internal/repository"
)

// UserRepository is a PostgreSQL implementation of repository.UserRepository.
type UserRepository struct {
	q Querier
}

// NewUserRepository creates a new PostgreSQL user repository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{q: db}
}

// Authenticate returns the user whose email and password match exactly.
// Passwords are stored in plaintext; the credential table holds demo
// accounts only.
func (r *UserRepository) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	query := `
		SELECT id, name, email, phone, role, created_at
		FROM users WHERE email = $1 AND password = $2
	`

	var user domain.User
	err := r.q.QueryRowContext(ctx, query, email, password).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, phone, role, created_at
		FROM users WHERE email = $1
	`

	var user domain.User
	err := r.q.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

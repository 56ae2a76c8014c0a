package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"petroserve/internal/domain"
)

const sessionKeyPrefix = "session:"

// DefaultSessionTTL is how long a session lives without being refreshed.
const DefaultSessionTTL = 24 * time.Hour

// Session is the persisted proof of a successful login.
type Session struct {
	Token string
	User  domain.User
}

// SessionStore persists sessions in Redis, keyed by token.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create issues a new session for the given user and persists it.
// The token keeps the demo's timestamp-suffixed format, with a random
// suffix so two logins in the same millisecond get distinct tokens.
func (s *SessionStore) Create(ctx context.Context, user *domain.User) (*Session, error) {
	token := fmt.Sprintf("demo-token-%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8])

	data, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+token, data, s.ttl).Err(); err != nil {
		return nil, err
	}

	return &Session{Token: token, User: *user}, nil
}

// Get returns the user bound to the token, or nil when the token is
// unknown, expired, or the stored payload is malformed. Malformed data is
// treated as no session, never as a failure.
func (s *SessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	data, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		// Corrupt payload: drop the session and fail closed.
		_ = s.client.Del(ctx, sessionKeyPrefix+token).Err()
		return nil, nil
	}

	return &user, nil
}

// Destroy invalidates a session.
func (s *SessionStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}

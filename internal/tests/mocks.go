package tests

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"petroserve/internal/domain"
	"petroserve/internal/middleware"
	"petroserve/internal/redis"
	"petroserve/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK SESSION STORE
// ──────────────────────────────────────────────

// MockSessionStore is an in-memory mock of redis.SessionStoreInterface.
type MockSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.User

	// Counters for verification
	CreateCallCount  int32
	DestroyCallCount int32

	// Error injection
	CreateError error
	GetError    error
}

// Ensure interface is satisfied.
var _ redis.SessionStoreInterface = (*MockSessionStore)(nil)

// NewMockSessionStore creates a new mock session store.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		sessions: make(map[string]domain.User),
	}
}

func (m *MockSessionStore) Create(ctx context.Context, user *domain.User) (*redis.Session, error) {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return nil, m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	token := fmt.Sprintf("demo-token-%d-%d", time.Now().UnixMilli(), len(m.sessions))
	m.sessions[token] = *user
	return &redis.Session{Token: token, User: *user}, nil
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}
	copy := user
	return &copy, nil
}

func (m *MockSessionStore) Destroy(ctx context.Context, token string) error {
	atomic.AddInt32(&m.DestroyCallCount, 1)

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// SessionCount returns the number of live sessions for test assertions.
func (m *MockSessionStore) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// ──────────────────────────────────────────────
// MOCK DELIVERY REPOSITORY
// ──────────────────────────────────────────────

// MockDeliveryRepository is a mock implementation of repository.DeliveryRepository.
type MockDeliveryRepository struct {
	mu        sync.RWMutex
	byOrderID map[string]*domain.DeliveryOrder
	currentID string

	// Counters for verification
	UpdateCallCount int32

	// Error injection
	GetByOrderIDError error
	UpdateError       error
}

// NewMockDeliveryRepository creates a new mock delivery repository.
func NewMockDeliveryRepository() *MockDeliveryRepository {
	return &MockDeliveryRepository{
		byOrderID: make(map[string]*domain.DeliveryOrder),
	}
}

// AddDelivery adds a delivery to the mock repository and marks it current.
func (m *MockDeliveryRepository) AddDelivery(order *domain.DeliveryOrder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byOrderID[order.OrderID] = order
	m.currentID = order.OrderID
}

func (m *MockDeliveryRepository) Create(ctx context.Context, order *domain.DeliveryOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *order
	m.byOrderID[order.OrderID] = &copy
	m.currentID = order.OrderID
	return nil
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.DeliveryOrder, error) {
	if m.GetByOrderIDError != nil {
		return nil, m.GetByOrderIDError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	order, ok := m.byOrderID[orderID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *order
	return &copy, nil
}

func (m *MockDeliveryRepository) GetCurrent(ctx context.Context) (*domain.DeliveryOrder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	order, ok := m.byOrderID[m.currentID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *order
	return &copy, nil
}

func (m *MockDeliveryRepository) Update(ctx context.Context, order *domain.DeliveryOrder) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byOrderID[order.OrderID]; !ok {
		return repository.ErrNotFound
	}
	copy := *order
	m.byOrderID[order.OrderID] = &copy
	return nil
}

// GetDelivery returns the stored delivery for test assertions.
func (m *MockDeliveryRepository) GetDelivery(orderID string) *domain.DeliveryOrder {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byOrderID[orderID]
}

// ──────────────────────────────────────────────
// MOCK IDEMPOTENCY STORE
// ──────────────────────────────────────────────

// MockIdempotencyStore is an in-memory mock of middleware.IdempotencyStore.
type MockIdempotencyStore struct {
	mu      sync.RWMutex
	entries map[string][]byte

	// Counters for verification
	GetCallCount int32
	SetCallCount int32

	// Error injection
	GetError error
	SetError error
}

// Ensure interface is satisfied.
var _ middleware.IdempotencyStore = (*MockIdempotencyStore)(nil)

// NewMockIdempotencyStore creates a new mock idempotency store.
func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		entries: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) Get(ctx context.Context, key string) *goredis.StringCmd {
	atomic.AddInt32(&m.GetCallCount, 1)

	cmd := goredis.NewStringCmd(ctx, "get", key)
	if m.GetError != nil {
		cmd.SetErr(m.GetError)
		return cmd
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.entries[key]
	if !ok {
		cmd.SetErr(goredis.Nil)
		return cmd
	}
	cmd.SetVal(string(data))
	return cmd
}

func (m *MockIdempotencyStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd {
	atomic.AddInt32(&m.SetCallCount, 1)

	cmd := goredis.NewStatusCmd(ctx, "set", key)
	if m.SetError != nil {
		cmd.SetErr(m.SetError)
		return cmd
	}

	data, ok := value.([]byte)
	if !ok {
		data = []byte(fmt.Sprint(value))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = data
	cmd.SetVal("OK")
	return cmd
}

// EntryCount returns the number of cached responses for test assertions.
func (m *MockIdempotencyStore) EntryCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// ──────────────────────────────────────────────
// HELPERS
// ──────────────────────────────────────────────

// almostEqual compares floats with a small tolerance.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

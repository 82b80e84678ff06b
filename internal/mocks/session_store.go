package mocks

import (
	"context"
	"strings"
	"time"

	"github.com/pmendes/taskvault/internal/domain"
	"github.com/pmendes/taskvault/internal/store"
)

// MockSessionStore implements store.SessionStore for testing
type MockSessionStore struct {
	// Function fields for customizable behavior
	SaveFn   func(ctx context.Context, token string, user *domain.User, ttl time.Duration) error
	GetFn    func(ctx context.Context, token string) (*domain.User, error)
	DeleteFn func(ctx context.Context, token string) error

	// Data for default implementation, keyed by lowercased token like the
	// real cache. TTLs are recorded but not enforced.
	Sessions map[string]*domain.User
	TTLs     map[string]time.Duration
	Err      error
}

// NewMockSessionStore creates a new mock store with initialized defaults
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		Sessions: make(map[string]*domain.User),
		TTLs:     make(map[string]time.Duration),
	}
}

// Save implements the SessionStore interface
func (m *MockSessionStore) Save(ctx context.Context, token string, user *domain.User, ttl time.Duration) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, token, user, ttl)
	}

	if m.Err != nil {
		return m.Err
	}

	key := strings.ToLower(token)
	m.Sessions[key] = user
	m.TTLs[key] = ttl
	return nil
}

// Get implements the SessionStore interface
func (m *MockSessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, token)
	}

	if m.Err != nil {
		return nil, m.Err
	}

	user, exists := m.Sessions[strings.ToLower(token)]
	if !exists {
		return nil, store.ErrSessionNotFound
	}

	return user, nil
}

// Delete implements the SessionStore interface
func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, token)
	}

	if m.Err != nil {
		return m.Err
	}

	key := strings.ToLower(token)
	delete(m.Sessions, key)
	delete(m.TTLs, key)
	return nil
}

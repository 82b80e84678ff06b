package mocks

import (
	"context"

	"github.com/pmendes/taskvault/internal/domain"
	"github.com/pmendes/taskvault/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	GetByUserNameFn func(ctx context.Context, userName string) (*domain.User, error)

	// Data for default implementation, keyed by user name
	Users       map[string]*domain.User
	NextID      int64
	CreateError error
	GetError    error
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:  make(map[string]*domain.User),
		NextID: 1,
	}
}

// Create implements the UserStore interface. The default implementation
// enforces the same uniqueness the real store gets from its constraints.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Users[user.UserName]; exists {
		return store.ErrUserNameExists
	}
	for _, existing := range m.Users {
		if existing.EmailID == user.EmailID {
			return store.ErrEmailExists
		}
	}

	user.ID = m.NextID
	m.NextID++
	m.Users[user.UserName] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, store.ErrUserNotFound
}

// GetByUserName implements the UserStore interface
func (m *MockUserStore) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	if m.GetByUserNameFn != nil {
		return m.GetByUserNameFn(ctx, userName)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	user, exists := m.Users[userName]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	return user, nil
}

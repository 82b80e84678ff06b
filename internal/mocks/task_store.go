package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/pmendes/taskvault/internal/domain"
	"github.com/pmendes/taskvault/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	ListFn    func(ctx context.Context, userID int64, filter store.TaskFilter) ([]domain.Task, error)
	GetByIDFn func(ctx context.Context, id, userID int64) (*domain.Task, error)
	CreateFn  func(ctx context.Context, task *domain.Task) error
	UpdateFn  func(ctx context.Context, id, userID int64, title, description string) (int64, error)
	DeleteFn  func(ctx context.Context, id, userID int64) (int64, error)

	// Data for default implementation, keyed by task ID
	Tasks  map[int64]*domain.Task
	NextID int64
	Err    error
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks:  make(map[int64]*domain.Task),
		NextID: 1,
	}
}

// List implements the TaskStore interface. The default implementation
// applies the same owner scoping, filtering, ordering and pagination the
// real store expresses in SQL.
func (m *MockTaskStore) List(ctx context.Context, userID int64, filter store.TaskFilter) ([]domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, filter)
	}

	if m.Err != nil {
		return nil, m.Err
	}

	var owned []domain.Task
	for _, task := range m.Tasks {
		if task.UserID != userID {
			continue
		}
		if filter.CompletedOnly && !task.Completed {
			continue
		}
		owned = append(owned, *task)
	}

	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].CreatedAt.Before(owned[j].CreatedAt)
		}
		return owned[i].ID < owned[j].ID
	})

	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(owned) {
		return []domain.Task{}, nil
	}
	end := offset + filter.Limit
	if end > len(owned) {
		end = len(owned)
	}

	return owned[offset:end], nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id, userID int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id, userID)
	}

	if m.Err != nil {
		return nil, m.Err
	}

	task, exists := m.Tasks[id]
	if !exists || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}

	return task, nil
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.Err != nil {
		return m.Err
	}

	task.ID = m.NextID
	m.NextID++
	m.Tasks[task.ID] = task
	return nil
}

// Update implements the TaskStore interface, returning the affected row
// count like the real store does.
func (m *MockTaskStore) Update(ctx context.Context, id, userID int64, title, description string) (int64, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, userID, title, description)
	}

	if m.Err != nil {
		return 0, m.Err
	}

	task, exists := m.Tasks[id]
	if !exists || task.UserID != userID {
		return 0, nil
	}

	task.Title = title
	task.Description = description
	task.UpdatedAt = time.Now().UTC()
	return 1, nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id, userID int64) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, userID)
	}

	if m.Err != nil {
		return 0, m.Err
	}

	task, exists := m.Tasks[id]
	if !exists || task.UserID != userID {
		return 0, nil
	}

	delete(m.Tasks, id)
	return 1, nil
}

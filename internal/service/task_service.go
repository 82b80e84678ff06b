package service

import (
	"context"
	"fmt"

	"github.com/pmendes/taskvault/internal/domain"
	"github.com/pmendes/taskvault/internal/platform/logger"
	"github.com/pmendes/taskvault/internal/store"
)

// Default and bounding values for task list pagination. MaxTaskPage bounds
// the page number so the (page-1)*limit offset arithmetic can never
// overflow into a negative SQL OFFSET.
const (
	DefaultTaskLimit = 10
	MaxTaskLimit     = 100
	MaxTaskPage      = 1_000_000
)

// TaskService performs task CRUD scoped by the owning user's ID. It holds
// no state of its own; authorization is the owner-equality predicate the
// store applies to every operation, so concurrent requests cannot interfere.
type TaskService struct {
	tasks store.TaskStore
}

// NewTaskService creates a TaskService backed by the given task store.
func NewTaskService(tasks store.TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns the user's tasks for the given filter. Out-of-range
// pagination values are clamped to defaults rather than rejected, matching
// the API's lenient query-parameter handling.
func (s *TaskService) List(ctx context.Context, userID int64, filter store.TaskFilter) ([]domain.Task, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultTaskLimit
	}
	if filter.Limit > MaxTaskLimit {
		filter.Limit = MaxTaskLimit
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Page > MaxTaskPage {
		filter.Page = MaxTaskPage
	}

	tasks, err := s.tasks.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Get returns the task matching both id and owner.
// Returns store.ErrTaskNotFound when no such task exists; a task owned by
// another user is indistinguishable from one that does not exist.
func (s *TaskService) Get(ctx context.Context, id, userID int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Create validates and stores a new task owned by the given user, returning
// the task with its generated ID.
func (s *TaskService) Create(ctx context.Context, userID int64, title, description string) (*domain.Task, error) {
	task, err := domain.NewTask(userID, title, description)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	logger.FromContext(ctx).Info("task created",
		"task_id", task.ID,
		"user_id", userID)

	return task, nil
}

// Update sets title and description on the user's task. When the id/owner
// pair matches no row the update is a no-op reported as success; the
// affected-row count passes through from the store without an existence
// check.
func (s *TaskService) Update(ctx context.Context, id, userID int64, title, description string) error {
	affected, err := s.tasks.Update(ctx, id, userID, title, description)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if affected == 0 {
		logger.FromContext(ctx).Debug("update matched no task",
			"task_id", id,
			"user_id", userID)
	}

	return nil
}

// Delete removes the user's task. Like Update, a non-matching id/owner pair
// is a successful no-op.
func (s *TaskService) Delete(ctx context.Context, id, userID int64) error {
	affected, err := s.tasks.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if affected == 0 {
		logger.FromContext(ctx).Debug("delete matched no task",
			"task_id", id,
			"user_id", userID)
	}

	return nil
}

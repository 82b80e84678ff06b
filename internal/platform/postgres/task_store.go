package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pmendes/taskvault/internal/domain"
	"github.com/pmendes/taskvault/internal/platform/logger"
	"github.com/pmendes/taskvault/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface using a
// PostgreSQL database as the storage backend. Every query carries the
// owner-equality predicate; there is no code path that touches a task row
// without it.
type PostgresTaskStore struct {
	db store.DBTX
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface.
func NewPostgresTaskStore(db store.DBTX) *PostgresTaskStore {
	return &PostgresTaskStore{db: db}
}

// Ensure PostgresTaskStore implements store.TaskStore
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context, userID int64, filter store.TaskFilter) ([]domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, title, description, completed, created_at, updated_at, userid
		FROM tasks
		WHERE userid = $1
	`
	if filter.CompletedOnly {
		query += ` AND completed = true`
	}
	// Stable creation order so pagination windows do not shift between
	// requests; id breaks ties within the same timestamp.
	query += ` ORDER BY created_at, id LIMIT $2 OFFSET $3`

	offset := (filter.Page - 1) * filter.Limit

	rows, err := s.db.QueryContext(ctx, query, userID, filter.Limit, offset)
	if err != nil {
		log.Error("failed to list tasks",
			"user_id", userID,
			"error", err)
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]domain.Task, 0, filter.Limit)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Completed,
			&task.CreatedAt,
			&task.UpdatedAt,
			&task.UserID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, id, userID int64) (*domain.Task, error) {
	query := `
		SELECT id, title, description, completed, created_at, updated_at, userid
		FROM tasks
		WHERE id = $1 AND userid = $2
	`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.UserID,
	)
	if err != nil {
		if mapped := MapError(err); store.IsNotFoundError(mapped) {
			return nil, fmt.Errorf("%w: id %d", store.ErrTaskNotFound, id)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &task, nil
}

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	query := `
		INSERT INTO tasks (title, description, completed, created_at, updated_at, userid)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		task.Title,
		task.Description,
		task.Completed,
		task.CreatedAt,
		task.UpdatedAt,
		task.UserID,
	).Scan(&task.ID)
	if err != nil {
		log.Error("failed to create task",
			"user_id", task.UserID,
			"error", err)
		return MapError(err)
	}

	return nil
}

// Update implements store.TaskStore.Update
func (s *PostgresTaskStore) Update(ctx context.Context, id, userID int64, title, description string) (int64, error) {
	log := logger.FromContext(ctx)

	query := `
		UPDATE tasks
		SET title = $1, description = $2, updated_at = $3
		WHERE id = $4 AND userid = $5
	`

	result, err := s.db.ExecContext(ctx, query, title, description, time.Now().UTC(), id, userID)
	if err != nil {
		log.Error("failed to update task",
			"task_id", id,
			"user_id", userID,
			"error", err)
		return 0, MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, id, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query := `DELETE FROM tasks WHERE id = $1 AND userid = $2`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		log.Error("failed to delete task",
			"task_id", id,
			"user_id", userID,
			"error", err)
		return 0, MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}

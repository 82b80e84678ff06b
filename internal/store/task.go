package store

import (
	"context"

	"github.com/pmendes/taskvault/internal/domain"
)

// TaskFilter selects which of a user's tasks a List call returns.
// Page numbering starts at 1; the offset is (Page-1)*Limit.
type TaskFilter struct {
	Limit         int
	Page          int
	CompletedOnly bool
}

// TaskStore defines the interface for task data persistence. Every operation
// is scoped by the owning user's ID; implementations must never return or
// mutate a row whose owner does not match.
type TaskStore interface {
	// List returns the user's tasks ordered by creation time, applying the
	// filter's pagination and completed-only settings. An empty page is a
	// valid result, not an error.
	List(ctx context.Context, userID int64, filter TaskFilter) ([]domain.Task, error)

	// GetByID retrieves a single task matching both id and owner.
	// Returns ErrTaskNotFound when no row matches the pair.
	GetByID(ctx context.Context, id, userID int64) (*domain.Task, error)

	// Create saves a new task and sets the generated ID on the provided task.
	Create(ctx context.Context, task *domain.Task) error

	// Update sets title and description on the task matching id and owner and
	// refreshes updated_at. When no row matches the id/owner pair the call
	// succeeds with zero rows affected; the affected count is returned so
	// callers can observe the distinction without treating it as an error.
	Update(ctx context.Context, id, userID int64, title, description string) (int64, error)

	// Delete removes the task matching id and owner. Like Update, a
	// non-matching pair is reported as zero rows affected, not an error.
	Delete(ctx context.Context, id, userID int64) (int64, error)
}

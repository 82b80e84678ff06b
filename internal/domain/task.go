package domain

import (
	"errors"
	"time"
)

// Task validation errors.
var (
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrTitleTooLong = errors.New("title must be at most 255 characters long")
	ErrEmptyOwner   = errors.New("task owner cannot be empty")
)

// Task represents a single task owned by exactly one user. Every read and
// write of a task is scoped by UserID equality; ownership is the sole
// authorization boundary for tasks.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      int64     `json:"-"`
}

// NewTask creates a Task owned by the given user and validates it.
// The ID is assigned by the store on insert.
func NewTask(userID int64, title, description string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      userID,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if len(t.Title) > 255 {
		return ErrTitleTooLong
	}
	if t.UserID <= 0 {
		return ErrEmptyOwner
	}
	return nil
}

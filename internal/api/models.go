package api

import (
	"time"

	"github.com/pmendes/taskvault/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,max=64"`
	EmailID  string `json:"email_id"  validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password"  validate:"required,min=1"`
}

// TaskRequest defines the payload for task creation and update.
type TaskRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

// TaskResponse is the wire representation of a single task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserResponse is the wire representation of a user. The password hash never
// appears here.
type UserResponse struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"user_name"`
	EmailID   string    `json:"email_id"`
	CreatedAt time.Time `json:"created_at"`
}

// newTaskResponse converts a domain task to its wire form.
func newTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// newUserResponse converts a domain user to its wire form.
func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		EmailID:   u.EmailID,
		CreatedAt: u.CreatedAt,
	}
}

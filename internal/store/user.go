package store

import (
	"context"

	"github.com/pmendes/taskvault/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and sets the generated ID on the
	// provided user. The user's HashedPassword must already be populated.
	// Returns ErrUserNameExists or ErrEmailExists when the corresponding
	// unique constraint is violated.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUserName retrieves a user by their user name, including the
	// password hash for credential verification.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
}

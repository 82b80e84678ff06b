package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmendes/taskvault/internal/domain"
	"github.com/pmendes/taskvault/internal/platform/logger"
	"github.com/pmendes/taskvault/internal/store"
)

// Names of the unique indexes on users, used to map constraint violations
// onto specific store errors. Must match the migration DDL.
const (
	userNameUniqueConstraint = "users_user_name_key"
	emailUniqueConstraint    = "users_email_id_key"
)

// PostgresUserStore implements the store.UserStore interface using a
// PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db store.DBTX
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. The database handle is initialized and managed by the
// caller.
func NewPostgresUserStore(db store.DBTX) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

// Ensure PostgresUserStore implements store.UserStore
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContext(ctx)

	if user.HashedPassword == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}

	query := `
		INSERT INTO users (user_name, email_id, password, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		user.UserName,
		user.EmailID,
		user.HashedPassword,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		log.Error("failed to create user",
			"user_name", user.UserName,
			"error", err)
		if IsUniqueViolation(err) {
			mapped := MapUniqueViolation(err, userNameUniqueConstraint, store.ErrUserNameExists)
			if !errors.Is(mapped, store.ErrUserNameExists) {
				mapped = MapUniqueViolation(err, emailUniqueConstraint, store.ErrEmailExists)
			}
			return mapped
		}
		return MapError(err)
	}

	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, user_name, email_id, password, created_at
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.UserName,
		&user.EmailID,
		&user.HashedPassword,
		&user.CreatedAt,
	)
	if err != nil {
		if mapped := MapError(err); store.IsNotFoundError(mapped) {
			return nil, fmt.Errorf("%w: id %d", store.ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

// GetByUserName implements store.UserStore.GetByUserName
func (s *PostgresUserStore) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	query := `
		SELECT id, user_name, email_id, password, created_at
		FROM users
		WHERE user_name = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, userName).Scan(
		&user.ID,
		&user.UserName,
		&user.EmailID,
		&user.HashedPassword,
		&user.CreatedAt,
	)
	if err != nil {
		if mapped := MapError(err); store.IsNotFoundError(mapped) {
			return nil, fmt.Errorf("%w: user name %q", store.ErrUserNotFound, userName)
		}
		return nil, fmt.Errorf("failed to get user by user name: %w", err)
	}

	return &user, nil
}

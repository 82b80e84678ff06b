package store

import (
	"context"
	"time"

	"github.com/pmendes/taskvault/internal/domain"
)

// SessionStore defines the interface for the session cache. Entries pair a
// session token with a snapshot of the authenticated user and expire after a
// fixed TTL; the cache is the only authority on session lifetime, since
// tokens themselves carry no expiry.
//
// Token keys are case-insensitive: implementations normalize the token to
// lower case before every read, write, and delete.
type SessionStore interface {
	// Save stores the user snapshot under the token with the given TTL,
	// overwriting any existing entry.
	Save(ctx context.Context, token string, user *domain.User, ttl time.Duration) error

	// Get retrieves the user snapshot for the token.
	// Returns ErrSessionNotFound when no entry exists, whether because the
	// entry expired or the token was never issued.
	Get(ctx context.Context, token string) (*domain.User, error)

	// Delete removes the session entry for the token. Deleting an absent
	// entry is not an error.
	Delete(ctx context.Context, token string) error
}

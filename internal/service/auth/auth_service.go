package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pmendes/taskvault/internal/domain"
	"github.com/pmendes/taskvault/internal/platform/logger"
	"github.com/pmendes/taskvault/internal/store"
)

// Service orchestrates registration, credential verification, session
// creation, and session lookup. It owns no state beyond its injected
// collaborators and is safe for concurrent use.
type Service struct {
	users      store.UserStore
	sessions   store.SessionStore
	tokens     TokenService
	hasher     PasswordHasher
	verifier   PasswordVerifier
	sessionTTL time.Duration
}

// NewService creates an auth Service with the given dependencies.
// sessionTTL is the lifetime of each session cache entry.
func NewService(
	users store.UserStore,
	sessions store.SessionStore,
	tokens TokenService,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		hasher:     hasher,
		verifier:   verifier,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new user from the given credentials. The password is
// hashed before it reaches the store; the plaintext is never persisted.
// Store-level constraint violations (duplicate name or email) propagate as
// store.ErrDuplicate variants.
func (s *Service) Register(ctx context.Context, userName, emailID, password string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	user, err := domain.NewUser(userName, emailID, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", "user_name", userName, "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hash
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Info("user registered", "user_id", user.ID, "user_name", user.UserName)
	return user, nil
}

// Authenticate verifies the credentials and, on success, mints a session
// token and stores the user snapshot in the session cache under the
// lowercased token for the configured TTL. A wrong user name and a wrong
// password both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, userName, password string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(ctx, user.UserName)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	if err := s.sessions.Save(ctx, token, user, s.sessionTTL); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	log.Info("session created",
		"user_id", user.ID,
		"ttl_seconds", int(s.sessionTTL.Seconds()))

	return token, nil
}

// LookupSession resolves a session token to the cached user snapshot.
// The token is normalized to lower case before the cache read, which is
// what makes session lookup case-insensitive. Returns ErrSessionExpired
// when the cache holds no entry, covering both TTL expiry and tokens that
// were never issued.
func (s *Service) LookupSession(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.sessions.Get(ctx, strings.ToLower(token))
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	return user, nil
}

// Logout revokes the session server-side by deleting the cache entry.
// Revoking an already-absent session succeeds: logout is idempotent.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, strings.ToLower(token)); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	logger.FromContext(ctx).Info("session revoked")
	return nil
}

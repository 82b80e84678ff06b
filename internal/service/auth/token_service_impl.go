package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pmendes/taskvault/internal/config"
	"github.com/pmendes/taskvault/internal/platform/logger"
)

// hmacTokenService is an implementation of TokenService using HMAC-SHA256
// signed JWTs.
type hmacTokenService struct {
	signingKey []byte
	timeFunc   func() time.Time // Injectable for testing
}

// tokenClaims defines the JWT claims carried by a session token. There is
// deliberately no exp claim: the session cache TTL is the single source of
// truth for expiry, and embedding a second one would let the two disagree.
type tokenClaims struct {
	UserName string `json:"username"`
	jwt.RegisteredClaims
}

// Ensure hmacTokenService implements TokenService
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService using HMAC-SHA256 signing with the
// secret from the auth configuration.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	if len(cfg.TokenSecret) < 32 {
		return nil, fmt.Errorf("token secret must be at least 32 characters")
	}

	return &hmacTokenService{
		signingKey: []byte(cfg.TokenSecret),
		timeFunc:   time.Now,
	}, nil
}

// IssueToken implements TokenService.IssueToken
func (s *hmacTokenService) IssueToken(ctx context.Context, userName string) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := tokenClaims{
		UserName: userName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userName,
			IssuedAt: jwt.NewNumericDate(now),
			ID:       uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign session token",
			"error", err,
			"user_name", userName,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// ValidateToken implements TokenService.ValidateToken
func (s *hmacTokenService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)

	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		// Every parse or signature failure collapses to the same sentinel;
		// the caller has no use for the distinction and the client must not
		// see it.
		log.Debug("session token validation failed", "error", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		log.Debug("session token validation failed: invalid claims")
		return nil, ErrInvalidToken
	}

	out := &Claims{
		UserName: claims.UserName,
		ID:       claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}

	return out, nil
}

package auth

import (
	"context"
	"time"
)

// Claims holds the payload of a session token.
type Claims struct {
	// UserName identifies the user the token was issued to.
	UserName string

	// IssuedAt records when the token was minted. Tokens carry no expiry
	// claim; session lifetime is enforced exclusively by the session cache
	// TTL.
	IssuedAt time.Time

	// ID is a unique identifier for this token, so two logins by the same
	// user in the same second still produce distinct tokens (and therefore
	// distinct cache entries).
	ID string
}

// TokenService issues and verifies session tokens. Implementations are pure
// functions of the signing secret and the payload: no storage, no clocks
// consulted at validation time.
type TokenService interface {
	// IssueToken mints a signed token for the given user name.
	IssueToken(ctx context.Context, userName string) (string, error)

	// ValidateToken checks the token's signature and shape, returning the
	// embedded claims. It performs no freshness check; a structurally valid
	// token with a verifying signature passes regardless of age. Returns
	// ErrInvalidToken for every verification failure; it never panics and
	// never surfaces parser internals.
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

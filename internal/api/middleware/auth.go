package middleware

import (
	"errors"
	"net/http"

	"github.com/pmendes/taskvault/internal/api/shared"
	"github.com/pmendes/taskvault/internal/service/auth"
)

// sessionCookieName is the cookie that carries the session token.
// Must match the name the login handler sets.
const sessionCookieName = "x-session-token"

// SessionMiddleware gates routes behind a valid session. A request passes
// only when the cookie is present, the token's signature verifies, and the
// session cache still holds an entry for it.
type SessionMiddleware struct {
	tokens      auth.TokenService
	authService *auth.Service
}

// NewSessionMiddleware creates a SessionMiddleware with the given
// dependencies.
func NewSessionMiddleware(tokens auth.TokenService, authService *auth.Service) *SessionMiddleware {
	return &SessionMiddleware{
		tokens:      tokens,
		authService: authService,
	}
}

// Authenticate validates the session cookie and attaches the cached user
// snapshot to the request context. Every failure mode produces the same 401
// body so a probing client cannot tell a forged token from an expired one.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or expired session")
			return
		}
		token := cookie.Value

		// Signature check first; a forged token never reaches the cache.
		if _, err := m.tokens.ValidateToken(r.Context(), token); err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		user, err := m.authService.LookupSession(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrSessionExpired) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or expired session")
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Authentication error", err)
			return
		}

		ctx := shared.WithUser(r.Context(), user)
		ctx = shared.WithSessionToken(ctx, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

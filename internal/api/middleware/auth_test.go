package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmendes/taskvault/internal/api/middleware"
	"github.com/pmendes/taskvault/internal/api/shared"
	"github.com/pmendes/taskvault/internal/mocks"
	"github.com/pmendes/taskvault/internal/service/auth"
)

type gateFixture struct {
	tokens *mocks.MockTokenService
	svc    *auth.Service
	gate   *middleware.SessionMiddleware
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()

	f := &gateFixture{
		tokens: mocks.NewMockTokenService(),
	}
	verifier := &mocks.MockPasswordVerifier{}
	f.svc = auth.NewService(
		mocks.NewMockUserStore(),
		mocks.NewMockSessionStore(),
		f.tokens,
		verifier,
		verifier,
		time.Hour,
	)
	f.gate = middleware.NewSessionMiddleware(f.tokens, f.svc)
	return f
}

// login registers a user and returns a token with a live session.
func (f *gateFixture) login(t *testing.T) string {
	t.Helper()

	_, err := f.svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	token, err := f.svc.Authenticate(context.Background(), "alice", "password123")
	require.NoError(t, err)
	return token
}

func protectedRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "x-session-token", Value: token})
	}
	return req
}

func TestSessionMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	t.Run("valid session passes with user in context", func(t *testing.T) {
		t.Parallel()

		f := newGateFixture(t)
		token := f.login(t)

		var gotUserName, gotToken string
		handler := f.gate.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := shared.UserFromContext(r.Context())
			require.True(t, ok)
			gotUserName = user.UserName
			gotToken = shared.SessionTokenFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, protectedRequest(token))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "alice", gotUserName)
		assert.Equal(t, token, gotToken)
	})

	t.Run("failure modes produce identical 401s", func(t *testing.T) {
		t.Parallel()

		f := newGateFixture(t)
		token := f.login(t)

		// Revoke to make the signed token point at a dead session.
		require.NoError(t, f.svc.Logout(context.Background(), token))

		tests := []struct {
			name  string
			token string
		}{
			{name: "missing cookie", token: ""},
			{name: "forged token", token: "never-issued-token"},
			{name: "valid signature but revoked session", token: token},
		}

		var bodies []string
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				handler := f.gate.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					t.Fatal("handler must not run")
				}))

				rr := httptest.NewRecorder()
				handler.ServeHTTP(rr, protectedRequest(tt.token))

				assert.Equal(t, http.StatusUnauthorized, rr.Code)
				bodies = append(bodies, rr.Body.String())
			})
		}

		// A probing client cannot distinguish the failure modes.
		for i := 1; i < len(bodies); i++ {
			assert.Equal(t, bodies[0], bodies[i])
		}
	})

	t.Run("session lookup succeeds for uppercased cookie", func(t *testing.T) {
		t.Parallel()

		f := newGateFixture(t)
		token := f.login(t)

		// Signature validation sees the original casing via the mock; the
		// cache lookup lowercases. Simulate a proxy shouting the cookie.
		f.tokens.ValidateTokenFn = func(ctx context.Context, tok string) (*auth.Claims, error) {
			return &auth.Claims{UserName: "alice"}, nil
		}

		handler := f.gate.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, protectedRequest(strings.ToUpper(token)))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

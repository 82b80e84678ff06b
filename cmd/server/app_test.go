package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmendes/taskvault/internal/config"
	"github.com/pmendes/taskvault/internal/mocks"
	"github.com/pmendes/taskvault/internal/platform/cache"
	"github.com/pmendes/taskvault/internal/service"
	"github.com/pmendes/taskvault/internal/service/auth"
)

// newTestApplication wires the full router with in-memory stores and a real
// Redis session cache backed by miniredis. Only the relational stores are
// mocked; tokens, sessions and handlers are the production implementations.
func newTestApplication(t *testing.T) (*application, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		Auth: config.AuthConfig{
			TokenSecret:       strings.Repeat("s", 32),
			SessionTTLSeconds: 3600,
		},
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	require.NoError(t, err)

	sessionStore := cache.NewRedisSessionStore(client)
	verifier := &mocks.MockPasswordVerifier{}

	authService := auth.NewService(
		mocks.NewMockUserStore(),
		sessionStore,
		tokenService,
		verifier,
		verifier,
		time.Duration(cfg.Auth.SessionTTLSeconds)*time.Second,
	)

	app := &application{
		config:       cfg,
		logger:       slog.Default(),
		sessionStore: sessionStore,
		tokenService: tokenService,
		authService:  authService,
		taskService:  service.NewTaskService(mocks.NewMockTaskStore()),
	}

	return app, mr
}

type client struct {
	t      *testing.T
	router http.Handler
	cookie *http.Cookie
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	rr := httptest.NewRecorder()
	c.router.ServeHTTP(rr, req)

	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == "x-session-token" {
			if cookie.MaxAge < 0 {
				c.cookie = nil
			} else {
				c.cookie = cookie
			}
		}
	}
	return rr
}

func TestApplication_FullSessionLifecycle(t *testing.T) {
	app, _ := newTestApplication(t)
	c := &client{t: t, router: app.setupRouter()}

	// Health check is public.
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/healthz", "").Code)

	// Task routes are gated before login.
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/tasks", "").Code)

	// Register and log in.
	rr := c.do(http.MethodPost, "/auth/register",
		`{"user_name":"alice","email_id":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = c.do(http.MethodPost, "/auth/login", `{"user_name":"alice","password":"password123"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, c.cookie, "login must set the session cookie")

	// Create and read back a task over the authenticated session.
	rr = c.do(http.MethodPost, "/tasks", `{"title":"Buy groceries","description":"Milk"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var created struct {
		Task struct {
			ID int64 `json:"id"`
		} `json:"task"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotZero(t, created.Task.ID)

	rr = c.do(http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Buy groceries")

	// Logout is a plain GET; it revokes the session and the old cookie is
	// dead afterwards.
	oldCookie := *c.cookie
	rr = c.do(http.MethodGet, "/auth/logout", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, c.cookie, "logout must expire the cookie")

	c.cookie = &oldCookie
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/tasks", "").Code)
}

func TestApplication_SessionExpiresWithTTL(t *testing.T) {
	app, mr := newTestApplication(t)
	c := &client{t: t, router: app.setupRouter()}

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/auth/register",
		`{"user_name":"alice","email_id":"alice@example.com","password":"password123"}`).Code)
	require.Equal(t, http.StatusOK,
		c.do(http.MethodPost, "/auth/login", `{"user_name":"alice","password":"password123"}`).Code)

	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/tasks", "").Code)

	// Past the TTL the signed token still verifies but the session is gone.
	mr.FastForward(time.Hour + time.Minute)
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/tasks", "").Code)
}

func TestApplication_WrongLoginGetsNoSession(t *testing.T) {
	app, _ := newTestApplication(t)
	c := &client{t: t, router: app.setupRouter()}

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/auth/register",
		`{"user_name":"alice","email_id":"alice@example.com","password":"password123"}`).Code)

	rr := c.do(http.MethodPost, "/auth/login", `{"user_name":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Nil(t, c.cookie)
}

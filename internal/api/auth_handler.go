package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pmendes/taskvault/internal/api/shared"
	"github.com/pmendes/taskvault/internal/service/auth"
	"github.com/pmendes/taskvault/internal/store"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "x-session-token"

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService  *auth.Service
	validator    *validator.Validate
	cookieSecure bool
	sessionTTL   time.Duration
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// cookieSecure controls the Secure attribute on the session cookie and
// sessionTTL becomes its Max-Age.
func NewAuthHandler(authService *auth.Service, cookieSecure bool, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		validator:    validator.New(),
		cookieSecure: cookieSecure,
		sessionTTL:   sessionTTL,
	}
}

// Register handles the /auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.authService.Register(r.Context(), req.UserName, req.EmailID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNameExists):
			shared.RespondWithError(w, r, http.StatusConflict, "Username already exists")
		case errors.Is(err, store.ErrEmailExists):
			shared.RespondWithError(w, r, http.StatusConflict, "Email already exists")
		case errors.Is(err, store.ErrInvalidEntity):
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data")
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Failed to create user", err)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		Message string       `json:"message"`
		User    UserResponse `json:"user"`
	}{
		Message: "User created successfully",
		User:    newUserResponse(user),
	})
}

// Login handles the /auth/login endpoint. On success the session token is
// delivered in the x-session-token cookie, not the response body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	token, err := h.authService.Authenticate(r.Context(), req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// Unknown username and wrong password produce the same response.
			shared.RespondWithError(w, r, http.StatusForbidden, "Invalid username or password")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to authenticate user", err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(h.sessionTTL.Seconds())))

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Login successful",
	})
}

// Logout handles the /auth/logout endpoint. It revokes the session cache
// entry and expires the cookie. Logging out without a session still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		token = cookie.Value
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to log out", err)
		return
	}

	// Max-Age < 0 instructs the client to drop the cookie immediately.
	http.SetCookie(w, h.sessionCookie("", -1))

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Logged out successfully",
	})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

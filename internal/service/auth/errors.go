package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or the signature
	// does not verify.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("session token is missing")

	// ErrInvalidCredentials indicates the user name or password is wrong.
	// Callers must present it identically for both cases so the response
	// does not reveal whether the user name exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionExpired indicates the session cache holds no entry for the
	// token, either because the TTL elapsed or the token was never issued.
	ErrSessionExpired = errors.New("session expired")
)

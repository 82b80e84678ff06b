package domain

import (
	"errors"
	"strings"
	"time"
)

// User validation errors.
var (
	ErrEmptyUserName       = errors.New("user name cannot be empty")
	ErrUserNameTooLong     = errors.New("user name must be at most 64 characters long")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the task service.
//
// Password holds the plaintext credential only transiently during
// registration; it is never persisted and never serialized. HashedPassword is
// the bcrypt hash stored in the relational store and is likewise excluded
// from JSON so a cached session snapshot never carries credential material.
type User struct {
	ID             int64     `json:"id"`
	UserName       string    `json:"user_name"`
	EmailID        string    `json:"email_id"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a User with the given user name, email and plaintext
// password and validates it. The ID is assigned by the store on insert and
// the password must be hashed before the user is persisted.
func NewUser(userName, emailID, password string) (*User, error) {
	user := &User{
		UserName:  userName,
		EmailID:   emailID,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns the first validation error encountered, or nil.
func (u *User) Validate() error {
	if u.UserName == "" {
		return ErrEmptyUserName
	}
	if len(u.UserName) > 64 {
		return ErrUserNameTooLong
	}

	if u.EmailID == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.EmailID) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		// bcrypt ignores input past 72 bytes, so longer passwords would
		// silently truncate.
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
		return nil
	}

	// Users loaded from the store carry only the hash.
	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validEmailFormat performs a minimal structural check: one '@' with a
// non-empty local part and a domain containing an interior dot. Full RFC 5322
// validation is left to the request layer's validator tags.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmendes/taskvault/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userName string
		emailID  string
		password string
		wantErr  error
	}{
		{
			name:     "valid user",
			userName: "alice",
			emailID:  "alice@example.com",
			password: "correct horse battery",
			wantErr:  nil,
		},
		{
			name:     "empty user name",
			userName: "",
			emailID:  "alice@example.com",
			password: "correct horse battery",
			wantErr:  domain.ErrEmptyUserName,
		},
		{
			name:     "user name too long",
			userName: strings.Repeat("a", 65),
			emailID:  "alice@example.com",
			password: "correct horse battery",
			wantErr:  domain.ErrUserNameTooLong,
		},
		{
			name:     "empty email",
			userName: "alice",
			emailID:  "",
			password: "correct horse battery",
			wantErr:  domain.ErrEmptyEmail,
		},
		{
			name:     "email without at sign",
			userName: "alice",
			emailID:  "alice.example.com",
			password: "correct horse battery",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "email without domain dot",
			userName: "alice",
			emailID:  "alice@localhost",
			password: "correct horse battery",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "password too short",
			userName: "alice",
			emailID:  "alice@example.com",
			password: "short",
			wantErr:  domain.ErrPasswordTooShort,
		},
		{
			name:     "password too long",
			userName: "alice",
			emailID:  "alice@example.com",
			password: strings.Repeat("p", 73),
			wantErr:  domain.ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := domain.NewUser(tt.userName, tt.emailID, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.userName, user.UserName)
			assert.Equal(t, tt.emailID, user.EmailID)
			assert.False(t, user.CreatedAt.IsZero())
			assert.Zero(t, user.ID, "ID is assigned by the store")
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext password, only the hash.
	user := &domain.User{
		ID:             1,
		UserName:       "alice",
		EmailID:        "alice@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), domain.ErrEmptyPassword)
}

func TestUserJSON_NeverExposesCredentials(t *testing.T) {
	t.Parallel()

	user := &domain.User{
		ID:             7,
		UserName:       "alice",
		EmailID:        "alice@example.com",
		Password:       "plaintext-secret",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "plaintext-secret")
	assert.NotContains(t, string(data), "$2a$10$")
	assert.Contains(t, string(data), `"user_name":"alice"`)
}

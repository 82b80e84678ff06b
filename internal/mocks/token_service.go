package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/pmendes/taskvault/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// Function fields for customizable behavior
	IssueTokenFn    func(ctx context.Context, userName string) (string, error)
	ValidateTokenFn func(ctx context.Context, token string) (*auth.Claims, error)

	// Data for default implementation. Issued tokens are deterministic
	// "token-for-<name>-<n>" strings recorded in Issued.
	Issued        map[string]string
	issueCount    int
	IssueError    error
	ValidateError error
}

// NewMockTokenService creates a new mock token service with initialized
// defaults
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{
		Issued: make(map[string]string),
	}
}

// IssueToken implements the TokenService interface
func (m *MockTokenService) IssueToken(ctx context.Context, userName string) (string, error) {
	if m.IssueTokenFn != nil {
		return m.IssueTokenFn(ctx, userName)
	}

	if m.IssueError != nil {
		return "", m.IssueError
	}

	m.issueCount++
	token := fmt.Sprintf("token-for-%s-%d", userName, m.issueCount)
	m.Issued[token] = userName
	return token, nil
}

// ValidateToken implements the TokenService interface. The default accepts
// any token previously issued by this mock.
func (m *MockTokenService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}

	if m.ValidateError != nil {
		return nil, m.ValidateError
	}

	userName, exists := m.Issued[token]
	if !exists {
		return nil, auth.ErrInvalidToken
	}

	return &auth.Claims{
		UserName: userName,
		IssuedAt: time.Now().UTC(),
		ID:       token,
	}, nil
}

package mocks

import "fmt"

// MockPasswordVerifier implements auth.PasswordHasher and
// auth.PasswordVerifier for testing without paying bcrypt cost.
type MockPasswordVerifier struct {
	// Function fields for customizable behavior
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	HashError    error
	CompareError error
}

// Hash implements the PasswordHasher interface. The default produces a
// reversible "hashed:<password>" marker that Compare understands.
func (m *MockPasswordVerifier) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}

	if m.HashError != nil {
		return "", m.HashError
	}

	return "hashed:" + password, nil
}

// Compare implements the PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}

	if m.CompareError != nil {
		return m.CompareError
	}

	if hashedPassword != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}

	return nil
}

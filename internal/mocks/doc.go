// Package mocks provides centralized mock implementations for testing.
//
// Each mock implements one of the application's interfaces with function
// fields for per-test behavior, plus a simple in-memory default so most
// tests need no customization at all. Defining them here keeps test setup
// consistent across packages instead of scattering inline mocks through
// individual test files.
//
// Usage:
//
//	import "github.com/pmendes/taskvault/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    tokens := &mocks.MockTokenService{
//	        IssueTokenFn: func(ctx context.Context, userName string) (string, error) {
//	            return "mocked-token", nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Give it a usable in-memory default where that makes sense
package mocks

// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout the application,
// facilitating consistent and DRY testing across the codebase. Instead of defining
// inline mocks in individual test files, these standardized mock implementations
// can be reused.
//
// Usage:
//
// Import the mocks package in your test file and create the required mock:
//
//	import "github.com/mwhitby/signup-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    userStore := mocks.NewMockUserStore()
//	    userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
//	        return store.ErrEmailExists
//	    }
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Document any helper methods or special functionality
package mocks

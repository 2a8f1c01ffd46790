package mocks

// MockPasswordHasher implements auth.PasswordHasher and auth.PasswordVerifier
// for testing without paying bcrypt cost.
type MockPasswordHasher struct {
	HashFn func(password string) (string, error)

	// Err, when set, is returned by Hash
	Err error
}

// Hash implements the PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}

// Compare implements the PasswordVerifier interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	return nil
}

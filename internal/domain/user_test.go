package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	// Test valid user creation
	user, err := NewUser("al smith", "test@example.com", "hunter2000")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Username != "al smith" {
		t.Errorf("Expected username %q, got %q", "al smith", user.Username)
	}

	if user.Email != "test@example.com" {
		t.Errorf("Expected email %s, got %s", "test@example.com", user.Email)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test invalid username (length 1)
	_, err = NewUser("a", "test@example.com", "hunter2000")
	if err != ErrInvalidUsername {
		t.Errorf("Expected error %v, got %v", ErrInvalidUsername, err)
	}

	// Test username with disallowed characters
	_, err = NewUser("bad!name", "test@example.com", "hunter2000")
	if err != ErrInvalidUsername {
		t.Errorf("Expected error %v, got %v", ErrInvalidUsername, err)
	}

	// Test invalid email
	_, err = NewUser("al", "", "hunter2000")
	if err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	_, err = NewUser("al", "invalidemail", "hunter2000")
	if err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	// Test missing password
	_, err = NewUser("al", "test@example.com", "")
	if err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}
}

func TestUserValidate(t *testing.T) {
	validUser := User{
		ID:             uuid.New(),
		Username:       "al",
		Email:          "test@example.com",
		HashedPassword: "$2a$10$somethinghashed",
	}

	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected valid user, got error %v", err)
	}

	// Missing ID
	noID := validUser
	noID.ID = uuid.Nil
	if err := noID.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	// Username at both length bounds
	bounds := validUser
	bounds.Username = "ab"
	if err := bounds.Validate(); err != nil {
		t.Errorf("Expected 2-char username to be valid, got %v", err)
	}
	bounds.Username = "abcdefghij klmnopqrs" // 20 chars
	if err := bounds.Validate(); err != nil {
		t.Errorf("Expected 20-char username to be valid, got %v", err)
	}
	bounds.Username = "abcdefghij klmnopqrst" // 21 chars
	if err := bounds.Validate(); err != ErrInvalidUsername {
		t.Errorf("Expected error %v, got %v", ErrInvalidUsername, err)
	}

	// Stored user without either password form
	noPass := validUser
	noPass.HashedPassword = ""
	if err := noPass.Validate(); err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}
}

func TestValidateEmailFormat(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"user.name@example.co.uk", true},
		{"", false},
		{"plain", false},
		{"@example.com", false},
		{"user@", false},
		{"user@nodot", false},
		{"user@.com", false},
		{"user@domain.", false},
	}

	for _, tc := range cases {
		if got := validateEmailFormat(tc.email); got != tc.valid {
			t.Errorf("validateEmailFormat(%q) = %v, want %v", tc.email, got, tc.valid)
		}
	}
}

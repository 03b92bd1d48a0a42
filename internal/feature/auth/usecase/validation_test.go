package usecase

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"empty", "", true},
		{"seven chars", "1234567", true},
		{"exactly eight chars", "12345678", false},
		{"typical password", "Str0ng!Passw0rd", false},
		{"exactly bcrypt limit", strings.Repeat("a", 72), false},
		{"over bcrypt limit", strings.Repeat("a", 73), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(tt.password)
			if tt.wantErr && !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation for %q, got %v", tt.password, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for %q: %v", tt.password, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"empty", "", true},
		{"no at sign", "userexample.com", true},
		{"missing local part", "@example.com", true},
		{"missing domain", "user@", true},
		{"domain without dot", "user@localhost", true},
		{"domain leading dot", "user@.example.com", true},
		{"domain trailing dot", "user@example.com.", true},
		{"contains space", "user name@example.com", true},
		{"over length limit", strings.Repeat("a", 250) + "@x.com", true},
		{"plain address", "a@x.com", false},
		{"plus tag", "user+tag@example.com", false},
		{"subdomain", "user@mail.example.co.jp", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEmail(tt.email)
			if tt.wantErr && !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation for %q, got %v", tt.email, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for %q: %v", tt.email, err)
			}
		})
	}
}

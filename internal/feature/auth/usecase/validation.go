package usecase

import (
	"fmt"
	"strings"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
	// maxPasswordLength is the bcrypt input limit; longer passwords would be
	// silently truncated by the hasher.
	maxPasswordLength = 72
	// maxEmailLength matches the column size of the email field.
	maxEmailLength = 255
)

// validatePassword checks that the password meets the length requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be at most %d characters long", ErrValidation, maxPasswordLength)
	}
	return nil
}

// validateEmail checks the structural shape of an email address. It is not a
// full RFC 5322 parser; it rejects the inputs the store and the login flow
// cannot work with.
func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf("%w: email must be at most %d characters long", ErrValidation, maxEmailLength)
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%w: email must contain a local part and a domain", ErrValidation)
	}
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return fmt.Errorf("%w: email domain is malformed", ErrValidation)
	}
	if strings.ContainsAny(email, " \t\r\n") {
		return fmt.Errorf("%w: email must not contain whitespace", ErrValidation)
	}
	return nil
}

package domain

import (
	"unicode/utf8"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
)

// DefaultPasswordMinLength is the minimum length, in characters, of app passwords
// and encryption passwords.
const DefaultPasswordMinLength = 4

// ValidatePassword enforces the minimum length policy on a newly entered password.
// It runs before any cryptographic operation.
func ValidatePassword(password *cryptoDomain.SecretString, minLength int) error {
	n := utf8.RuneCount(password.Expose())
	if n < minLength {
		return &PasswordTooShortError{MinLength: minLength, ActualLength: n}
	}
	return nil
}

// ConfirmPassword checks that a password and its confirmation are identical.
func ConfirmPassword(password, confirmation *cryptoDomain.SecretString) error {
	if !password.Equal(confirmation) {
		return ErrPasswordDoesNotMatch
	}
	return nil
}

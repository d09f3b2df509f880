package domain

import (
	"fmt"

	"github.com/allisson/mejla/internal/errors"
)

// Email settings error definitions.
var (
	// ErrPasswordDoesNotMatch indicates a password and its confirmation differ.
	ErrPasswordDoesNotMatch = errors.Wrap(errors.ErrInvalidInput, "passwords do not match")

	// ErrPasswordTooShort is matched by every *PasswordTooShortError.
	ErrPasswordTooShort = errors.Wrap(errors.ErrInvalidInput, "email password is too short")

	// ErrRecipientAddressesCannotBeEmpty indicates settings without a primary recipient.
	ErrRecipientAddressesCannotBeEmpty = errors.Wrap(errors.ErrInvalidInput, "recipient addresses cannot be empty")

	// ErrInvalidEmailAddress indicates text that is not a plain email address.
	ErrInvalidEmailAddress = errors.Wrap(errors.ErrInvalidInput, "invalid email address")

	// ErrInvalidSMTPServer indicates an SMTP server that is not a bare host name.
	ErrInvalidSMTPServer = errors.Wrap(errors.ErrInvalidInput, "invalid SMTP server")

	// ErrInvalidFieldSelector indicates an unknown settings field name.
	ErrInvalidFieldSelector = errors.Wrap(errors.ErrInvalidInput, "invalid settings field")

	// ErrInvalidSettings indicates a stored settings document failed validation.
	ErrInvalidSettings = errors.Wrap(errors.ErrInvalidInput, "invalid email settings")

	// ErrSettingsNotFound indicates no settings are stored for a profile.
	ErrSettingsNotFound = errors.Wrap(errors.ErrNotFound, "email settings not found")
)

// PasswordTooShortError reports a newly entered password below the minimum length.
type PasswordTooShortError struct {
	MinLength    int
	ActualLength int
}

func (e *PasswordTooShortError) Error() string {
	return fmt.Sprintf(
		"email password is too short, expected at least %d characters, but found %d",
		e.MinLength,
		e.ActualLength,
	)
}

func (e *PasswordTooShortError) Unwrap() error {
	return ErrPasswordTooShort
}

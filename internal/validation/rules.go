// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/mejla/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// hostLabelRegex matches a single DNS label
	hostLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)
)

// WrapValidationError flattens a validation error into sentinel so callers can
// match it with errors.Is. A nil sentinel falls back to ErrInvalidInput.
func WrapValidationError(sentinel, err error) error {
	if err == nil {
		return nil
	}
	if sentinel == nil {
		sentinel = apperrors.ErrInvalidInput
	}
	return apperrors.Wrap(sentinel, err.Error())
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// Hostname validates a bare host name such as smtp.gmail.com (no scheme, no port)
var Hostname = validation.NewStringRuleWithError(
	func(s string) bool {
		if len(s) > 253 {
			return false
		}
		for _, label := range strings.Split(s, ".") {
			if !hostLabelRegex.MatchString(label) {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_hostname", "must be a valid host name"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

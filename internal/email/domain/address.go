package domain

import (
	"fmt"
	"net/mail"

	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/mejla/internal/validation"
)

// Address is a validated plain email address such as alice@example.com.
// The zero value is an empty, invalid address.
type Address struct {
	value string
}

// ParseAddress validates s and returns it as an Address.
func ParseAddress(s string) (Address, error) {
	err := validation.Validate(s,
		validation.Required,
		appValidation.NoWhitespace,
		validation.Length(3, 254),
		appValidation.Email,
	)
	if err != nil {
		return Address{}, fmt.Errorf("%w %q: %v", ErrInvalidEmailAddress, s, err)
	}
	return Address{value: s}, nil
}

// MustParseAddress is like ParseAddress but panics on error.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) String() string { return a.value }

// IsZero reports whether a is the empty address.
func (a Address) IsZero() bool { return a.value == "" }

// MarshalText encodes the address as plain text.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.value), nil
}

// UnmarshalText parses and validates a plain text address.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Account is a named email address, used for senders and reply-to.
type Account struct {
	Name  string  `json:"name"`
	Email Address `json:"email"`
}

// NewAccount builds an account after validating the address.
func NewAccount(name, email string) (Account, error) {
	addr, err := ParseAddress(email)
	if err != nil {
		return Account{}, err
	}
	return Account{Name: name, Email: addr}, nil
}

// Mailbox formats the account as an RFC 5322 mailbox, e.g. "Alice" <alice@example.com>.
func (a Account) Mailbox() string {
	m := mail.Address{Name: a.Name, Address: a.Email.String()}
	return m.String()
}

func (a Account) String() string {
	return a.Mailbox()
}

func validateAccount(value any) error {
	var acc Account
	switch v := value.(type) {
	case Account:
		acc = v
	case *Account:
		if v == nil {
			return nil
		}
		acc = *v
	default:
		return validation.NewError("validation_account_type", "must be an account")
	}
	if acc.Email.IsZero() {
		return validation.NewError("validation_account_email", "email is required")
	}
	return nil
}

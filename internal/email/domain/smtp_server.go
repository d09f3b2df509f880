package domain

import (
	"fmt"

	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/mejla/internal/validation"
)

// DefaultSMTPServer is used when no server has been configured.
const DefaultSMTPServer SMTPServer = "smtp.gmail.com"

// SMTPServer is the host name of an SMTP relay, without scheme or port.
type SMTPServer string

// ParseSMTPServer validates s as an SMTP host name.
func ParseSMTPServer(s string) (SMTPServer, error) {
	err := validation.Validate(s,
		validation.Required,
		appValidation.NotBlank,
		appValidation.Hostname,
	)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidSMTPServer, s, err)
	}
	return SMTPServer(s), nil
}

func (s SMTPServer) String() string { return string(s) }

func validateSMTPServer(value any) error {
	s, _ := value.(SMTPServer)
	_, err := ParseSMTPServer(string(s))
	return err
}

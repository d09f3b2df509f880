package domain

import "fmt"

// FieldSelector names the settings fields an edit touches: either every field or
// exactly one. The zero value is FieldAll.
type FieldSelector int

const (
	// FieldAll selects every editable field, secrets included.
	FieldAll FieldSelector = iota
	// FieldAppPassword selects the SMTP app password.
	FieldAppPassword
	// FieldEncryptionPassword selects the password that encrypts the app password.
	FieldEncryptionPassword
	// FieldTemplate selects the subject and body template.
	FieldTemplate
	// FieldSMTPServer selects the SMTP server host.
	FieldSMTPServer
	// FieldReplyTo selects the optional reply-to account.
	FieldReplyTo
	// FieldSender selects the sender account.
	FieldSender
	// FieldRecipients selects the primary recipients.
	FieldRecipients
	// FieldCcRecipients selects the CC recipients.
	FieldCcRecipients
	// FieldBccRecipients selects the BCC recipients.
	FieldBccRecipients
)

var fieldSelectorNames = [...]string{
	FieldAll:                "all",
	FieldAppPassword:        "app-password",
	FieldEncryptionPassword: "encryption-password",
	FieldTemplate:           "template",
	FieldSMTPServer:         "smtp-server",
	FieldReplyTo:            "reply-to",
	FieldSender:             "sender",
	FieldRecipients:         "recipients",
	FieldCcRecipients:       "cc-recipients",
	FieldBccRecipients:      "bcc-recipients",
}

// FieldSelectors lists every selector in declaration order.
func FieldSelectors() []FieldSelector {
	out := make([]FieldSelector, len(fieldSelectorNames))
	for i := range fieldSelectorNames {
		out[i] = FieldSelector(i)
	}
	return out
}

// ParseFieldSelector converts a name such as "smtp-server" into a selector.
func ParseFieldSelector(s string) (FieldSelector, error) {
	for i, name := range fieldSelectorNames {
		if name == s {
			return FieldSelector(i), nil
		}
	}
	return FieldAll, fmt.Errorf("%w: %q", ErrInvalidFieldSelector, s)
}

func (f FieldSelector) String() string {
	if f < 0 || int(f) >= len(fieldSelectorNames) {
		return fmt.Sprintf("FieldSelector(%d)", int(f))
	}
	return fieldSelectorNames[f]
}

// RequiresSecretReentry reports whether editing f means entering the app password
// and the encryption password again.
func (f FieldSelector) RequiresSecretReentry() bool {
	switch f {
	case FieldAll, FieldAppPassword, FieldEncryptionPassword:
		return true
	default:
		return false
	}
}

// Includes reports whether editing f touches target.
func (f FieldSelector) Includes(target FieldSelector) bool {
	return f == FieldAll || f == target
}

// MarshalText encodes the selector name.
func (f FieldSelector) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses a selector name.
func (f *FieldSelector) UnmarshalText(text []byte) error {
	parsed, err := ParseFieldSelector(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

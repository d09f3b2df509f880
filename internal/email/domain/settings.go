// Package domain defines the email settings aggregate and the value types around it.
//
// Settings come in two shapes sharing one field layout. EncryptedSettings holds
// the SMTP app password sealed under a key derived from the user's encryption
// password; it is the only shape that can be stored. DecryptedSettings holds the
// plaintext app password, exists only in memory for the duration of a send, and
// refuses every encoder.
package domain

import (
	"fmt"
	"log/slog"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
)

// AppPassword is the set of app password representations Settings can hold.
// Both support secure erase.
type AppPassword interface {
	*cryptoDomain.SecretString | *cryptoDomain.EncryptedAppPassword
	Zero()
}

// Settings are the parameters for sending email from one account. P decides
// whether the app password is sealed or in plaintext.
type Settings[P AppPassword] struct {
	appPassword   P
	salt          cryptoDomain.Salt
	template      Template
	replyTo       *Account
	smtpServer    SMTPServer
	sender        Account
	recipients    AddressSet
	ccRecipients  AddressSet
	bccRecipients AddressSet
}

type (
	// EncryptedSettings is the durable, storable form.
	EncryptedSettings = Settings[*cryptoDomain.EncryptedAppPassword]

	// DecryptedSettings holds the plaintext app password and must be zeroed after use.
	DecryptedSettings = Settings[*cryptoDomain.SecretString]
)

// DecryptSettings is the single conversion from encrypted to decrypted settings.
// open receives the sealed app password and returns its plaintext; its error is
// returned unchanged. The caller owns the result and must call Zero on it.
func DecryptSettings(
	s *EncryptedSettings,
	open func(*cryptoDomain.EncryptedAppPassword) (*cryptoDomain.SecretString, error),
) (*DecryptedSettings, error) {
	plaintext, err := open(s.appPassword)
	if err != nil {
		return nil, err
	}
	return &DecryptedSettings{
		appPassword:   plaintext,
		salt:          s.salt,
		template:      s.template,
		replyTo:       cloneAccount(s.replyTo),
		smtpServer:    s.smtpServer,
		sender:        s.sender,
		recipients:    s.recipients.Clone(),
		ccRecipients:  s.ccRecipients.Clone(),
		bccRecipients: s.bccRecipients.Clone(),
	}, nil
}

// AppPassword returns the app password in its current representation. It is
// owned by s and wiped by s.Zero.
func (s *Settings[P]) AppPassword() P { return s.appPassword }

// Salt returns the key derivation salt.
func (s *Settings[P]) Salt() cryptoDomain.Salt { return s.salt }

// Template returns the subject and body template used when sending.
func (s *Settings[P]) Template() Template { return s.template }

// SMTPServer returns the relay host. The port comes from configuration.
func (s *Settings[P]) SMTPServer() SMTPServer { return s.smtpServer }

// Sender returns the account that authenticates and appears in From.
func (s *Settings[P]) Sender() Account { return s.sender }

// Recipients returns a copy of the To addresses. It is never empty for
// validated settings.
func (s *Settings[P]) Recipients() AddressSet { return s.recipients.Clone() }

// CcRecipients returns a copy of the Cc addresses.
func (s *Settings[P]) CcRecipients() AddressSet { return s.ccRecipients.Clone() }

// BccRecipients returns a copy of the Bcc addresses. They are used as envelope
// recipients only and never written to headers.
func (s *Settings[P]) BccRecipients() AddressSet { return s.bccRecipients.Clone() }

// ReplyTo returns the reply-to account, or nil when none is set.
func (s *Settings[P]) ReplyTo() *Account { return cloneAccount(s.replyTo) }

// WithSender returns a copy of s with a different sender. The copy owns its own
// app password and must be zeroed independently.
func (s *Settings[P]) WithSender(sender Account) *Settings[P] {
	c := s.clone()
	c.sender = sender
	return c
}

// Equal reports whether every field matches. For decrypted settings the
// plaintext app passwords are compared byte for byte.
func (s *Settings[P]) Equal(other *Settings[P]) bool {
	if s == nil || other == nil {
		return s == other
	}
	return appPasswordEqual(s.appPassword, other.appPassword) &&
		s.salt == other.salt &&
		s.template == other.template &&
		accountEqual(s.replyTo, other.replyTo) &&
		s.smtpServer == other.smtpServer &&
		s.sender == other.sender &&
		s.recipients.Equal(other.recipients) &&
		s.ccRecipients.Equal(other.ccRecipients) &&
		s.bccRecipients.Equal(other.bccRecipients)
}

// Zero wipes the app password and the salt. Call it on every exit path, usually
// with defer right after the settings are obtained.
func (s *Settings[P]) Zero() {
	if s == nil {
		return
	}
	s.appPassword.Zero()
	s.salt.Zero()
}

// String omits the app password and the salt.
func (s *Settings[P]) String() string {
	if s == nil {
		return "<nil>"
	}
	replyTo := "none"
	if s.replyTo != nil {
		replyTo = s.replyTo.String()
	}
	return fmt.Sprintf(
		"Settings{app_password: omitted, salt: omitted, template: %q/%q, reply_to: %s, "+
			"smtp_server: %s, sender: %s, recipients: [%s], cc_recipients: [%s], bcc_recipients: [%s]}",
		s.template.SubjectFormat, s.template.BodyFormat, replyTo,
		s.smtpServer, s.sender, s.recipients, s.ccRecipients, s.bccRecipients,
	)
}

func (s *Settings[P]) GoString() string { return s.String() }

// LogValue omits the app password and the salt.
func (s *Settings[P]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("smtp_server", string(s.smtpServer)),
		slog.String("sender", s.sender.Email.String()),
		slog.Int("recipients", s.recipients.Len()),
		slog.Int("cc_recipients", s.ccRecipients.Len()),
		slog.Int("bcc_recipients", s.bccRecipients.Len()),
		slog.Bool("reply_to", s.replyTo != nil),
	)
}

// MarshalJSON always fails. Go cannot attach a method to one instantiation
// only, so neither shape encodes itself: encrypted settings are stored through
// EncodeSettings, which accepts nothing but *EncryptedSettings.
func (s *Settings[P]) MarshalJSON() ([]byte, error) {
	return nil, cryptoDomain.ErrSecretNotSerializable
}

// UnmarshalJSON always fails; use DecodeSettings.
func (s *Settings[P]) UnmarshalJSON([]byte) error {
	return cryptoDomain.ErrSecretNotSerializable
}

func (s *Settings[P]) clone() *Settings[P] {
	return &Settings[P]{
		appPassword:   cloneAppPassword(s.appPassword),
		salt:          s.salt,
		template:      s.template,
		replyTo:       cloneAccount(s.replyTo),
		smtpServer:    s.smtpServer,
		sender:        s.sender,
		recipients:    s.recipients.Clone(),
		ccRecipients:  s.ccRecipients.Clone(),
		bccRecipients: s.bccRecipients.Clone(),
	}
}

func cloneAppPassword[P AppPassword](p P) P {
	switch v := any(p).(type) {
	case *cryptoDomain.SecretString:
		return any(v.Clone()).(P)
	case *cryptoDomain.EncryptedAppPassword:
		return any(v.Clone()).(P)
	default:
		return p
	}
}

func appPasswordEqual[P AppPassword](a, b P) bool {
	switch av := any(a).(type) {
	case *cryptoDomain.SecretString:
		return av.Equal(any(b).(*cryptoDomain.SecretString))
	case *cryptoDomain.EncryptedAppPassword:
		return av.Equal(any(b).(*cryptoDomain.EncryptedAppPassword))
	default:
		return false
	}
}

func cloneAccount(a *Account) *Account {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func accountEqual(a, b *Account) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

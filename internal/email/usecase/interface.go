// Package usecase implements the email settings workflows: building and editing
// encrypted settings, unlocking them with an encryption password, and sending.
package usecase

import (
	"context"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	emailDomain "github.com/allisson/mejla/internal/email/domain"
)

// SettingsRepository persists encrypted settings by profile name. It never sees
// decrypted settings.
type SettingsRepository interface {
	Get(ctx context.Context, profile string) (*emailDomain.EncryptedSettings, error)
	Save(ctx context.Context, profile string, settings *emailDomain.EncryptedSettings) error
	List(ctx context.Context) ([]string, error)
}

// Prompter asks the user for one settings field at a time. Each method receives
// the current value as the default answer.
type Prompter interface {
	// AppPassword asks for the SMTP app password, with confirmation.
	AppPassword(ctx context.Context) (*cryptoDomain.SecretString, error)
	// EncryptionPassword returns the password protecting the app password. It may
	// come from the environment instead of the terminal.
	EncryptionPassword(ctx context.Context, withConfirmation bool) (*cryptoDomain.SecretString, error)
	SMTPServer(ctx context.Context, current emailDomain.SMTPServer) (emailDomain.SMTPServer, error)
	Sender(ctx context.Context, current emailDomain.Account) (emailDomain.Account, error)
	Template(ctx context.Context, current emailDomain.Template) (emailDomain.Template, error)
	// ReplyTo returns nil when the user skips the reply-to account.
	ReplyTo(ctx context.Context, current *emailDomain.Account) (*emailDomain.Account, error)
	Addresses(
		ctx context.Context,
		role emailDomain.AddressRole,
		current emailDomain.AddressSet,
	) (emailDomain.AddressSet, error)
}

// SettingsBuilder turns a settings document into encrypted settings, asking
// only for the fields named by the selector.
type SettingsBuilder interface {
	Build(
		ctx context.Context,
		current emailDomain.SettingsDocument,
		selector emailDomain.FieldSelector,
	) (*emailDomain.EncryptedSettings, error)
}

// SendInput describes one outgoing email.
type SendInput struct {
	Profile string
	// Subject and Body override the stored template when not empty.
	Subject      string
	Body         string
	Replacements []emailDomain.Replacement
	Attachments  []emailDomain.Attachment
	// EncryptionPassword is consumed by Send. When nil the Prompter is asked.
	EncryptionPassword *cryptoDomain.SecretString
}

// VerifyResult reports whether a stored profile could be decrypted.
type VerifyResult struct {
	Profile string
	Err     error
}

// SettingsUseCase defines the email settings business logic.
type SettingsUseCase interface {
	// Configure creates or edits the settings of profile. Unknown profiles are
	// built from scratch regardless of selector.
	Configure(
		ctx context.Context,
		profile string,
		selector emailDomain.FieldSelector,
	) (*emailDomain.EncryptedSettings, error)
	Get(ctx context.Context, profile string) (*emailDomain.EncryptedSettings, error)
	// Unlock decrypts the settings of profile. The password is consumed.
	//
	// Security Note: callers MUST call Zero on the returned settings.
	Unlock(
		ctx context.Context,
		profile string,
		encryptionPassword *cryptoDomain.SecretString,
	) (*emailDomain.DecryptedSettings, error)
	Send(ctx context.Context, input *SendInput) error
	// VerifyAll decrypts every stored profile with the same password.
	VerifyAll(ctx context.Context, encryptionPassword *cryptoDomain.SecretString) ([]VerifyResult, error)
}

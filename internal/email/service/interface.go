// Package service provides the email services around the settings aggregate:
// sealing and opening the app password stored in settings, and delivering mail
// over SMTP.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	emailDomain "github.com/allisson/mejla/internal/email/domain"
)

// SettingsCipher moves email settings between their encrypted and decrypted forms.
type SettingsCipher interface {
	// EncryptAppPassword seals appPassword under a key derived from
	// encryptionPassword and a freshly generated salt. Both secrets are zeroed.
	EncryptAppPassword(
		appPassword, encryptionPassword *cryptoDomain.SecretString,
	) (cryptoDomain.Salt, *cryptoDomain.EncryptedAppPassword, error)

	// Decrypt opens settings with encryptionPassword, which is zeroed.
	Decrypt(
		settings *emailDomain.EncryptedSettings,
		encryptionPassword *cryptoDomain.SecretString,
	) (*emailDomain.DecryptedSettings, error)
}

// Sender delivers an email authenticated with credentials.
type Sender interface {
	Send(ctx context.Context, email emailDomain.Email, credentials *emailDomain.Credentials) error
}

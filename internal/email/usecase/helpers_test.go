package usecase

import (
	"crypto/sha256"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	cryptoService "github.com/allisson/mejla/internal/crypto/service"
	emailDomain "github.com/allisson/mejla/internal/email/domain"
	emailService "github.com/allisson/mejla/internal/email/service"
)

const (
	appPassword        = "swordfish123"
	encryptionPassword = "correct horse battery staple"
)

var (
	alice = emailDomain.MustParseAddress("alice@example.com")
	bob   = emailDomain.MustParseAddress("bob@example.com")
	carol = emailDomain.MustParseAddress("carol@example.com")
	dave  = emailDomain.MustParseAddress("dave@example.com")
)

type fastDeriver struct{}

func (fastDeriver) Derive(password *cryptoDomain.SecretString, salt cryptoDomain.Salt) *cryptoDomain.EncryptionKey {
	sum := sha256.Sum256(append(salt[:], password.Expose()...))
	defer cryptoDomain.Zero(sum[:])

	key, err := cryptoDomain.NewEncryptionKey(sum[:])
	if err != nil {
		panic(err)
	}
	return key
}

func newTestCipher() emailService.SettingsCipher {
	return emailService.NewSettingsCipher(
		cryptoService.NewAppPasswordService(fastDeriver{}, cryptoService.NewAEADManager(), cryptoDomain.AESGCM),
	)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleDocument() emailDomain.SettingsDocument {
	return emailDomain.SettingsDocument{
		Template:      emailDomain.DefaultTemplate(),
		SMTPServer:    emailDomain.DefaultSMTPServer,
		Sender:        emailDomain.Account{Name: "Alice Smith", Email: alice},
		Recipients:    emailDomain.NewAddressSet(bob),
		CcRecipients:  emailDomain.NewAddressSet(carol),
		BccRecipients: emailDomain.NewAddressSet(dave),
	}
}

// encryptSettings seals plaintext under password into a complete settings value.
func encryptSettings(
	t *testing.T,
	cipher emailService.SettingsCipher,
	plaintext, password string,
) *emailDomain.EncryptedSettings {
	t.Helper()

	salt, encrypted, err := cipher.EncryptAppPassword(
		cryptoDomain.NewSecretString(plaintext),
		cryptoDomain.NewSecretString(password),
	)
	require.NoError(t, err)

	doc := sampleDocument()
	doc.Salt = salt
	doc.AppPassword = encrypted

	settings, err := doc.Settings()
	require.NoError(t, err)
	return settings
}

// assertSettingsZeroed checks that both the sealed app password and the salt of
// settings have been wiped.
func assertSettingsZeroed(t *testing.T, settings *emailDomain.EncryptedSettings) {
	t.Helper()
	assert.True(t, settings.Salt().IsZero(), "salt is zeroed")
	assert.True(t, settings.AppPassword().SealedBox().IsZero(), "sealed box is zeroed")
}

// capturingCipher records the last app password it sealed.
type capturingCipher struct {
	emailService.SettingsCipher
	encrypted *cryptoDomain.EncryptedAppPassword
}

func (c *capturingCipher) EncryptAppPassword(
	appPassword, encryptionPassword *cryptoDomain.SecretString,
) (cryptoDomain.Salt, *cryptoDomain.EncryptedAppPassword, error) {
	salt, encrypted, err := c.SettingsCipher.EncryptAppPassword(appPassword, encryptionPassword)
	c.encrypted = encrypted
	return salt, encrypted, err
}

package repository

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	emailDomain "github.com/allisson/mejla/internal/email/domain"
)

func sampleSettings(t *testing.T, sender string) *emailDomain.EncryptedSettings {
	t.Helper()

	box, err := cryptoDomain.ParseSealedBox(bytes.Repeat([]byte{0x5a}, cryptoDomain.MinSealedBoxSize+8))
	require.NoError(t, err)

	var salt cryptoDomain.Salt
	copy(salt[:], bytes.Repeat([]byte{0xab}, cryptoDomain.SaltSize))

	doc := emailDomain.SettingsDocument{
		AppPassword: cryptoDomain.NewEncryptedAppPassword(cryptoDomain.AESGCM, box),
		Salt:        salt,
		Template:    emailDomain.DefaultTemplate(),
		SMTPServer:  emailDomain.DefaultSMTPServer,
		Sender:      emailDomain.Account{Name: "Sender", Email: emailDomain.MustParseAddress(sender)},
		Recipients:  emailDomain.NewAddressSet(emailDomain.MustParseAddress("bob@example.com")),
	}
	settings, err := doc.Settings()
	require.NoError(t, err)
	return settings
}

func documentJSON(t *testing.T, settings *emailDomain.EncryptedSettings) []byte {
	t.Helper()
	doc, err := emailDomain.EncodeSettings(settings)
	require.NoError(t, err)
	return doc
}

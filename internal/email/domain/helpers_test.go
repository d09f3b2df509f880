package domain

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
)

var (
	alice = MustParseAddress("alice@example.com")
	bob   = MustParseAddress("bob@example.com")
	carol = MustParseAddress("carol@example.com")
	dave  = MustParseAddress("dave@example.com")
	erin  = MustParseAddress("erin@example.com")
)

func sampleSalt(b byte) cryptoDomain.Salt {
	var s cryptoDomain.Salt
	copy(s[:], bytes.Repeat([]byte{b}, cryptoDomain.SaltSize))
	return s
}

func sampleEncryptedAppPassword(t *testing.T, b byte) *cryptoDomain.EncryptedAppPassword {
	t.Helper()
	box, err := cryptoDomain.ParseSealedBox(bytes.Repeat([]byte{b}, cryptoDomain.MinSealedBoxSize+8))
	require.NoError(t, err)
	return cryptoDomain.NewEncryptedAppPassword(cryptoDomain.AESGCM, box)
}

func sampleDocument(t *testing.T) SettingsDocument {
	t.Helper()
	return SettingsDocument{
		AppPassword:   sampleEncryptedAppPassword(t, 0x5a),
		Salt:          sampleSalt(0xab),
		Template:      DefaultTemplate(),
		SMTPServer:    DefaultSMTPServer,
		Sender:        Account{Name: "Alice Smith", Email: alice},
		Recipients:    NewAddressSet(alice, bob),
		CcRecipients:  NewAddressSet(carol),
		BccRecipients: NewAddressSet(dave, erin),
	}
}

func sampleEncryptedSettings(t *testing.T) *EncryptedSettings {
	t.Helper()
	s, err := sampleDocument(t).Settings()
	require.NoError(t, err)
	return s
}

func openWith(plaintext string) func(*cryptoDomain.EncryptedAppPassword) (*cryptoDomain.SecretString, error) {
	return func(*cryptoDomain.EncryptedAppPassword) (*cryptoDomain.SecretString, error) {
		return cryptoDomain.NewSecretString(plaintext), nil
	}
}

func sampleDecryptedSettings(t *testing.T, plaintext string) *DecryptedSettings {
	t.Helper()
	s, err := DecryptSettings(sampleEncryptedSettings(t), openWith(plaintext))
	require.NoError(t, err)
	return s
}

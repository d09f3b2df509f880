package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	emailDomain "github.com/allisson/mejla/internal/email/domain"
	emailUseCase "github.com/allisson/mejla/internal/email/usecase"
)

// mockSettingsUseCase is a local mock for emailUseCase.SettingsUseCase. The
// shared mocks package cannot import the usecase package.
type mockSettingsUseCase struct {
	mock.Mock
}

func (m *mockSettingsUseCase) Configure(
	ctx context.Context,
	profile string,
	selector emailDomain.FieldSelector,
) (*emailDomain.EncryptedSettings, error) {
	args := m.Called(ctx, profile, selector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*emailDomain.EncryptedSettings), args.Error(1)
}

func (m *mockSettingsUseCase) Get(ctx context.Context, profile string) (*emailDomain.EncryptedSettings, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*emailDomain.EncryptedSettings), args.Error(1)
}

func (m *mockSettingsUseCase) Unlock(
	ctx context.Context,
	profile string,
	encryptionPassword *cryptoDomain.SecretString,
) (*emailDomain.DecryptedSettings, error) {
	args := m.Called(ctx, profile, encryptionPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*emailDomain.DecryptedSettings), args.Error(1)
}

func (m *mockSettingsUseCase) Send(ctx context.Context, input *emailUseCase.SendInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *mockSettingsUseCase) VerifyAll(
	ctx context.Context,
	encryptionPassword *cryptoDomain.SecretString,
) ([]emailUseCase.VerifyResult, error) {
	args := m.Called(ctx, encryptionPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]emailUseCase.VerifyResult), args.Error(1)
}

func sampleSettings(t *testing.T, replyTo *emailDomain.Account) *emailDomain.EncryptedSettings {
	t.Helper()

	box, err := cryptoDomain.ParseSealedBox(bytes.Repeat([]byte{0x5a}, cryptoDomain.MinSealedBoxSize+8))
	require.NoError(t, err)

	var salt cryptoDomain.Salt
	copy(salt[:], bytes.Repeat([]byte{0xab}, cryptoDomain.SaltSize))

	doc := emailDomain.SettingsDocument{
		AppPassword: cryptoDomain.NewEncryptedAppPassword(cryptoDomain.AESGCM, box),
		Salt:        salt,
		Template:    emailDomain.Template{SubjectFormat: "Invoice {month}", BodyFormat: "See attached."},
		ReplyTo:     replyTo,
		SMTPServer:  emailDomain.DefaultSMTPServer,
		Sender:      emailDomain.Account{Name: "Alice", Email: emailDomain.MustParseAddress("alice@example.com")},
		Recipients: emailDomain.NewAddressSet(
			emailDomain.MustParseAddress("bob@example.com"),
			emailDomain.MustParseAddress("carol@example.com"),
		),
		BccRecipients: emailDomain.NewAddressSet(emailDomain.MustParseAddress("dave@example.com")),
	}
	settings, err := doc.Settings()
	require.NoError(t, err)
	return settings
}

func TestParseReplacements(t *testing.T) {
	t.Run("keeps order and splits on the first equals sign", func(t *testing.T) {
		replacements, err := parseReplacements([]string{"{month}=May", "{note}=a=b", "{empty}="})

		require.NoError(t, err)
		assert.Equal(t, []emailDomain.Replacement{
			{Placeholder: "{month}", Value: "May"},
			{Placeholder: "{note}", Value: "a=b"},
			{Placeholder: "{empty}", Value: ""},
		}, replacements)
	})

	t.Run("missing separator", func(t *testing.T) {
		_, err := parseReplacements([]string{"{month}"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected placeholder=value")
	})

	t.Run("empty placeholder", func(t *testing.T) {
		_, err := parseReplacements([]string{"=May"})
		require.Error(t, err)
	})
}

func TestLoadAttachments(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "invoice.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.7"), 0o600))
	upperPDF := filepath.Join(dir, "SCAN.PDF")
	require.NoError(t, os.WriteFile(upperPDF, []byte("%PDF-1.4"), 0o600))
	notes := filepath.Join(dir, "notes.unknownext")
	require.NoError(t, os.WriteFile(notes, []byte("hello"), 0o600))

	t.Run("reads files and guesses type", func(t *testing.T) {
		attachments, err := loadAttachments([]string{pdf})

		require.NoError(t, err)
		require.Len(t, attachments, 1)
		assert.Equal(t, "invoice.pdf", attachments[0].Name)
		assert.Equal(t, emailDomain.PDFMIMEType, attachments[0].MIMEType)
		assert.Equal(t, []byte("%PDF-1.7"), attachments[0].Data)
	})

	t.Run("pdf extension is matched case-insensitively", func(t *testing.T) {
		attachments, err := loadAttachments([]string{upperPDF, notes})

		require.NoError(t, err)
		require.Len(t, attachments, 2)
		assert.True(t, attachments[0].Equal(emailDomain.NewPDFAttachment("SCAN.PDF", []byte("%PDF-1.4"))))
		assert.Equal(t, "application/octet-stream", attachments[1].MIMEType)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadAttachments([]string{filepath.Join(dir, "missing.pdf")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read attachment")
	})
}

func TestFieldSelectorUsage(t *testing.T) {
	usage := FieldSelectorUsage()

	for _, selector := range emailDomain.FieldSelectors() {
		assert.Contains(t, usage, selector.String())
	}
	assert.Contains(t, usage, "all, app-password, encryption-password")
}

// Package mocks provides mock implementations of the email services for testing.
package mocks

import (
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	emailDomain "github.com/allisson/mejla/internal/email/domain"
)

// MockSettingsCipher is a mock implementation of SettingsCipher for testing.
type MockSettingsCipher struct {
	mock.Mock
}

// EncryptAppPassword mocks the EncryptAppPassword method of SettingsCipher.
func (m *MockSettingsCipher) EncryptAppPassword(
	appPassword, encryptionPassword *cryptoDomain.SecretString,
) (cryptoDomain.Salt, *cryptoDomain.EncryptedAppPassword, error) {
	args := m.Called(appPassword, encryptionPassword)
	if args.Get(1) == nil {
		return args.Get(0).(cryptoDomain.Salt), nil, args.Error(2)
	}
	return args.Get(0).(cryptoDomain.Salt), args.Get(1).(*cryptoDomain.EncryptedAppPassword), args.Error(2)
}

// Decrypt mocks the Decrypt method of SettingsCipher.
func (m *MockSettingsCipher) Decrypt(
	settings *emailDomain.EncryptedSettings,
	encryptionPassword *cryptoDomain.SecretString,
) (*emailDomain.DecryptedSettings, error) {
	args := m.Called(settings, encryptionPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*emailDomain.DecryptedSettings), args.Error(1)
}

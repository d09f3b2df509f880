package service

import (
	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	cryptoService "github.com/allisson/mejla/internal/crypto/service"
	emailDomain "github.com/allisson/mejla/internal/email/domain"
)

// settingsCipher implements SettingsCipher on top of an app password cipher.
type settingsCipher struct {
	appPasswords cryptoService.AppPasswordCipher
}

// NewSettingsCipher creates a SettingsCipher.
func NewSettingsCipher(appPasswords cryptoService.AppPasswordCipher) SettingsCipher {
	return &settingsCipher{appPasswords: appPasswords}
}

// EncryptAppPassword generates a new salt and seals appPassword with it. A salt is
// never reused across encryptions.
func (c *settingsCipher) EncryptAppPassword(
	appPassword, encryptionPassword *cryptoDomain.SecretString,
) (cryptoDomain.Salt, *cryptoDomain.EncryptedAppPassword, error) {
	salt := cryptoDomain.GenerateSalt()
	encrypted, err := c.appPasswords.Encrypt(appPassword, encryptionPassword, salt)
	if err != nil {
		return cryptoDomain.Salt{}, nil, err
	}
	return salt, encrypted, nil
}

// Decrypt derives the key from encryptionPassword and the stored salt, then opens
// the app password. The key and encryptionPassword are zeroed before returning.
// A wrong password and corrupted ciphertext both yield cryptoDomain.ErrDecryptionFailed.
func (c *settingsCipher) Decrypt(
	settings *emailDomain.EncryptedSettings,
	encryptionPassword *cryptoDomain.SecretString,
) (*emailDomain.DecryptedSettings, error) {
	defer encryptionPassword.Zero()

	key := c.appPasswords.DeriveKey(encryptionPassword, settings.Salt())
	defer key.Zero()

	return emailDomain.DecryptSettings(settings,
		func(p *cryptoDomain.EncryptedAppPassword) (*cryptoDomain.SecretString, error) {
			return c.appPasswords.Decrypt(p, key)
		})
}

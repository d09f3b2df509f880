package service

import (
	"unicode/utf8"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
)

// AppPasswordService seals SMTP app passwords with keys derived from an
// encryption password.
type AppPasswordService struct {
	deriver     KeyDeriver
	aeadManager AEADManager
	algorithm   cryptoDomain.Algorithm
}

// NewAppPasswordService creates an AppPasswordService sealing new passwords with alg.
// Decryption always uses the algorithm recorded in the encrypted value.
func NewAppPasswordService(
	deriver KeyDeriver,
	aeadManager AEADManager,
	alg cryptoDomain.Algorithm,
) *AppPasswordService {
	return &AppPasswordService{
		deriver:     deriver,
		aeadManager: aeadManager,
		algorithm:   alg,
	}
}

// DeriveKey derives the key for encryptionPassword and salt.
func (s *AppPasswordService) DeriveKey(
	encryptionPassword *cryptoDomain.SecretString,
	salt cryptoDomain.Salt,
) *cryptoDomain.EncryptionKey {
	return s.deriver.Derive(encryptionPassword, salt)
}

// Encrypt derives a key from encryptionPassword and salt and seals appPassword
// with it. appPassword, encryptionPassword and the derived key are all zeroed
// before Encrypt returns.
func (s *AppPasswordService) Encrypt(
	appPassword, encryptionPassword *cryptoDomain.SecretString,
	salt cryptoDomain.Salt,
) (*cryptoDomain.EncryptedAppPassword, error) {
	defer appPassword.Zero()
	defer encryptionPassword.Zero()

	var encrypted *cryptoDomain.EncryptedAppPassword
	err := WithKey(s.deriver, encryptionPassword, salt, func(key *cryptoDomain.EncryptionKey) error {
		aead, err := s.aeadManager.CreateCipher(key, s.algorithm)
		if err != nil {
			return err
		}

		box, err := aead.Seal(appPassword.Expose(), nil)
		if err != nil {
			return err
		}

		encrypted = cryptoDomain.NewEncryptedAppPassword(s.algorithm, box)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return encrypted, nil
}

// Decrypt opens encrypted with key. The key is not zeroed so that it can be
// reused; that stays the caller's job.
func (s *AppPasswordService) Decrypt(
	encrypted *cryptoDomain.EncryptedAppPassword,
	key *cryptoDomain.EncryptionKey,
) (*cryptoDomain.SecretString, error) {
	if encrypted == nil {
		return nil, &cryptoDomain.InvalidBytesTooShortError{
			ExpectedAtLeast: cryptoDomain.MinSealedBoxSize,
		}
	}

	box := encrypted.SealedBox()
	if n := len(box.Bytes()); n < cryptoDomain.MinSealedBoxSize {
		return nil, &cryptoDomain.InvalidBytesTooShortError{
			ExpectedAtLeast: cryptoDomain.MinSealedBoxSize,
			Found:           n,
		}
	}

	aead, err := s.aeadManager.CreateCipher(key, encrypted.Algorithm())
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(box, nil)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(plaintext) {
		cryptoDomain.Zero(plaintext)
		return nil, cryptoDomain.ErrInvalidUTF8
	}

	return cryptoDomain.NewSecretStringFromBytes(plaintext), nil
}

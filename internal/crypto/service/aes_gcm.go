package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
)

// AESGCMCipher implements the AEAD interface using AES-256-GCM
// (Advanced Encryption Standard with Galois/Counter Mode).
//
// Security properties:
//   - 256-bit key size
//   - 12-byte nonce, randomly generated inside Seal for every call
//   - 16-byte authentication tag, appended to the ciphertext
//
// Nonce reuse under the same key breaks GCM confidentiality, which is why Seal
// never accepts a caller supplied nonce.
//
// The cipher instance is stateless and safe for concurrent use.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-256-GCM cipher instance from a 32-byte key.
func NewAESGCM(key *cryptoDomain.EncryptionKey) (*AESGCMCipher, error) {
	if key == nil {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Seal encrypts plaintext with optional additional authenticated data.
func (a *AESGCMCipher) Seal(plaintext, aad []byte) (cryptoDomain.SealedBox, error) {
	return seal(a.aead, plaintext, aad)
}

// Open authenticates and decrypts box. Wrong keys, tampered ciphertext and
// mismatched AAD all yield cryptoDomain.ErrDecryptionFailed.
func (a *AESGCMCipher) Open(box cryptoDomain.SealedBox, aad []byte) ([]byte, error) {
	return open(a.aead, box, aad)
}

func seal(aead cipher.AEAD, plaintext, aad []byte) (cryptoDomain.SealedBox, error) {
	nonce := make([]byte, aead.NonceSize())
	mustRandom(nonce)

	ciphertext := aead.Seal(nil, nonce, plaintext, aad)
	return cryptoDomain.NewSealedBox(nonce, ciphertext)
}

func open(aead cipher.AEAD, box cryptoDomain.SealedBox, aad []byte) ([]byte, error) {
	nonce := box.Nonce()
	if len(nonce) != aead.NonceSize() {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	plaintext, err := aead.Open(nil, nonce, box.Ciphertext(), aad)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}

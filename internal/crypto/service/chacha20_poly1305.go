package service

import (
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
)

// ChaCha20Poly1305Cipher implements the AEAD interface using ChaCha20-Poly1305.
//
// It produces the same sealed box layout as AES-256-GCM (12-byte nonce, 16-byte
// tag) and is efficient on platforms without hardware AES acceleration.
type ChaCha20Poly1305Cipher struct {
	aead cipher.AEAD
}

// NewChaCha20Poly1305 creates a new ChaCha20-Poly1305 cipher instance.
func NewChaCha20Poly1305(key *cryptoDomain.EncryptionKey) (*ChaCha20Poly1305Cipher, error) {
	if key == nil {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.New(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}

	return &ChaCha20Poly1305Cipher{aead: aead}, nil
}

// Seal encrypts plaintext with optional additional authenticated data.
func (c *ChaCha20Poly1305Cipher) Seal(plaintext, aad []byte) (cryptoDomain.SealedBox, error) {
	return seal(c.aead, plaintext, aad)
}

// Open verifies the Poly1305 tag and decrypts box.
func (c *ChaCha20Poly1305Cipher) Open(box cryptoDomain.SealedBox, aad []byte) ([]byte, error) {
	return open(c.aead, box, aad)
}

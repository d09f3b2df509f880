// Package service implements the cryptographic primitives used to keep SMTP app
// passwords at rest: password based key derivation and AEAD sealed boxes.
package service

import (
	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Seal encrypts plaintext under a freshly generated nonce. Callers can never
	// supply the nonce.
	Seal(plaintext, aad []byte) (cryptoDomain.SealedBox, error)

	// Open authenticates and decrypts a sealed box. Any failure is reported as
	// cryptoDomain.ErrDecryptionFailed.
	Open(box cryptoDomain.SealedBox, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key *cryptoDomain.EncryptionKey, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyDeriver maps an encryption password and a salt to an encryption key.
// Identical inputs always yield identical keys.
type KeyDeriver interface {
	Derive(password *cryptoDomain.SecretString, salt cryptoDomain.Salt) *cryptoDomain.EncryptionKey
}

// AppPasswordCipher seals and opens a single SMTP app password.
type AppPasswordCipher interface {
	// DeriveKey derives the key for encryptionPassword and salt. The caller owns
	// the returned key and must zero it.
	DeriveKey(encryptionPassword *cryptoDomain.SecretString, salt cryptoDomain.Salt) *cryptoDomain.EncryptionKey

	// Encrypt derives a key and seals appPassword. Both secrets are zeroed before
	// Encrypt returns.
	Encrypt(
		appPassword, encryptionPassword *cryptoDomain.SecretString,
		salt cryptoDomain.Salt,
	) (*cryptoDomain.EncryptedAppPassword, error)

	// Decrypt opens encrypted with an already derived key.
	Decrypt(
		encrypted *cryptoDomain.EncryptedAppPassword,
		key *cryptoDomain.EncryptionKey,
	) (*cryptoDomain.SecretString, error)
}

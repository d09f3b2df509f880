package service

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
)

// PBKDF2HKDFDeriver derives encryption keys in two stages:
//
//  1. PBKDF2-HMAC-SHA256 stretches the password with the salt, making offline
//     guessing expensive.
//  2. HKDF-SHA256 extracts with the same salt and expands the stretched material
//     into exactly 32 bytes bound to cryptoDomain.KDFInfo.
//
// The deriver holds no mutable state and is safe for concurrent use.
type PBKDF2HKDFDeriver struct {
	iterations int
	info       []byte
}

// NewKeyDeriver creates a deriver running the given number of PBKDF2 iterations.
// Counts below cryptoDomain.MinKDFIterations are rejected.
func NewKeyDeriver(iterations int) (*PBKDF2HKDFDeriver, error) {
	if iterations < cryptoDomain.MinKDFIterations {
		return nil, fmt.Errorf(
			"%w: %d < %d",
			cryptoDomain.ErrKDFIterationsTooLow,
			iterations,
			cryptoDomain.MinKDFIterations,
		)
	}
	return newKeyDeriver(iterations), nil
}

func newKeyDeriver(iterations int) *PBKDF2HKDFDeriver {
	return &PBKDF2HKDFDeriver{
		iterations: iterations,
		info:       []byte(cryptoDomain.KDFInfo),
	}
}

// Derive returns the key for password and salt. The caller owns the key and must
// zero it once the single operation that needed it is done. The password is left
// untouched.
func (d *PBKDF2HKDFDeriver) Derive(
	password *cryptoDomain.SecretString,
	salt cryptoDomain.Salt,
) *cryptoDomain.EncryptionKey {
	stretched := pbkdf2.Key(password.Expose(), salt[:], d.iterations, cryptoDomain.KeySize, sha256.New)
	defer cryptoDomain.Zero(stretched)

	okm := make([]byte, cryptoDomain.KeySize)
	defer cryptoDomain.Zero(okm)

	reader := hkdf.New(sha256.New, stretched, salt[:], d.info)
	if _, err := io.ReadFull(reader, okm); err != nil {
		panic(fmt.Sprintf("hkdf expand failed: %v", err))
	}

	key, err := cryptoDomain.NewEncryptionKey(okm)
	if err != nil {
		panic(fmt.Sprintf("derived key has wrong size: %v", err))
	}
	return key
}

// WithKey derives a key, hands it to fn and zeroes it on every exit path,
// including a panic inside fn.
func WithKey(
	deriver KeyDeriver,
	password *cryptoDomain.SecretString,
	salt cryptoDomain.Salt,
	fn func(key *cryptoDomain.EncryptionKey) error,
) error {
	key := deriver.Derive(password, salt)
	defer key.Zero()
	return fn(key)
}

package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Salt is the public, non-secret input to key derivation. It is generated once when
// an app password is first encrypted and stored next to the ciphertext.
//
// Any 16-byte value is accepted when loading from storage: a forged salt only yields
// a different key, which makes decryption fail closed.
type Salt [SaltSize]byte

// GenerateSalt draws a fresh salt from the operating system CSPRNG.
// It panics if the CSPRNG is unusable.
func GenerateSalt() Salt {
	var s Salt
	if _, err := rand.Read(s[:]); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return s
}

// ParseSalt decodes a hex encoded salt.
func ParseSalt(s string) (Salt, error) {
	var salt Salt
	if err := salt.UnmarshalText([]byte(s)); err != nil {
		return Salt{}, err
	}
	return salt, nil
}

// Bytes returns the salt as a slice backed by s.
func (s *Salt) Bytes() []byte {
	return s[:]
}

// IsZero reports whether every byte of the salt is zero.
func (s Salt) IsZero() bool {
	return s == Salt{}
}

// Zero wipes the salt in place.
func (s *Salt) Zero() {
	if s == nil {
		return
	}
	Zero(s[:])
}

// String returns the hex encoding of the salt.
func (s Salt) String() string {
	return hex.EncodeToString(s[:])
}

// MarshalText encodes the salt as hex.
func (s Salt) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(SaltSize))
	hex.Encode(out, s[:])
	return out, nil
}

// UnmarshalText decodes a hex salt that must be exactly SaltSize bytes long.
func (s *Salt) UnmarshalText(text []byte) error {
	if hex.DecodedLen(len(text)) != SaltSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSaltSize, SaltSize, hex.DecodedLen(len(text)))
	}
	if _, err := hex.Decode(s[:], text); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSaltSize, err)
	}
	return nil
}

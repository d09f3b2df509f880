package domain

import (
	"crypto/subtle"
	"log/slog"
)

const redacted = "[REDACTED]"

// EncryptionKey is a 32-byte symmetric key derived from an encryption password.
//
// It lives only in memory: it has no serialized form and every textual
// representation is redacted. Always handle it through a pointer and call Zero
// as soon as the single operation that needed it has finished.
type EncryptionKey struct {
	key [KeySize]byte
}

// NewEncryptionKey copies b into a new key. The caller remains responsible for
// wiping b.
func NewEncryptionKey(b []byte) (*EncryptionKey, error) {
	if len(b) != KeySize {
		return nil, ErrInvalidKeySize
	}
	k := &EncryptionKey{}
	copy(k.key[:], b)
	return k, nil
}

// Bytes returns the key material. The slice aliases the key, so it is wiped by Zero.
func (k *EncryptionKey) Bytes() []byte {
	return k.key[:]
}

// Equal compares two keys in constant time.
func (k *EncryptionKey) Equal(other *EncryptionKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return subtle.ConstantTimeCompare(k.key[:], other.key[:]) == 1
}

// Zero wipes the key material.
func (k *EncryptionKey) Zero() {
	if k == nil {
		return
	}
	Zero(k.key[:])
}

func (k *EncryptionKey) String() string   { return "EncryptionKey(" + redacted + ")" }
func (k *EncryptionKey) GoString() string { return k.String() }

// LogValue keeps key material out of structured logs.
func (k *EncryptionKey) LogValue() slog.Value { return slog.StringValue(redacted) }

// MarshalText always fails: keys are never encoded.
func (k *EncryptionKey) MarshalText() ([]byte, error) {
	return nil, ErrSecretNotSerializable
}

// MarshalJSON always fails: keys are never encoded.
func (k *EncryptionKey) MarshalJSON() ([]byte, error) {
	return nil, ErrSecretNotSerializable
}

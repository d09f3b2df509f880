package domain

import (
	"crypto/subtle"
	"log/slog"
)

// SecretString holds secret text, such as an SMTP app password or an encryption
// password, in a byte buffer that can be wiped.
//
// Its default comparison and every textual representation are intentionally
// restricted: use Expose or Equal when the raw bytes are really needed.
type SecretString struct {
	b []byte
}

// NewSecretString copies s into a new SecretString. The Go string s itself
// cannot be wiped, so prefer NewSecretStringFromBytes when the input is a buffer.
func NewSecretString(s string) *SecretString {
	return &SecretString{b: []byte(s)}
}

// NewSecretStringFromBytes takes ownership of b without copying it.
func NewSecretStringFromBytes(b []byte) *SecretString {
	return &SecretString{b: b}
}

// Expose returns the secret bytes. The slice aliases the secret and is wiped by Zero.
func (s *SecretString) Expose() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len returns the secret length in bytes.
func (s *SecretString) Len() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// Clone returns an independent copy that must be zeroed separately.
func (s *SecretString) Clone() *SecretString {
	if s == nil {
		return nil
	}
	b := make([]byte, len(s.b))
	copy(b, s.b)
	return &SecretString{b: b}
}

// Equal compares the exposed secret bytes in constant time.
func (s *SecretString) Equal(other *SecretString) bool {
	if s == nil || other == nil {
		return s == other
	}
	return subtle.ConstantTimeCompare(s.b, other.b) == 1
}

// Zero wipes the secret. The SecretString is empty afterwards.
func (s *SecretString) Zero() {
	if s == nil {
		return
	}
	Zero(s.b)
	s.b = s.b[:0]
}

func (s *SecretString) String() string   { return redacted }
func (s *SecretString) GoString() string { return "SecretString(" + redacted + ")" }

// LogValue keeps the secret out of structured logs.
func (s *SecretString) LogValue() slog.Value { return slog.StringValue(redacted) }

// MarshalText always fails: plaintext secrets are never encoded.
func (s *SecretString) MarshalText() ([]byte, error) {
	return nil, ErrSecretNotSerializable
}

// MarshalJSON always fails: plaintext secrets are never encoded.
func (s *SecretString) MarshalJSON() ([]byte, error) {
	return nil, ErrSecretNotSerializable
}

package domain

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// SealedBox is an AEAD output: a nonce plus ciphertext with the authentication tag
// appended. Decryption either returns the original plaintext or fails.
//
// A SealedBox can only be built through NewSealedBox or ParseSealedBox, which
// guarantee the nonce has the right size and the ciphertext holds at least a tag.
type SealedBox struct {
	nonce      []byte
	ciphertext []byte
}

// NewSealedBox builds a sealed box from its parts, copying both slices.
func NewSealedBox(nonce, ciphertext []byte) (SealedBox, error) {
	if len(nonce) != NonceSize {
		return SealedBox{}, fmt.Errorf("%w: nonce must be %d bytes, got %d",
			ErrInvalidBytesTooShort, NonceSize, len(nonce))
	}
	if len(ciphertext) < TagSize {
		return SealedBox{}, &InvalidBytesTooShortError{
			ExpectedAtLeast: MinSealedBoxSize,
			Found:           len(nonce) + len(ciphertext),
		}
	}
	return SealedBox{
		nonce:      bytes.Clone(nonce),
		ciphertext: bytes.Clone(ciphertext),
	}, nil
}

// ParseSealedBox splits nonce||ciphertext back into a sealed box.
func ParseSealedBox(b []byte) (SealedBox, error) {
	if len(b) < MinSealedBoxSize {
		return SealedBox{}, &InvalidBytesTooShortError{
			ExpectedAtLeast: MinSealedBoxSize,
			Found:           len(b),
		}
	}
	return NewSealedBox(b[:NonceSize], b[NonceSize:])
}

// Nonce returns a copy of the nonce.
func (s SealedBox) Nonce() []byte {
	return bytes.Clone(s.nonce)
}

// Ciphertext returns a copy of the ciphertext, tag included.
func (s SealedBox) Ciphertext() []byte {
	return bytes.Clone(s.ciphertext)
}

// Bytes returns nonce||ciphertext.
func (s SealedBox) Bytes() []byte {
	out := make([]byte, 0, len(s.nonce)+len(s.ciphertext))
	out = append(out, s.nonce...)
	return append(out, s.ciphertext...)
}

// IsZero reports whether the box is the zero value or has been wiped.
func (s SealedBox) IsZero() bool {
	return len(s.nonce) == 0 && len(s.ciphertext) == 0
}

// Equal reports whether both boxes hold the same nonce and ciphertext.
func (s SealedBox) Equal(other SealedBox) bool {
	return bytes.Equal(s.nonce, other.nonce) && bytes.Equal(s.ciphertext, other.ciphertext)
}

// Zero wipes the nonce and ciphertext.
func (s *SealedBox) Zero() {
	Zero(s.nonce)
	Zero(s.ciphertext)
	s.nonce = nil
	s.ciphertext = nil
}

// String returns the hex encoding of nonce||ciphertext.
func (s SealedBox) String() string {
	return hex.EncodeToString(s.Bytes())
}

// MarshalText encodes the box as hex.
func (s SealedBox) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a hex encoded box and checks its length.
func (s *SealedBox) UnmarshalText(text []byte) error {
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBytesTooShort, err)
	}
	box, err := ParseSealedBox(raw)
	if err != nil {
		return err
	}
	*s = box
	return nil
}

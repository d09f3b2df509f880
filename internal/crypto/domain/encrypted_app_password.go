package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncryptedAppPassword holds the sealed box of exactly one SMTP app password
// together with the algorithm that sealed it.
type EncryptedAppPassword struct {
	algorithm Algorithm
	box       SealedBox
}

// NewEncryptedAppPassword wraps a sealed box produced by alg.
func NewEncryptedAppPassword(alg Algorithm, box SealedBox) *EncryptedAppPassword {
	return &EncryptedAppPassword{algorithm: alg, box: box}
}

// Algorithm returns the AEAD algorithm that sealed the password.
func (e *EncryptedAppPassword) Algorithm() Algorithm {
	return e.algorithm
}

// SealedBox returns the sealed password.
func (e *EncryptedAppPassword) SealedBox() SealedBox {
	return e.box
}

// Clone returns a deep copy.
func (e *EncryptedAppPassword) Clone() *EncryptedAppPassword {
	if e == nil {
		return nil
	}
	return &EncryptedAppPassword{
		algorithm: e.algorithm,
		box: SealedBox{
			nonce:      bytes.Clone(e.box.nonce),
			ciphertext: bytes.Clone(e.box.ciphertext),
		},
	}
}

// Equal reports whether both values hold the same algorithm and sealed box.
func (e *EncryptedAppPassword) Equal(other *EncryptedAppPassword) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.algorithm == other.algorithm && e.box.Equal(other.box)
}

// Zero wipes the sealed box.
func (e *EncryptedAppPassword) Zero() {
	if e == nil {
		return
	}
	e.box.Zero()
}

func (e *EncryptedAppPassword) String() string {
	return fmt.Sprintf("EncryptedAppPassword(%s, %d bytes)", e.algorithm, len(e.box.nonce)+len(e.box.ciphertext))
}

type encryptedAppPasswordJSON struct {
	Algorithm Algorithm `json:"algorithm"`
	SealedBox SealedBox `json:"sealed_box"`
}

// MarshalJSON encodes the password as {"algorithm": ..., "sealed_box": "<hex>"}.
func (e *EncryptedAppPassword) MarshalJSON() ([]byte, error) {
	return json.Marshal(encryptedAppPasswordJSON{
		Algorithm: e.algorithm,
		SealedBox: e.box,
	})
}

// UnmarshalJSON decodes and validates an encrypted password.
func (e *EncryptedAppPassword) UnmarshalJSON(data []byte) error {
	var raw encryptedAppPasswordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Algorithm == "" {
		raw.Algorithm = AESGCM
	}
	alg, err := ParseAlgorithm(string(raw.Algorithm))
	if err != nil {
		return err
	}
	if raw.SealedBox.IsZero() {
		return &InvalidBytesTooShortError{ExpectedAtLeast: MinSealedBoxSize, Found: 0}
	}
	e.algorithm = alg
	e.box = raw.SealedBox
	return nil
}

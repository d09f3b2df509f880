package domain

import (
	"fmt"

	"github.com/allisson/mejla/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cryptographic failures.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	//
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305).
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the cryptographic key size is invalid.
	//
	// Encryption keys must be exactly 32 bytes (256 bits).
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrInvalidSaltSize indicates a stored salt does not decode to exactly 16 bytes.
	ErrInvalidSaltSize = errors.Wrap(errors.ErrInvalidInput, "invalid salt size")

	// ErrKDFIterationsTooLow indicates a key deriver was configured below MinKDFIterations.
	ErrKDFIterationsTooLow = errors.Wrap(errors.ErrInvalidInput, "key derivation iterations below minimum")

	// ErrInvalidUTF8 indicates decrypted bytes are not valid UTF-8 text.
	ErrInvalidUTF8 = errors.Wrap(errors.ErrInvalidInput, "failed to parse string into a valid UTF-8 string")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This error can occur due to:
	//   - Wrong encryption password (and therefore wrong derived key)
	//   - Ciphertext or tag has been tampered with
	//   - Nonce has been modified
	//   - Corrupted encrypted data
	//
	// The specific cause is never disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrUnauthorized, "failed to decrypt data with AES")

	// ErrInvalidBytesTooShort is matched by every *InvalidBytesTooShortError.
	ErrInvalidBytesTooShort = errors.Wrap(errors.ErrInvalidInput, "invalid AES bytes")

	// ErrSecretNotSerializable is returned when plaintext secret material reaches an encoder.
	ErrSecretNotSerializable = errors.Wrap(errors.ErrInvalidInput, "secret value cannot be serialized")
)

// InvalidBytesTooShortError reports a sealed box that is shorter than a nonce plus tag.
// It is returned before any cryptographic operation is attempted.
type InvalidBytesTooShortError struct {
	ExpectedAtLeast int
	Found           int
}

func (e *InvalidBytesTooShortError) Error() string {
	return fmt.Sprintf(
		"invalid AES bytes, expected at least %d bytes, but found %d bytes",
		e.ExpectedAtLeast,
		e.Found,
	)
}

// Unwrap lets errors.Is match ErrInvalidBytesTooShort and errors.ErrInvalidInput.
func (e *InvalidBytesTooShortError) Unwrap() error {
	return ErrInvalidBytesTooShort
}

package domain

// Algorithm represents the AEAD algorithm used to seal an app password.
//
// Both supported algorithms use a 256-bit key, a 12-byte nonce and a 16-byte
// authentication tag, so a sealed box has the same layout regardless of which
// one produced it.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	// It is the default and is hardware accelerated on CPUs with AES-NI.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	// Useful on platforms without AES hardware acceleration.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

const (
	// KeySize is the size in bytes of an EncryptionKey.
	KeySize = 32

	// SaltSize is the size in bytes of a Salt.
	SaltSize = 16

	// NonceSize is the size in bytes of a sealed box nonce.
	NonceSize = 12

	// TagSize is the size in bytes of the authentication tag appended to ciphertext.
	TagSize = 16

	// MinSealedBoxSize is the smallest valid sealed box: a nonce and a tag around
	// an empty plaintext.
	MinSealedBoxSize = NonceSize + TagSize
)

const (
	// DefaultKDFIterations is the PBKDF2-HMAC-SHA256 iteration count used to
	// stretch encryption passwords.
	DefaultKDFIterations = 600000

	// MinKDFIterations is the lowest iteration count a production deriver accepts.
	MinKDFIterations = 100000

	// KDFInfo binds derived keys to their single purpose in the HKDF expand step.
	KDFInfo = "mejla smtp app password encryption key v1"
)

// ParseAlgorithm converts a configuration string into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM, ChaCha20:
		return Algorithm(s), nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}

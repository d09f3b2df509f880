package service

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
)

// testIterations keeps PBKDF2 fast in tests. Production derivers are built with
// NewKeyDeriver, which enforces the minimum.
const testIterations = 1000

func newTestKey(t *testing.T) *cryptoDomain.EncryptionKey {
	t.Helper()
	raw := make([]byte, cryptoDomain.KeySize)
	_, err := rand.Read(raw)
	require.NoError(t, err)

	key, err := cryptoDomain.NewEncryptionKey(raw)
	require.NoError(t, err)
	t.Cleanup(key.Zero)
	return key
}

func fixedSalt(b byte) cryptoDomain.Salt {
	var s cryptoDomain.Salt
	copy(s[:], bytes.Repeat([]byte{b}, cryptoDomain.SaltSize))
	return s
}

package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEncryptionKey(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		raw := bytes.Repeat([]byte{0x42}, KeySize)
		key, err := NewEncryptionKey(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, key.Bytes())

		raw[0] = 0
		assert.Equal(t, byte(0x42), key.Bytes()[0], "key must not alias the input")
	})

	t.Run("invalid sizes", func(t *testing.T) {
		for _, size := range []int{0, 16, 31, 33, 64} {
			_, err := NewEncryptionKey(make([]byte, size))
			assert.ErrorIs(t, err, ErrInvalidKeySize, "size %d", size)
		}
	})
}

func TestEncryptionKey_Equal(t *testing.T) {
	a, err := NewEncryptionKey(bytes.Repeat([]byte{1}, KeySize))
	require.NoError(t, err)
	b, err := NewEncryptionKey(bytes.Repeat([]byte{1}, KeySize))
	require.NoError(t, err)
	c, err := NewEncryptionKey(bytes.Repeat([]byte{2}, KeySize))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestEncryptionKey_Zero(t *testing.T) {
	key, err := NewEncryptionKey(bytes.Repeat([]byte{0xff}, KeySize))
	require.NoError(t, err)

	view := key.Bytes()
	key.Zero()
	assert.Equal(t, make([]byte, KeySize), view)

	var nilKey *EncryptionKey
	assert.NotPanics(t, func() { nilKey.Zero() })
}

func TestEncryptionKey_Redaction(t *testing.T) {
	key, err := NewEncryptionKey(bytes.Repeat([]byte{0x41}, KeySize))
	require.NoError(t, err)
	defer key.Zero()

	secret := string(bytes.Repeat([]byte{0x41}, KeySize))
	for _, out := range []string{
		key.String(),
		fmt.Sprintf("%v", key),
		fmt.Sprintf("%+v", key),
		fmt.Sprintf("%#v", key),
	} {
		assert.NotContains(t, out, secret)
		assert.Contains(t, out, "REDACTED")
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("derived", slog.Any("key", key))
	assert.NotContains(t, buf.String(), secret)

	_, err = json.Marshal(key)
	assert.ErrorIs(t, err, ErrSecretNotSerializable)
}

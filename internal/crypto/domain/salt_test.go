package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/mejla/internal/errors"
)

func TestGenerateSalt(t *testing.T) {
	t.Run("generates non-zero salts", func(t *testing.T) {
		s := GenerateSalt()
		assert.False(t, s.IsZero())
		assert.Len(t, s.Bytes(), SaltSize)
	})

	t.Run("generates unique salts", func(t *testing.T) {
		seen := make(map[Salt]struct{}, 1000)
		for i := 0; i < 1000; i++ {
			s := GenerateSalt()
			_, dup := seen[s]
			require.False(t, dup, "duplicate salt generated")
			seen[s] = struct{}{}
		}
	})
}

func TestParseSalt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: strings.Repeat("ab", SaltSize)},
		{name: "too short", input: strings.Repeat("ab", SaltSize-1), wantErr: true},
		{name: "too long", input: strings.Repeat("ab", SaltSize+1), wantErr: true},
		{name: "not hex", input: strings.Repeat("zz", SaltSize), wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSalt(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSaltSize)
				assert.ErrorIs(t, err, errors.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, s.String())
		})
	}
}

func TestSalt_JSON(t *testing.T) {
	var s Salt
	for i := range s {
		s[i] = 0xab
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `"`+strings.Repeat("ab", SaltSize)+`"`, string(data))

	var decoded Salt
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s, decoded)
}

func TestSalt_Zero(t *testing.T) {
	s := GenerateSalt()
	s.Zero()
	assert.True(t, s.IsZero())

	var nilSalt *Salt
	assert.NotPanics(t, func() { nilSalt.Zero() })
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	"github.com/allisson/mejla/internal/errors"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantLen  int
		wantErr  bool
	}{
		{name: "exactly minimum", password: "abcd"},
		{name: "long", password: "correct horse battery staple"},
		{name: "too short", password: "abc", wantLen: 3, wantErr: true},
		{name: "empty", password: "", wantLen: 0, wantErr: true},
		{name: "counts characters not bytes", password: "äöü", wantLen: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(cryptoDomain.NewSecretString(tt.password), DefaultPasswordMinLength)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var tooShort *PasswordTooShortError
			require.ErrorAs(t, err, &tooShort)
			assert.Equal(t, DefaultPasswordMinLength, tooShort.MinLength)
			assert.Equal(t, tt.wantLen, tooShort.ActualLength)
			assert.ErrorIs(t, err, ErrPasswordTooShort)
			assert.ErrorIs(t, err, errors.ErrInvalidInput)
		})
	}
}

func TestPasswordTooShortError_Message(t *testing.T) {
	err := &PasswordTooShortError{MinLength: 4, ActualLength: 2}
	assert.Equal(t, "email password is too short, expected at least 4 characters, but found 2", err.Error())
}

func TestConfirmPassword(t *testing.T) {
	assert.NoError(t, ConfirmPassword(cryptoDomain.NewSecretString("abcd"), cryptoDomain.NewSecretString("abcd")))
	assert.ErrorIs(t,
		ConfirmPassword(cryptoDomain.NewSecretString("abcd"), cryptoDomain.NewSecretString("abce")),
		ErrPasswordDoesNotMatch,
	)
}

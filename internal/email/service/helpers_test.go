package service

import (
	"crypto/sha256"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	cryptoService "github.com/allisson/mejla/internal/crypto/service"
	emailDomain "github.com/allisson/mejla/internal/email/domain"
)

// fastDeriver stands in for the PBKDF2 deriver: deterministic, but cheap enough
// for unit tests.
type fastDeriver struct{}

func (fastDeriver) Derive(password *cryptoDomain.SecretString, salt cryptoDomain.Salt) *cryptoDomain.EncryptionKey {
	h := sha256.New()
	h.Write(salt[:])
	h.Write(password.Expose())
	sum := h.Sum(nil)
	defer cryptoDomain.Zero(sum)

	key, err := cryptoDomain.NewEncryptionKey(sum)
	if err != nil {
		panic(err)
	}
	return key
}

func newTestSettingsCipher() SettingsCipher {
	return NewSettingsCipher(
		cryptoService.NewAppPasswordService(fastDeriver{}, cryptoService.NewAEADManager(), cryptoDomain.AESGCM),
	)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	alice = emailDomain.MustParseAddress("alice@example.com")
	bob   = emailDomain.MustParseAddress("bob@example.com")
	carol = emailDomain.MustParseAddress("carol@example.com")
	dave  = emailDomain.MustParseAddress("dave@example.com")
)

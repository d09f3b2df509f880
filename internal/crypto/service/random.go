package service

import (
	"crypto/rand"
	"fmt"
)

// mustRandom fills b from the operating system CSPRNG. A failing CSPRNG leaves
// nothing safe to do, so it panics.
func mustRandom(b []byte) {
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
}

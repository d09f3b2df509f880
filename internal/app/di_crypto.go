package app

import (
	"fmt"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	cryptoService "github.com/allisson/mejla/internal/crypto/service"
)

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = c.initAEADManager()
	})
	return c.aeadManager
}

// KeyDeriver returns the password based key deriver.
func (c *Container) KeyDeriver() (cryptoService.KeyDeriver, error) {
	var err error
	c.keyDeriverInit.Do(func() {
		c.keyDeriver, err = c.initKeyDeriver()
		if err != nil {
			c.initErrors["keyDeriver"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyDeriver"]; exists {
		return nil, storedErr
	}
	return c.keyDeriver, nil
}

// AppPasswordCipher returns the service sealing and opening SMTP app passwords.
func (c *Container) AppPasswordCipher() (cryptoService.AppPasswordCipher, error) {
	var err error
	c.appPasswordInit.Do(func() {
		c.appPasswords, err = c.initAppPasswordCipher()
		if err != nil {
			c.initErrors["appPasswordCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["appPasswordCipher"]; exists {
		return nil, storedErr
	}
	return c.appPasswords, nil
}

// initAEADManager creates the AEAD manager service.
func (c *Container) initAEADManager() cryptoService.AEADManager {
	return cryptoService.NewAEADManager()
}

// initKeyDeriver creates the PBKDF2 then HKDF key deriver.
func (c *Container) initKeyDeriver() (cryptoService.KeyDeriver, error) {
	deriver, err := cryptoService.NewKeyDeriver(c.config.KDFIterations)
	if err != nil {
		return nil, fmt.Errorf("failed to create key deriver: %w", err)
	}
	return deriver, nil
}

// initAppPasswordCipher creates the app password service using the configured algorithm.
func (c *Container) initAppPasswordCipher() (cryptoService.AppPasswordCipher, error) {
	alg, err := cryptoDomain.ParseAlgorithm(c.config.SealedBoxAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid sealed box algorithm %q: %w", c.config.SealedBoxAlgorithm, err)
	}

	deriver, err := c.KeyDeriver()
	if err != nil {
		return nil, fmt.Errorf("failed to get key deriver for app password cipher: %w", err)
	}

	return cryptoService.NewAppPasswordService(deriver, c.AEADManager(), alg), nil
}

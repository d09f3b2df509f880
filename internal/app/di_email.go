package app

import (
	"fmt"

	"github.com/allisson/mejla/internal/config"
	"github.com/allisson/mejla/internal/email/prompt"
	emailRepository "github.com/allisson/mejla/internal/email/repository"
	emailService "github.com/allisson/mejla/internal/email/service"
	emailUsecase "github.com/allisson/mejla/internal/email/usecase"
)

// SettingsCipher returns the service encrypting and decrypting email settings.
func (c *Container) SettingsCipher() (emailService.SettingsCipher, error) {
	var err error
	c.settingsCipherInit.Do(func() {
		c.settingsCipher, err = c.initSettingsCipher()
		if err != nil {
			c.initErrors["settingsCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["settingsCipher"]; exists {
		return nil, storedErr
	}
	return c.settingsCipher, nil
}

// Sender returns the SMTP sender.
func (c *Container) Sender() emailService.Sender {
	c.senderInit.Do(func() {
		c.sender = emailService.NewSMTPSender(emailService.SMTPConfig{
			Port:        c.config.SMTPPort,
			Timeout:     c.config.SMTPTimeout,
			ImplicitTLS: c.config.SMTPImplicitTLS,
		}, c.Logger())
	})
	return c.sender
}

// Prompter returns the interactive prompter bound to the container streams.
func (c *Container) Prompter() *prompt.Prompter {
	c.prompterInit.Do(func() {
		c.prompter = prompt.NewPrompter(c.streams, prompt.Config{
			PasswordMinLength:        c.config.PasswordMinLength,
			EncryptionPasswordEnvVar: c.config.EncryptionPasswordEnvVar,
		}, c.Logger())
	})
	return c.prompter
}

// SettingsRepository returns the settings repository for the configured store.
func (c *Container) SettingsRepository() (emailUsecase.SettingsRepository, error) {
	var err error
	c.settingsRepoInit.Do(func() {
		c.settingsRepo, err = c.initSettingsRepository()
		if err != nil {
			c.initErrors["settingsRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["settingsRepo"]; exists {
		return nil, storedErr
	}
	return c.settingsRepo, nil
}

// SettingsBuilder returns the interactive settings builder.
func (c *Container) SettingsBuilder() (emailUsecase.SettingsBuilder, error) {
	var err error
	c.settingsBuilderInit.Do(func() {
		c.settingsBuilder, err = c.initSettingsBuilder()
		if err != nil {
			c.initErrors["settingsBuilder"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["settingsBuilder"]; exists {
		return nil, storedErr
	}
	return c.settingsBuilder, nil
}

// SettingsUseCase returns the settings use case.
func (c *Container) SettingsUseCase() (emailUsecase.SettingsUseCase, error) {
	var err error
	c.settingsUseCaseInit.Do(func() {
		c.settingsUseCase, err = c.initSettingsUseCase()
		if err != nil {
			c.initErrors["settingsUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["settingsUseCase"]; exists {
		return nil, storedErr
	}
	return c.settingsUseCase, nil
}

func (c *Container) initSettingsCipher() (emailService.SettingsCipher, error) {
	appPasswords, err := c.AppPasswordCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get app password cipher for settings cipher: %w", err)
	}
	return emailService.NewSettingsCipher(appPasswords), nil
}

// initSettingsRepository creates the settings repository based on the settings store.
func (c *Container) initSettingsRepository() (emailUsecase.SettingsRepository, error) {
	if c.config.SettingsStore == config.StoreFile {
		return emailRepository.NewFileSettingsRepository(c.config.SettingsPath), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for settings repository: %w", err)
	}

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for settings repository: %w", err)
	}

	switch c.config.SettingsStore {
	case config.StorePostgres:
		return emailRepository.NewPostgreSQLSettingsRepository(db, txManager), nil
	case config.StoreMySQL:
		return emailRepository.NewMySQLSettingsRepository(db, txManager), nil
	default:
		return nil, fmt.Errorf("unsupported settings store: %s", c.config.SettingsStore)
	}
}

func (c *Container) initSettingsBuilder() (emailUsecase.SettingsBuilder, error) {
	cipher, err := c.SettingsCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings cipher for settings builder: %w", err)
	}
	return emailUsecase.NewSettingsBuilder(c.Prompter(), cipher), nil
}

// initSettingsUseCase creates the settings use case with all its dependencies.
func (c *Container) initSettingsUseCase() (emailUsecase.SettingsUseCase, error) {
	repo, err := c.SettingsRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings repository for settings use case: %w", err)
	}

	builder, err := c.SettingsBuilder()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings builder for settings use case: %w", err)
	}

	cipher, err := c.SettingsCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings cipher for settings use case: %w", err)
	}

	return emailUsecase.NewSettingsUseCase(
		repo,
		builder,
		c.Prompter(),
		cipher,
		c.Sender(),
		c.Logger(),
		c.config.VerifyConcurrency,
	), nil
}

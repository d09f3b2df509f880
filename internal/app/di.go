// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/mejla/internal/config"
	cryptoService "github.com/allisson/mejla/internal/crypto/service"
	"github.com/allisson/mejla/internal/database"
	"github.com/allisson/mejla/internal/email/prompt"
	emailService "github.com/allisson/mejla/internal/email/service"
	emailUsecase "github.com/allisson/mejla/internal/email/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config  *config.Config
	streams prompt.IOTuple

	// Infrastructure
	logger *slog.Logger
	db     *sql.DB

	// Managers
	txManager database.TxManager

	// Crypto
	aeadManager     cryptoService.AEADManager
	keyDeriver      cryptoService.KeyDeriver
	appPasswords    cryptoService.AppPasswordCipher
	aeadManagerInit sync.Once
	keyDeriverInit  sync.Once
	appPasswordInit sync.Once

	// Email
	settingsCipher      emailService.SettingsCipher
	sender              emailService.Sender
	prompter            *prompt.Prompter
	settingsRepo        emailUsecase.SettingsRepository
	settingsBuilder     emailUsecase.SettingsBuilder
	settingsUseCase     emailUsecase.SettingsUseCase
	settingsCipherInit  sync.Once
	senderInit          sync.Once
	prompterInit        sync.Once
	settingsRepoInit    sync.Once
	settingsBuilderInit sync.Once
	settingsUseCaseInit sync.Once

	// Initialization flags and mutex for thread-safety
	mu            sync.Mutex
	loggerInit    sync.Once
	dbInit        sync.Once
	txManagerInit sync.Once
	initErrors    map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
// Prompts read from stdin and write to stderr unless SetIO is called before first use.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		streams:    prompt.StdIO(),
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// SetIO replaces the streams used by the interactive prompter.
func (c *Container) SetIO(streams prompt.IOTuple) {
	c.streams = streams
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Close database connection if initialized
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
// Logs go to stderr so stdout stays free for command output.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	switch c.config.SettingsStore {
	case config.StorePostgres, config.StoreMySQL:
	default:
		return nil, fmt.Errorf("settings store %q does not use a database", c.config.SettingsStore)
	}

	db, err := database.Connect(context.Background(), database.Config{
		Driver:             c.config.SettingsStore,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

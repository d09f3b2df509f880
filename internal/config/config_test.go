package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{"HOME": "/home/alice"},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, StoreFile, cfg.SettingsStore)
				assert.Equal(t, "/home/alice/.config/mejla/settings.json", cfg.SettingsPath)
				assert.Equal(t, 5, cfg.DBMaxOpenConnections)
				assert.Equal(t, 2, cfg.DBMaxIdleConnections)
				assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
				assert.Equal(t, "EMAIL_ENCRYPTION_PASSWORD", cfg.EncryptionPasswordEnvVar)
				assert.Equal(t, 4, cfg.PasswordMinLength)
				assert.Equal(t, 600000, cfg.KDFIterations)
				assert.Equal(t, "aes-gcm", cfg.SealedBoxAlgorithm)
				assert.Equal(t, 465, cfg.SMTPPort)
				assert.Equal(t, 30*time.Second, cfg.SMTPTimeout)
				assert.True(t, cfg.SMTPImplicitTLS)
				assert.Equal(t, 4, cfg.VerifyConcurrency)
			},
		},
		{
			name:    "settings path without home directory",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "settings.json", cfg.SettingsPath)
			},
		},
		{
			name: "load custom database configuration",
			envVars: map[string]string{
				"SETTINGS_STORE":          "mysql",
				"DB_CONNECTION_STRING":    "user:password@tcp(localhost:3306)/testdb",
				"DB_MAX_OPEN_CONNECTIONS": "50",
				"DB_MAX_IDLE_CONNECTIONS": "10",
				"DB_CONN_MAX_LIFETIME":    "10",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, StoreMySQL, cfg.SettingsStore)
				assert.Equal(t, "user:password@tcp(localhost:3306)/testdb", cfg.DBConnectionString)
				assert.Equal(t, 50, cfg.DBMaxOpenConnections)
				assert.Equal(t, 10, cfg.DBMaxIdleConnections)
				assert.Equal(t, 10*time.Minute, cfg.DBConnMaxLifetime)
				assert.Equal(t, "file://migrations/mysql", cfg.MigrationsPath())
			},
		},
		{
			name: "load custom secret configuration",
			envVars: map[string]string{
				"ENCRYPTION_PASSWORD_ENV_VAR": "WORK_MAIL_PASSWORD",
				"PASSWORD_MIN_LENGTH":         "12",
				"KDF_ITERATIONS":              "1000000",
				"SEALED_BOX_ALGORITHM":        "chacha20-poly1305",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "WORK_MAIL_PASSWORD", cfg.EncryptionPasswordEnvVar)
				assert.Equal(t, 12, cfg.PasswordMinLength)
				assert.Equal(t, 1000000, cfg.KDFIterations)
				assert.Equal(t, "chacha20-poly1305", cfg.SealedBoxAlgorithm)
			},
		},
		{
			name: "load custom smtp configuration",
			envVars: map[string]string{
				"SMTP_PORT":            "587",
				"SMTP_TIMEOUT_SECONDS": "10",
				"SMTP_IMPLICIT_TLS":    "false",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 587, cfg.SMTPPort)
				assert.Equal(t, 10*time.Second, cfg.SMTPTimeout)
				assert.False(t, cfg.SMTPImplicitTLS)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "file://migrations/postgresql", cfg.MigrationsPath())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			// Load configuration
			cfg := Load()

			// Validate
			tt.validate(t, cfg)
		})
	}
}

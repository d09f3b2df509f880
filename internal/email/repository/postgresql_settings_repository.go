package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/mejla/internal/database"
	emailDomain "github.com/allisson/mejla/internal/email/domain"
	apperrors "github.com/allisson/mejla/internal/errors"
)

// PostgreSQLSettingsRepository implements settings persistence for PostgreSQL databases.
type PostgreSQLSettingsRepository struct {
	db        *sql.DB
	txManager database.TxManager
}

// Get retrieves the settings of profile.
func (p *PostgreSQLSettingsRepository) Get(
	ctx context.Context,
	profile string,
) (*emailDomain.EncryptedSettings, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT document FROM email_settings WHERE profile = $1`

	var doc []byte
	if err := querier.QueryRowContext(ctx, query, profile).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, emailDomain.ErrSettingsNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get email settings")
	}

	return decodeSettings(doc)
}

// Save creates or replaces the settings of profile with a single upsert keyed
// on the unique profile index, so concurrent first saves cannot collide.
func (p *PostgreSQLSettingsRepository) Save(
	ctx context.Context,
	profile string,
	settings *emailDomain.EncryptedSettings,
) error {
	doc, err := encodeSettings(settings)
	if err != nil {
		return err
	}

	return p.txManager.WithTx(ctx, func(ctx context.Context) error {
		querier := database.GetTx(ctx, p.db)
		now := time.Now().UTC()

		query := `INSERT INTO email_settings (id, profile, document, created_at, updated_at)
				  VALUES ($1, $2, $3, $4, $5)
				  ON CONFLICT (profile) DO UPDATE
				  SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`

		_, err := querier.ExecContext(ctx, query, uuid.Must(uuid.NewV7()), profile, doc, now, now)
		if err != nil {
			return apperrors.Wrap(err, "failed to save email settings")
		}
		return nil
	})
}

// List returns every stored profile name in lexical order.
func (p *PostgreSQLSettingsRepository) List(ctx context.Context) ([]string, error) {
	querier := database.GetTx(ctx, p.db)

	rows, err := querier.QueryContext(ctx, `SELECT profile FROM email_settings ORDER BY profile`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list email settings")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanProfiles(rows)
}

// NewPostgreSQLSettingsRepository creates a new PostgreSQL settings repository instance.
func NewPostgreSQLSettingsRepository(db *sql.DB, txManager database.TxManager) *PostgreSQLSettingsRepository {
	return &PostgreSQLSettingsRepository{db: db, txManager: txManager}
}

func encodeSettings(settings *emailDomain.EncryptedSettings) ([]byte, error) {
	doc, err := emailDomain.EncodeSettings(settings)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode email settings")
	}
	return doc, nil
}

func decodeSettings(doc []byte) (*emailDomain.EncryptedSettings, error) {
	settings, err := emailDomain.DecodeSettings(doc)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decode email settings")
	}
	return settings, nil
}

func scanProfiles(rows *sql.Rows) ([]string, error) {
	profiles := []string{}
	for rows.Next() {
		var profile string
		if err := rows.Scan(&profile); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan email settings profile")
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate email settings")
	}
	return profiles, nil
}

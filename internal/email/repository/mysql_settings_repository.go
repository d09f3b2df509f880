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

// MySQLSettingsRepository implements settings persistence for MySQL databases.
type MySQLSettingsRepository struct {
	db        *sql.DB
	txManager database.TxManager
}

// Get retrieves the settings of profile.
func (m *MySQLSettingsRepository) Get(
	ctx context.Context,
	profile string,
) (*emailDomain.EncryptedSettings, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT document FROM email_settings WHERE profile = ?`

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
func (m *MySQLSettingsRepository) Save(
	ctx context.Context,
	profile string,
	settings *emailDomain.EncryptedSettings,
) error {
	doc, err := encodeSettings(settings)
	if err != nil {
		return err
	}

	id, err := uuid.Must(uuid.NewV7()).MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal email settings id")
	}

	return m.txManager.WithTx(ctx, func(ctx context.Context) error {
		querier := database.GetTx(ctx, m.db)
		now := time.Now().UTC()

		query := `INSERT INTO email_settings (id, profile, document, created_at, updated_at)
				  VALUES (?, ?, ?, ?, ?)
				  ON DUPLICATE KEY UPDATE document = VALUES(document), updated_at = VALUES(updated_at)`

		_, err := querier.ExecContext(ctx, query, id, profile, doc, now, now)
		if err != nil {
			return apperrors.Wrap(err, "failed to save email settings")
		}
		return nil
	})
}

// List returns every stored profile name in lexical order.
func (m *MySQLSettingsRepository) List(ctx context.Context) ([]string, error) {
	querier := database.GetTx(ctx, m.db)

	rows, err := querier.QueryContext(ctx, `SELECT profile FROM email_settings ORDER BY profile`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list email settings")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanProfiles(rows)
}

// NewMySQLSettingsRepository creates a new MySQL settings repository instance.
func NewMySQLSettingsRepository(db *sql.DB, txManager database.TxManager) *MySQLSettingsRepository {
	return &MySQLSettingsRepository{db: db, txManager: txManager}
}

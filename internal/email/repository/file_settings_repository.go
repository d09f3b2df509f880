// Package repository persists encrypted email settings. Implementations accept
// only EncryptedSettings; decrypted settings have no path to storage.
package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	emailDomain "github.com/allisson/mejla/internal/email/domain"
	apperrors "github.com/allisson/mejla/internal/errors"
)

const (
	settingsFileMode os.FileMode = 0o600
	settingsDirMode  os.FileMode = 0o700
)

// FileSettingsRepository stores every profile in one JSON file mapping profile
// names to settings documents. Writes replace the file atomically.
type FileSettingsRepository struct {
	path string
	mu   sync.Mutex
}

// Get reads the settings of profile.
func (f *FileSettingsRepository) Get(ctx context.Context, profile string) (*emailDomain.EncryptedSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	profiles, err := f.read()
	if err != nil {
		return nil, err
	}

	raw, ok := profiles[profile]
	if !ok {
		return nil, emailDomain.ErrSettingsNotFound
	}

	settings, err := emailDomain.DecodeSettings(raw)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to decode settings of profile %q", profile)
	}
	return settings, nil
}

// Save creates or replaces the settings of profile.
func (f *FileSettingsRepository) Save(
	ctx context.Context,
	profile string,
	settings *emailDomain.EncryptedSettings,
) error {
	doc, err := emailDomain.EncodeSettings(settings)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode settings")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	profiles, err := f.read()
	if err != nil {
		return err
	}
	profiles[profile] = doc

	return f.write(profiles)
}

// List returns the stored profile names in lexical order.
func (f *FileSettingsRepository) List(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	profiles, err := f.read()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// read returns an empty map when the file does not exist yet.
func (f *FileSettingsRepository) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, apperrors.Wrap(err, "failed to read settings file")
	}

	profiles := map[string]json.RawMessage{}
	if len(data) == 0 {
		return profiles, nil
	}
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode settings file")
	}
	return profiles, nil
}

func (f *FileSettingsRepository) write(profiles map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return apperrors.Wrap(err, "failed to encode settings file")
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, settingsDirMode); err != nil {
		return apperrors.Wrap(err, "failed to create settings directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return apperrors.Wrap(err, "failed to create temporary settings file")
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(settingsFileMode); err != nil {
		_ = tmp.Close()
		return apperrors.Wrap(err, "failed to set settings file mode")
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return apperrors.Wrap(err, "failed to write settings file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return apperrors.Wrap(err, "failed to sync settings file")
	}
	if err := tmp.Close(); err != nil {
		return apperrors.Wrap(err, "failed to close settings file")
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		return apperrors.Wrap(err, "failed to replace settings file")
	}
	return nil
}

// NewFileSettingsRepository creates a repository backed by the file at path.
func NewFileSettingsRepository(path string) *FileSettingsRepository {
	return &FileSettingsRepository{path: path}
}

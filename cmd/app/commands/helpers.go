// Package commands contains CLI command implementations for the application.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"

	emailDomain "github.com/allisson/mejla/internal/email/domain"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// parseReplacements converts "placeholder=value" pairs into template replacements,
// keeping their order. The value may itself contain '='.
func parseReplacements(pairs []string) ([]emailDomain.Replacement, error) {
	replacements := make([]emailDomain.Replacement, 0, len(pairs))
	for _, pair := range pairs {
		placeholder, value, ok := strings.Cut(pair, "=")
		if !ok || placeholder == "" {
			return nil, fmt.Errorf("invalid replacement %q (expected placeholder=value)", pair)
		}
		replacements = append(replacements, emailDomain.Replacement{
			Placeholder: placeholder,
			Value:       value,
		})
	}
	return replacements, nil
}

// loadAttachments reads every file in paths. The MIME type is guessed from the
// file extension.
func loadAttachments(paths []string) ([]emailDomain.Attachment, error) {
	attachments := make([]emailDomain.Attachment, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("failed to read attachment: %w", err)
		}
		name := filepath.Base(path)
		if strings.EqualFold(filepath.Ext(name), ".pdf") {
			attachments = append(attachments, emailDomain.NewPDFAttachment(name, data))
			continue
		}
		attachments = append(attachments, emailDomain.NewAttachment(name, "", data))
	}
	return attachments, nil
}

// FieldSelectorUsage lists the accepted --field values.
func FieldSelectorUsage() string {
	selectors := emailDomain.FieldSelectors()
	names := make([]string, len(selectors))
	for i, selector := range selectors {
		names[i] = selector.String()
	}
	return "Setting to edit: " + strings.Join(names, ", ")
}

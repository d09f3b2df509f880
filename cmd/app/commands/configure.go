package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	emailDomain "github.com/allisson/mejla/internal/email/domain"
	emailUseCase "github.com/allisson/mejla/internal/email/usecase"
)

// RunConfigure creates or edits the settings of profile interactively. field
// names the one setting to edit ("all" edits everything); a profile that does
// not exist yet is always configured from scratch.
func RunConfigure(
	ctx context.Context,
	settingsUseCase emailUseCase.SettingsUseCase,
	logger *slog.Logger,
	writer io.Writer,
	profile string,
	field string,
) error {
	if profile == "" {
		return fmt.Errorf("profile is required")
	}

	selector, err := emailDomain.ParseFieldSelector(field)
	if err != nil {
		return err
	}

	logger.Info("configuring email settings",
		slog.String("profile", profile),
		slog.String("field", selector.String()),
	)

	settings, err := settingsUseCase.Configure(ctx, profile, selector)
	if err != nil {
		return fmt.Errorf("failed to configure settings: %w", err)
	}
	defer settings.Zero()

	_, _ = fmt.Fprintf(writer, "Settings saved for profile %q\n\n", profile)
	outputSettingsText(writer, newSettingsView(profile, settings))
	return nil
}

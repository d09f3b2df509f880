package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	emailUseCase "github.com/allisson/mejla/internal/email/usecase"
)

// SendOptions holds the command line input of the send command.
type SendOptions struct {
	Profile string
	Subject string
	Body    string
	// Attachments are file paths.
	Attachments []string
	// Replacements are "placeholder=value" pairs applied to the stored template.
	Replacements []string
}

// RunSend sends one email with the settings of a profile. The encryption
// password is read from the configured environment variable or prompted for.
func RunSend(
	ctx context.Context,
	settingsUseCase emailUseCase.SettingsUseCase,
	logger *slog.Logger,
	writer io.Writer,
	opts SendOptions,
) error {
	replacements, err := parseReplacements(opts.Replacements)
	if err != nil {
		return err
	}

	attachments, err := loadAttachments(opts.Attachments)
	if err != nil {
		return err
	}

	err = settingsUseCase.Send(ctx, &emailUseCase.SendInput{
		Profile:      opts.Profile,
		Subject:      opts.Subject,
		Body:         opts.Body,
		Replacements: replacements,
		Attachments:  attachments,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info("email sent",
		slog.String("profile", opts.Profile),
		slog.Int("attachments", len(attachments)),
	)
	_, _ = fmt.Fprintf(writer, "Email sent using profile %q\n", opts.Profile)
	return nil
}

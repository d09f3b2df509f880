package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	emailDomain "github.com/allisson/mejla/internal/email/domain"
	emailUseCase "github.com/allisson/mejla/internal/email/usecase"
)

// settingsView is the printable form of encrypted settings. The app password
// ciphertext and the salt are never shown.
type settingsView struct {
	Profile       string   `json:"profile"`
	SMTPServer    string   `json:"smtp_server"`
	Sender        string   `json:"sender"`
	ReplyTo       string   `json:"reply_to,omitempty"`
	Recipients    []string `json:"recipients"`
	CcRecipients  []string `json:"cc_recipients"`
	BccRecipients []string `json:"bcc_recipients"`
	Subject       string   `json:"subject_format"`
	Body          string   `json:"body_format"`
	AppPassword   string   `json:"app_password"`
}

func newSettingsView(profile string, settings *emailDomain.EncryptedSettings) settingsView {
	view := settingsView{
		Profile:       profile,
		SMTPServer:    settings.SMTPServer().String(),
		Sender:        settings.Sender().Mailbox(),
		Recipients:    settings.Recipients().Strings(),
		CcRecipients:  settings.CcRecipients().Strings(),
		BccRecipients: settings.BccRecipients().Strings(),
		Subject:       settings.Template().SubjectFormat.String(),
		Body:          settings.Template().BodyFormat.String(),
		AppPassword:   fmt.Sprintf("encrypted (%s)", settings.AppPassword().Algorithm()),
	}
	if replyTo := settings.ReplyTo(); replyTo != nil {
		view.ReplyTo = replyTo.Mailbox()
	}
	return view
}

// RunShow prints the stored settings of profile without any secret material.
// Nothing is decrypted, so no encryption password is needed.
func RunShow(
	ctx context.Context,
	settingsUseCase emailUseCase.SettingsUseCase,
	writer io.Writer,
	profile string,
	format string,
) error {
	settings, err := settingsUseCase.Get(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	defer settings.Zero()

	view := newSettingsView(profile, settings)
	if format == "json" {
		return outputSettingsJSON(writer, view)
	}
	outputSettingsText(writer, view)
	return nil
}

// outputSettingsText outputs the settings in human-readable text format.
func outputSettingsText(writer io.Writer, view settingsView) {
	replyTo := view.ReplyTo
	if replyTo == "" {
		replyTo = "none"
	}

	_, _ = fmt.Fprintf(writer, "Profile:       %s\n", view.Profile)
	_, _ = fmt.Fprintf(writer, "SMTP Server:   %s\n", view.SMTPServer)
	_, _ = fmt.Fprintf(writer, "Sender:        %s\n", view.Sender)
	_, _ = fmt.Fprintf(writer, "Reply-To:      %s\n", replyTo)
	outputAddresses(writer, "Recipients:", view.Recipients)
	outputAddresses(writer, "CC:", view.CcRecipients)
	outputAddresses(writer, "BCC:", view.BccRecipients)
	_, _ = fmt.Fprintf(writer, "Subject:       %q\n", view.Subject)
	_, _ = fmt.Fprintf(writer, "Body:          %q\n", view.Body)
	_, _ = fmt.Fprintf(writer, "App Password:  %s\n", view.AppPassword)
}

func outputAddresses(writer io.Writer, label string, addrs []string) {
	if len(addrs) == 0 {
		_, _ = fmt.Fprintf(writer, "%-14s none\n", label)
		return
	}
	for i, addr := range addrs {
		if i > 0 {
			label = ""
		}
		_, _ = fmt.Fprintf(writer, "%-14s %s\n", label, addr)
	}
}

// outputSettingsJSON outputs the settings in JSON format for machine consumption.
// Mailboxes are written verbatim, without HTML escaping of angle brackets.
func outputSettingsJSON(writer io.Writer, view settingsView) error {
	enc := json.NewEncoder(writer)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}

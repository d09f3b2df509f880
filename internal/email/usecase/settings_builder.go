package usecase

import (
	"context"

	emailDomain "github.com/allisson/mejla/internal/email/domain"
	emailService "github.com/allisson/mejla/internal/email/service"
)

// settingsBuilder implements SettingsBuilder on top of a Prompter.
type settingsBuilder struct {
	prompter Prompter
	cipher   emailService.SettingsCipher
}

// Build asks for the fields included by selector and keeps the others from
// current. The app password is only re-entered, with a fresh salt, when the
// selector requires it; otherwise the stored ciphertext and salt are carried
// over untouched.
//
// Build takes ownership of current: its app password and salt are wiped before
// returning, on success and on every error.
func (b *settingsBuilder) Build(
	ctx context.Context,
	current emailDomain.SettingsDocument,
	selector emailDomain.FieldSelector,
) (*emailDomain.EncryptedSettings, error) {
	doc := current
	defer doc.Zero()

	if selector.RequiresSecretReentry() {
		appPassword, err := b.prompter.AppPassword(ctx)
		if err != nil {
			return nil, err
		}
		encryptionPassword, err := b.prompter.EncryptionPassword(ctx, true)
		if err != nil {
			appPassword.Zero()
			return nil, err
		}
		salt, encrypted, err := b.cipher.EncryptAppPassword(appPassword, encryptionPassword)
		if err != nil {
			return nil, err
		}
		doc.Zero()
		doc.Salt = salt
		doc.AppPassword = encrypted
	}

	var err error
	if doc.SMTPServer, err = selectOrDefault(
		ctx, selector, emailDomain.FieldSMTPServer, doc.SMTPServer, b.prompter.SMTPServer,
	); err != nil {
		return nil, err
	}
	if doc.Sender, err = selectOrDefault(
		ctx, selector, emailDomain.FieldSender, doc.Sender, b.prompter.Sender,
	); err != nil {
		return nil, err
	}
	if doc.Template, err = selectOrDefault(
		ctx, selector, emailDomain.FieldTemplate, doc.Template, b.prompter.Template,
	); err != nil {
		return nil, err
	}
	if doc.ReplyTo, err = selectOrDefault(
		ctx, selector, emailDomain.FieldReplyTo, doc.ReplyTo, b.prompter.ReplyTo,
	); err != nil {
		return nil, err
	}

	if doc.Recipients, err = selectOrDefault(
		ctx, selector, emailDomain.FieldRecipients, doc.Recipients, b.addresses(emailDomain.RoleRecipient),
	); err != nil {
		return nil, err
	}
	if doc.Recipients.IsEmpty() {
		return nil, emailDomain.ErrRecipientAddressesCannotBeEmpty
	}

	if doc.CcRecipients, err = selectOrDefault(
		ctx, selector, emailDomain.FieldCcRecipients, doc.CcRecipients, b.addresses(emailDomain.RoleCc),
	); err != nil {
		return nil, err
	}
	if doc.BccRecipients, err = selectOrDefault(
		ctx, selector, emailDomain.FieldBccRecipients, doc.BccRecipients, b.addresses(emailDomain.RoleBcc),
	); err != nil {
		return nil, err
	}

	return doc.Settings()
}

func (b *settingsBuilder) addresses(
	role emailDomain.AddressRole,
) func(context.Context, emailDomain.AddressSet) (emailDomain.AddressSet, error) {
	return func(ctx context.Context, current emailDomain.AddressSet) (emailDomain.AddressSet, error) {
		return b.prompter.Addresses(ctx, role, current)
	}
}

// selectOrDefault asks for a new value when selector includes target, and
// keeps current otherwise.
func selectOrDefault[T any](
	ctx context.Context,
	selector, target emailDomain.FieldSelector,
	current T,
	ask func(context.Context, T) (T, error),
) (T, error) {
	if !selector.Includes(target) {
		return current, nil
	}
	return ask(ctx, current)
}

// NewSettingsBuilder creates a new SettingsBuilder.
func NewSettingsBuilder(prompter Prompter, cipher emailService.SettingsCipher) SettingsBuilder {
	return &settingsBuilder{prompter: prompter, cipher: cipher}
}

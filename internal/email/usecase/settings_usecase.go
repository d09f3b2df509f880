package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	emailDomain "github.com/allisson/mejla/internal/email/domain"
	emailService "github.com/allisson/mejla/internal/email/service"
	apperrors "github.com/allisson/mejla/internal/errors"
)

// DefaultVerifyConcurrency bounds how many profiles VerifyAll decrypts at once.
// Each decryption runs the full key derivation.
const DefaultVerifyConcurrency = 4

// settingsUseCase implements the SettingsUseCase interface.
type settingsUseCase struct {
	repo              SettingsRepository
	builder           SettingsBuilder
	prompter          Prompter
	cipher            emailService.SettingsCipher
	sender            emailService.Sender
	logger            *slog.Logger
	verifyConcurrency int
}

// Configure creates or edits the settings of profile and saves them. The stored
// settings it starts from are zeroed before returning.
func (u *settingsUseCase) Configure(
	ctx context.Context,
	profile string,
	selector emailDomain.FieldSelector,
) (*emailDomain.EncryptedSettings, error) {
	var doc emailDomain.SettingsDocument

	current, err := u.repo.Get(ctx, profile)
	switch {
	case err == nil:
		defer current.Zero()
		doc = emailDomain.NewSettingsDocument(current)
	case apperrors.Is(err, apperrors.ErrNotFound):
		doc = emailDomain.DefaultSettingsDocument()
		selector = emailDomain.FieldAll
	default:
		return nil, err
	}
	defer doc.Zero()

	settings, err := u.builder.Build(ctx, doc, selector)
	if err != nil {
		return nil, err
	}
	u.logger.Info("settings built", slog.String("profile", profile), slog.String("selector", selector.String()))

	if err := u.repo.Save(ctx, profile, settings); err != nil {
		return nil, err
	}
	u.logger.Info("settings saved", slog.String("profile", profile))

	return settings, nil
}

// Get returns the encrypted settings of profile. The caller owns the result and
// must call Zero on it.
func (u *settingsUseCase) Get(ctx context.Context, profile string) (*emailDomain.EncryptedSettings, error) {
	return u.repo.Get(ctx, profile)
}

// Unlock decrypts the settings of profile, asking for the encryption password
// when none is given. The stored settings are zeroed before returning, whatever
// the outcome.
func (u *settingsUseCase) Unlock(
	ctx context.Context,
	profile string,
	encryptionPassword *cryptoDomain.SecretString,
) (*emailDomain.DecryptedSettings, error) {
	settings, err := u.repo.Get(ctx, profile)
	if err != nil {
		encryptionPassword.Zero()
		return nil, err
	}
	defer settings.Zero()

	if encryptionPassword == nil {
		encryptionPassword, err = u.prompter.EncryptionPassword(ctx, false)
		if err != nil {
			return nil, err
		}
	}

	return u.cipher.Decrypt(settings, encryptionPassword)
}

// Send unlocks the profile, composes the email and hands it to the sender. The
// decrypted settings and credentials are zeroed before returning.
func (u *settingsUseCase) Send(ctx context.Context, input *SendInput) error {
	decrypted, err := u.Unlock(ctx, input.Profile, input.EncryptionPassword)
	if err != nil {
		return err
	}
	defer decrypted.Zero()

	subject, body := decrypted.Template().Materialize(input.Replacements)
	if input.Subject != "" {
		subject = input.Subject
	}
	if input.Body != "" {
		body = input.Body
	}

	email, credentials := emailDomain.Compose(decrypted, subject, body, input.Attachments)
	defer credentials.Zero()

	u.logger.Info("sending email",
		slog.String("profile", input.Profile),
		slog.String("smtp_server", credentials.SMTPServer().String()),
		slog.Int("recipients", email.Recipients().Len()),
	)
	return u.sender.Send(ctx, email, credentials)
}

// VerifyAll decrypts every stored profile concurrently. Decryption failures are
// reported per profile; repository failures abort the run. The password is
// consumed and asked for when nil.
func (u *settingsUseCase) VerifyAll(
	ctx context.Context,
	encryptionPassword *cryptoDomain.SecretString,
) ([]VerifyResult, error) {
	if encryptionPassword == nil {
		var err error
		encryptionPassword, err = u.prompter.EncryptionPassword(ctx, false)
		if err != nil {
			return nil, err
		}
	}
	defer encryptionPassword.Zero()

	profiles, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]VerifyResult, len(profiles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.verifyConcurrency)

	for i, profile := range profiles {
		password := encryptionPassword.Clone()
		g.Go(func() error {
			settings, err := u.repo.Get(gctx, profile)
			if err != nil {
				password.Zero()
				return err
			}
			defer settings.Zero()

			decrypted, err := u.cipher.Decrypt(settings, password)
			if err == nil {
				decrypted.Zero()
			}
			results[i] = VerifyResult{Profile: profile, Err: err}

			u.logger.Info("settings verified",
				slog.String("profile", profile),
				slog.Bool("ok", err == nil),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// NewSettingsUseCase creates a new SettingsUseCase.
func NewSettingsUseCase(
	repo SettingsRepository,
	builder SettingsBuilder,
	prompter Prompter,
	cipher emailService.SettingsCipher,
	sender emailService.Sender,
	logger *slog.Logger,
	verifyConcurrency int,
) SettingsUseCase {
	if verifyConcurrency < 1 {
		verifyConcurrency = DefaultVerifyConcurrency
	}
	return &settingsUseCase{
		repo:              repo,
		builder:           builder,
		prompter:          prompter,
		cipher:            cipher,
		sender:            sender,
		logger:            logger,
		verifyConcurrency: verifyConcurrency,
	}
}

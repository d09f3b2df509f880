// Package prompt asks for email settings on a line-based terminal. Passwords are
// read without echo when the input is a terminal.
package prompt

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	emailDomain "github.com/allisson/mejla/internal/email/domain"
	"github.com/allisson/mejla/internal/errors"
)

// SkipToken clears an optional value that has a default.
const SkipToken = "-"

// ErrInputClosed indicates the input ended before an answer was given.
var ErrInputClosed = errors.Wrap(errors.ErrInvalidInput, "input closed before an answer was given")

// IOTuple is the pair of streams a Prompter talks through.
type IOTuple struct {
	In  io.Reader
	Out io.Writer
}

// StdIO returns the process standard input and error streams. Prompts go to
// stderr so that stdout stays usable for command output.
func StdIO() IOTuple {
	return IOTuple{In: os.Stdin, Out: os.Stderr}
}

// Config holds the password policy of a Prompter.
type Config struct {
	PasswordMinLength int
	// EncryptionPasswordEnvVar names the variable consulted before prompting for
	// the encryption password. Empty disables the lookup.
	EncryptionPasswordEnvVar string
}

// Prompter asks for settings values one at a time.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	fd     int
	isTerm bool
	config Config
	logger *slog.Logger
}

// NewPrompter creates a Prompter over streams.
func NewPrompter(streams IOTuple, config Config, logger *slog.Logger) *Prompter {
	if config.PasswordMinLength <= 0 {
		config.PasswordMinLength = emailDomain.DefaultPasswordMinLength
	}
	p := &Prompter{
		in:     bufio.NewReader(streams.In),
		out:    streams.Out,
		config: config,
		logger: logger,
	}
	if f, ok := streams.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.isTerm = true
	}
	return p
}

// AppPassword asks for the SMTP app password twice.
func (p *Prompter) AppPassword(ctx context.Context) (*cryptoDomain.SecretString, error) {
	return p.password(ctx, true, "SMTP App Password", "Used to authenticate sender account")
}

// EncryptionPassword reads the configured environment variable first and falls
// back to prompting. An environment value below the minimum length is ignored.
func (p *Prompter) EncryptionPassword(ctx context.Context, withConfirmation bool) (*cryptoDomain.SecretString, error) {
	if name := p.config.EncryptionPasswordEnvVar; name != "" {
		if v, ok := os.LookupEnv(name); ok {
			secret := cryptoDomain.NewSecretString(v)
			if emailDomain.ValidatePassword(secret, p.config.PasswordMinLength) == nil {
				p.logger.Info("read encryption password from environment, skipping prompt",
					slog.String("env_var", name))
				return secret, nil
			}
			secret.Zero()
		}
	}
	return p.password(ctx, withConfirmation, "Encryption Password", "Used to encrypt the SMTP App Password")
}

// SMTPServer asks for the SMTP host name until a valid one is given.
func (p *Prompter) SMTPServer(ctx context.Context, current emailDomain.SMTPServer) (emailDomain.SMTPServer, error) {
	for {
		answer, err := p.ask(ctx, "SMTP server?", "The SMTP server to use for sending emails", current.String())
		if err != nil {
			return "", err
		}
		server, err := emailDomain.ParseSMTPServer(answer)
		if err == nil {
			return server, nil
		}
		p.invalid(err)
	}
}

// Sender asks for the sender display name and address.
func (p *Prompter) Sender(ctx context.Context, current emailDomain.Account) (emailDomain.Account, error) {
	role := emailDomain.RoleSender
	name, err := p.ask(ctx,
		fmt.Sprintf("Email account %s name?", role),
		fmt.Sprintf("Will show up as the %s name", role),
		current.Name,
	)
	if err != nil {
		return emailDomain.Account{}, err
	}
	addr, err := p.address(ctx, role, current.Email)
	if err != nil {
		return emailDomain.Account{}, err
	}
	if addr.IsZero() {
		return emailDomain.Account{}, errors.Wrapf(emailDomain.ErrInvalidEmailAddress, "%s address is required", role)
	}
	return emailDomain.Account{Name: name, Email: addr}, nil
}

// Template asks for the subject and body formats.
func (p *Prompter) Template(ctx context.Context, current emailDomain.Template) (emailDomain.Template, error) {
	const tutorial = "Placeholders such as <INV_NO> are replaced when sending"

	subject, err := p.ask(ctx, "Email template for subject", tutorial, current.SubjectFormat.String())
	if err != nil {
		return emailDomain.Template{}, err
	}
	body, err := p.ask(ctx, "Email template for body", tutorial, current.BodyFormat.String())
	if err != nil {
		return emailDomain.Template{}, err
	}
	return emailDomain.Template{
		SubjectFormat: emailDomain.TemplatePart(subject),
		BodyFormat:    emailDomain.TemplatePart(body),
	}, nil
}

// ReplyTo asks for an optional reply-to account. Skipping either the name or the
// address clears it.
func (p *Prompter) ReplyTo(ctx context.Context, current *emailDomain.Account) (*emailDomain.Account, error) {
	role := emailDomain.RoleReplyTo
	var def emailDomain.Account
	if current != nil {
		def = *current
	}

	name, err := p.ask(ctx,
		fmt.Sprintf("Email account %s name?", role),
		skippable(fmt.Sprintf("Will show up as the %s name", role)),
		def.Name,
	)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, nil
	}

	addr, err := p.address(ctx, role, def.Email)
	if err != nil || addr.IsZero() {
		return nil, err
	}
	return &emailDomain.Account{Name: name, Email: addr}, nil
}

// Addresses asks for addresses one by one, offering the current ones as
// defaults. Duplicates are skipped with a warning and an empty answer finishes.
func (p *Prompter) Addresses(
	ctx context.Context,
	role emailDomain.AddressRole,
	current emailDomain.AddressSet,
) (emailDomain.AddressSet, error) {
	var set emailDomain.AddressSet
	for {
		def, _ := current.At(set.Len())
		addr, err := p.address(ctx, role, def)
		if err != nil {
			return emailDomain.AddressSet{}, err
		}
		if addr.IsZero() {
			return set, nil
		}
		if !set.Add(addr) {
			fmt.Fprintln(p.out, "Email address already exists, skipping")
			p.logger.Warn("duplicate email address skipped", slog.String("role", role.String()))
			continue
		}

		another, err := p.confirm(ctx, fmt.Sprintf("Add another %s email address?", role), true)
		if err != nil {
			return emailDomain.AddressSet{}, err
		}
		if !another {
			return set, nil
		}
	}
}

// address asks for one address. A zero Address means the user skipped it.
func (p *Prompter) address(
	ctx context.Context,
	role emailDomain.AddressRole,
	current emailDomain.Address,
) (emailDomain.Address, error) {
	for {
		answer, err := p.ask(ctx,
			fmt.Sprintf("%s's email address?", role),
			skippable(fmt.Sprintf("Email address for %s", role)),
			current.String(),
		)
		if err != nil {
			return emailDomain.Address{}, err
		}
		if answer == "" {
			return emailDomain.Address{}, nil
		}
		addr, err := emailDomain.ParseAddress(answer)
		if err == nil {
			return addr, nil
		}
		p.invalid(err)
	}
}

func (p *Prompter) password(
	ctx context.Context,
	withConfirmation bool,
	label, help string,
) (*cryptoDomain.SecretString, error) {
	first, err := p.passwordOnce(ctx, label, help, withConfirmation)
	if err != nil {
		return nil, err
	}
	if !withConfirmation {
		return first, nil
	}

	second, err := p.passwordOnce(ctx, "Confirm password", help, withConfirmation)
	if err != nil {
		first.Zero()
		return nil, err
	}
	defer second.Zero()

	if err := emailDomain.ConfirmPassword(first, second); err != nil {
		first.Zero()
		return nil, err
	}
	return first, nil
}

func (p *Prompter) passwordOnce(
	ctx context.Context,
	label, help string,
	showMinLength bool,
) (*cryptoDomain.SecretString, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if showMinLength {
		help = fmt.Sprintf("%s, min: #%d letters.", help, p.config.PasswordMinLength)
	}
	fmt.Fprintf(p.out, "%s (%s): ", label, help)

	raw, err := p.readSecret()
	if err != nil {
		return nil, err
	}
	secret := cryptoDomain.NewSecretStringFromBytes(raw)
	if err := emailDomain.ValidatePassword(secret, p.config.PasswordMinLength); err != nil {
		secret.Zero()
		return nil, err
	}
	return secret, nil
}

func (p *Prompter) readSecret() ([]byte, error) {
	if p.isTerm {
		b, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read password")
		}
		return b, nil
	}

	line, err := p.in.ReadBytes('\n')
	if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
		cryptoDomain.Zero(line)
		if errors.Is(err, io.EOF) {
			return nil, ErrInputClosed
		}
		return nil, errors.Wrap(err, "failed to read password")
	}
	trimmed := bytes.TrimRight(line, "\r\n")
	secret := make([]byte, len(trimmed))
	copy(secret, trimmed)
	cryptoDomain.Zero(line)
	return secret, nil
}

// ask prints label with its default and returns the trimmed answer. An empty
// answer selects def; SkipToken selects the empty string.
func (p *Prompter) ask(ctx context.Context, label, help, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if def != "" {
		fmt.Fprintf(p.out, "%s (%s) [%s]: ", label, help, def)
	} else {
		fmt.Fprintf(p.out, "%s (%s): ", label, help)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", errors.Wrap(err, "failed to read answer")
	}

	answer := strings.TrimSpace(line)
	switch answer {
	case "":
		return def, nil
	case SkipToken:
		return "", nil
	default:
		return answer, nil
	}
}

func (p *Prompter) confirm(ctx context.Context, label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		answer, err := p.ask(ctx, label, hint, "")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n")
	}
}

func (p *Prompter) invalid(err error) {
	fmt.Fprintf(p.out, "Invalid value: %v\n", err)
}

func skippable(help string) string {
	return fmt.Sprintf("Enter %s to skip: %s", SkipToken, help)
}

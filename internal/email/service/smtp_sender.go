package service

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"time"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	emailDomain "github.com/allisson/mejla/internal/email/domain"
)

// SendError reports which SMTP step failed.
type SendError struct {
	Op  string
	Err error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("smtp %s: %v", e.Op, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// SMTPConfig configures an SMTP sender.
type SMTPConfig struct {
	Port    int
	Timeout time.Duration

	// ImplicitTLS wraps the connection in TLS before the SMTP greeting (port 465).
	// Without it, STARTTLS is used when the server offers it.
	ImplicitTLS bool

	// TLSConfig overrides the default TLS configuration. ServerName is always set
	// to the SMTP host.
	TLSConfig *tls.Config
}

type smtpSender struct {
	config SMTPConfig
	logger *slog.Logger
	now    func() time.Time
}

// NewSMTPSender creates a Sender submitting mail with PLAIN authentication.
func NewSMTPSender(config SMTPConfig, logger *slog.Logger) Sender {
	return &smtpSender{config: config, logger: logger, now: time.Now}
}

// Send submits email to the server named by credentials. The SASL response
// buffer built from the password is wiped once authentication ends. net/smtp
// base64 encodes that response into an immutable string which cannot be wiped
// and stays in memory until collected. Credentials are left for the caller to zero.
func (s *smtpSender) Send(
	ctx context.Context,
	email emailDomain.Email,
	credentials *emailDomain.Credentials,
) error {
	recipients := email.Recipients()
	if recipients.IsEmpty() {
		return &SendError{Op: "compose", Err: emailDomain.ErrRecipientAddressesCannotBeEmpty}
	}

	from := credentials.Account()
	msg, err := BuildMessage(from, email, s.now())
	if err != nil {
		return &SendError{Op: "compose", Err: err}
	}

	host := credentials.SMTPServer().String()
	addr := net.JoinHostPort(host, strconv.Itoa(s.config.Port))

	conn, err := s.dial(ctx, host, addr)
	if err != nil {
		return &SendError{Op: "dial", Err: err}
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else if s.config.Timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.config.Timeout))
	}

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		_ = conn.Close()
		return &SendError{Op: "greeting", Err: err}
	}
	defer func() {
		_ = client.Close()
	}()

	if !s.config.ImplicitTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(s.tlsConfig(host)); err != nil {
				return &SendError{Op: "starttls", Err: err}
			}
		}
	}

	auth := newPlainAuth(from.Email.String(), credentials.Password(), host)
	err = client.Auth(auth)
	auth.wipe()
	if err != nil {
		return &SendError{Op: "auth", Err: err}
	}

	if err := client.Mail(from.Email.String()); err != nil {
		return &SendError{Op: "mail", Err: err}
	}
	for _, rcpt := range recipients.Strings() {
		if err := client.Rcpt(rcpt); err != nil {
			return &SendError{Op: "rcpt", Err: err}
		}
	}

	w, err := client.Data()
	if err != nil {
		return &SendError{Op: "data", Err: err}
	}
	if _, err := w.Write(msg); err != nil {
		return &SendError{Op: "data", Err: err}
	}
	if err := w.Close(); err != nil {
		return &SendError{Op: "data", Err: err}
	}

	if err := client.Quit(); err != nil {
		return &SendError{Op: "quit", Err: err}
	}

	s.logger.Info("email sent",
		slog.String("smtp_server", host),
		slog.Int("recipients", recipients.Len()),
		slog.Int("attachments", len(email.Attachments)),
	)
	return nil
}

func (s *smtpSender) dial(ctx context.Context, host, addr string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: s.config.Timeout}
	if !s.config.ImplicitTLS {
		return dialer.DialContext(ctx, "tcp", addr)
	}
	tlsDialer := &tls.Dialer{NetDialer: dialer, Config: s.tlsConfig(host)}
	return tlsDialer.DialContext(ctx, "tcp", addr)
}

func (s *smtpSender) tlsConfig(host string) *tls.Config {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if s.config.TLSConfig != nil {
		cfg = s.config.TLSConfig.Clone()
	}
	cfg.ServerName = host
	return cfg
}

// plainAuth implements SASL PLAIN (RFC 4616) from password bytes. Only the
// response slice handed to net/smtp is wiped; its encoded copy is not reachable.
type plainAuth struct {
	username string
	password *cryptoDomain.SecretString
	host     string
	resp     []byte
}

func newPlainAuth(username string, password *cryptoDomain.SecretString, host string) *plainAuth {
	return &plainAuth{username: username, password: password, host: host}
}

var errUnencryptedConnection = errors.New("refusing to send credentials over an unencrypted connection")

func (a *plainAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if !server.TLS && !isLocalhost(server.Name) {
		return "", nil, errUnencryptedConnection
	}
	if server.Name != a.host {
		return "", nil, errors.New("wrong host name")
	}

	secret := a.password.Expose()
	resp := make([]byte, 0, len(a.username)+len(secret)+2)
	resp = append(resp, 0)
	resp = append(resp, a.username...)
	resp = append(resp, 0)
	resp = append(resp, secret...)
	a.resp = resp
	return "PLAIN", resp, nil
}

func (a *plainAuth) Next(_ []byte, more bool) ([]byte, error) {
	if more {
		return nil, errors.New("unexpected server challenge")
	}
	return nil, nil
}

func (a *plainAuth) wipe() {
	cryptoDomain.Zero(a.resp)
	a.resp = nil
}

func isLocalhost(name string) bool {
	return name == "localhost" || name == "127.0.0.1" || name == "::1"
}

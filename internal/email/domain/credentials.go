package domain

import (
	"fmt"
	"log/slog"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
)

// Credentials authenticate a sender against an SMTP server. They hold the
// plaintext app password and must be zeroed as soon as the send is done.
type Credentials struct {
	server   SMTPServer
	account  Account
	password *cryptoDomain.SecretString
}

// NewCredentials takes ownership of password.
func NewCredentials(server SMTPServer, account Account, password *cryptoDomain.SecretString) *Credentials {
	if server == "" {
		server = DefaultSMTPServer
	}
	return &Credentials{server: server, account: account, password: password}
}

// SMTPServer returns the host to authenticate against.
func (c *Credentials) SMTPServer() SMTPServer { return c.server }

// Account returns the sender account; its email is the SASL username.
func (c *Credentials) Account() Account { return c.account }

// Password returns the plaintext app password. It is wiped by Zero.
func (c *Credentials) Password() *cryptoDomain.SecretString { return c.password }

// Equal compares every field, including the exposed password bytes.
func (c *Credentials) Equal(other *Credentials) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.server == other.server &&
		c.account == other.account &&
		c.password.Equal(other.password)
}

// Zero wipes the password.
func (c *Credentials) Zero() {
	if c == nil {
		return
	}
	c.password.Zero()
}

func (c *Credentials) String() string {
	return fmt.Sprintf("Credentials{server: %s, account: %s, password: %s}", c.server, c.account, c.password)
}

func (c *Credentials) GoString() string { return c.String() }

// LogValue keeps the password out of structured logs.
func (c *Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("smtp_server", string(c.server)),
		slog.String("account", c.account.Email.String()),
	)
}

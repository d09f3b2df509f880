package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	emailDomain "github.com/allisson/mejla/internal/email/domain"
)

// MockPrompter is a mock implementation of Prompter for testing.
type MockPrompter struct {
	mock.Mock
}

// AppPassword mocks the AppPassword method of Prompter.
func (m *MockPrompter) AppPassword(ctx context.Context) (*cryptoDomain.SecretString, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.SecretString), args.Error(1)
}

// EncryptionPassword mocks the EncryptionPassword method of Prompter.
func (m *MockPrompter) EncryptionPassword(
	ctx context.Context,
	withConfirmation bool,
) (*cryptoDomain.SecretString, error) {
	args := m.Called(ctx, withConfirmation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.SecretString), args.Error(1)
}

// SMTPServer mocks the SMTPServer method of Prompter.
func (m *MockPrompter) SMTPServer(
	ctx context.Context,
	current emailDomain.SMTPServer,
) (emailDomain.SMTPServer, error) {
	args := m.Called(ctx, current)
	return args.Get(0).(emailDomain.SMTPServer), args.Error(1)
}

// Sender mocks the Sender method of Prompter.
func (m *MockPrompter) Sender(ctx context.Context, current emailDomain.Account) (emailDomain.Account, error) {
	args := m.Called(ctx, current)
	return args.Get(0).(emailDomain.Account), args.Error(1)
}

// Template mocks the Template method of Prompter.
func (m *MockPrompter) Template(ctx context.Context, current emailDomain.Template) (emailDomain.Template, error) {
	args := m.Called(ctx, current)
	return args.Get(0).(emailDomain.Template), args.Error(1)
}

// ReplyTo mocks the ReplyTo method of Prompter.
func (m *MockPrompter) ReplyTo(ctx context.Context, current *emailDomain.Account) (*emailDomain.Account, error) {
	args := m.Called(ctx, current)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*emailDomain.Account), args.Error(1)
}

// Addresses mocks the Addresses method of Prompter.
func (m *MockPrompter) Addresses(
	ctx context.Context,
	role emailDomain.AddressRole,
	current emailDomain.AddressSet,
) (emailDomain.AddressSet, error) {
	args := m.Called(ctx, role, current)
	return args.Get(0).(emailDomain.AddressSet), args.Error(1)
}

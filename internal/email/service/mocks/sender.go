package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	emailDomain "github.com/allisson/mejla/internal/email/domain"
)

// MockSender is a mock implementation of Sender for testing.
type MockSender struct {
	mock.Mock
}

// Send mocks the Send method of Sender.
func (m *MockSender) Send(
	ctx context.Context,
	email emailDomain.Email,
	credentials *emailDomain.Credentials,
) error {
	args := m.Called(ctx, email, credentials)
	return args.Error(0)
}

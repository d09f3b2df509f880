package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	emailDomain "github.com/allisson/mejla/internal/email/domain"
)

// MockSettingsBuilder is a mock implementation of SettingsBuilder for testing.
type MockSettingsBuilder struct {
	mock.Mock
}

// Build mocks the Build method of SettingsBuilder.
func (m *MockSettingsBuilder) Build(
	ctx context.Context,
	current emailDomain.SettingsDocument,
	selector emailDomain.FieldSelector,
) (*emailDomain.EncryptedSettings, error) {
	args := m.Called(ctx, current, selector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*emailDomain.EncryptedSettings), args.Error(1)
}

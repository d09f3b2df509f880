// Package mocks provides mock implementations for testing email use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	emailDomain "github.com/allisson/mejla/internal/email/domain"
)

// MockSettingsRepository is a mock implementation of SettingsRepository for testing.
type MockSettingsRepository struct {
	mock.Mock
}

// Get mocks the Get method of SettingsRepository.
func (m *MockSettingsRepository) Get(ctx context.Context, profile string) (*emailDomain.EncryptedSettings, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*emailDomain.EncryptedSettings), args.Error(1)
}

// Save mocks the Save method of SettingsRepository.
func (m *MockSettingsRepository) Save(
	ctx context.Context,
	profile string,
	settings *emailDomain.EncryptedSettings,
) error {
	args := m.Called(ctx, profile, settings)
	return args.Error(0)
}

// List mocks the List method of SettingsRepository.
func (m *MockSettingsRepository) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SettingsReader struct {
	mock.Mock
}

func (m *SettingsReader) TargetLanguages(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *SettingsReader) MaxUploadSizeMb(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *SettingsReader) AllowedFileTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *SettingsReader) PushEnabled(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *SettingsReader) DefaultCurrency(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

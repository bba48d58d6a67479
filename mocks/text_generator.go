package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type TextGenerator struct {
	mock.Mock
}

func (m *TextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Translator struct {
	mock.Mock
}

func (m *Translator) Translate(ctx context.Context, texts []string,
	sourceLanguage, targetLanguage string,
) ([]string, error) {
	args := m.Called(ctx, texts, sourceLanguage, targetLanguage)
	return args.Get(0).([]string), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amanahq/amana-backend/models"
)

type PushSender struct {
	mock.Mock
}

func (m *PushSender) SendPush(ctx context.Context, tokens []models.DeviceToken,
	notification models.Notification,
) ([]string, error) {
	args := m.Called(ctx, tokens, notification)
	return args.Get(0).([]string), args.Error(1)
}

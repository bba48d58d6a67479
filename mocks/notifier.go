package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amanahq/amana-backend/models"
)

type Notifier struct {
	mock.Mock
}

func (m *Notifier) NotifyUser(ctx context.Context, attributes models.CreateNotificationAttributes) {
	m.Called(ctx, attributes)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
)

type NotificationRepository struct {
	mock.Mock
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, exec repositories.Executor,
	attributes models.CreateNotificationAttributes,
) (models.Notification, error) {
	args := r.Called(ctx, exec, attributes)
	return args.Get(0).(models.Notification), args.Error(1)
}

func (r *NotificationRepository) ListNotificationsForUser(ctx context.Context, exec repositories.Executor,
	userId models.UserId, unreadOnly bool,
) ([]models.Notification, error) {
	args := r.Called(ctx, exec, userId, unreadOnly)
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (r *NotificationRepository) MarkNotificationRead(ctx context.Context, exec repositories.Executor,
	notificationId string, userId models.UserId,
) error {
	args := r.Called(ctx, exec, notificationId, userId)
	return args.Error(0)
}

func (r *NotificationRepository) UpsertDeviceToken(ctx context.Context, exec repositories.Executor,
	attributes models.RegisterDeviceTokenAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *NotificationRepository) ListDeviceTokensForUser(ctx context.Context, exec repositories.Executor,
	userId models.UserId,
) ([]models.DeviceToken, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).([]models.DeviceToken), args.Error(1)
}

func (r *NotificationRepository) DeleteDeviceTokens(ctx context.Context, exec repositories.Executor,
	tokens []string,
) error {
	args := r.Called(ctx, exec, tokens)
	return args.Error(0)
}

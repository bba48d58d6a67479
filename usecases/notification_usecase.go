package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/usecases/executor_factory"
	"github.com/amanahq/amana-backend/usecases/security"
	"github.com/amanahq/amana-backend/utils"
)

type NotificationUseCaseRepository interface {
	CreateNotification(ctx context.Context, exec repositories.Executor,
		attributes models.CreateNotificationAttributes) (models.Notification, error)
	ListNotificationsForUser(ctx context.Context, exec repositories.Executor,
		userId models.UserId, unreadOnly bool) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, exec repositories.Executor,
		notificationId string, userId models.UserId) error
	UpsertDeviceToken(ctx context.Context, exec repositories.Executor,
		attributes models.RegisterDeviceTokenAttributes) error
	ListDeviceTokensForUser(ctx context.Context, exec repositories.Executor,
		userId models.UserId) ([]models.DeviceToken, error)
	DeleteDeviceTokens(ctx context.Context, exec repositories.Executor, tokens []string) error
}

type NotificationUseCase struct {
	enforceSecurity security.EnforceSecurityNotification
	executorFactory executor_factory.ExecutorFactory
	repository      NotificationUseCaseRepository
	pushSender      repositories.PushSender
	settings        settingsReader
}

func (usecase *NotificationUseCase) ListNotifications(
	ctx context.Context,
	userId models.UserId,
	unreadOnly bool,
) ([]models.Notification, error) {
	if err := usecase.enforceSecurity.ReadNotifications(userId); err != nil {
		return nil, err
	}
	return usecase.repository.ListNotificationsForUser(ctx,
		usecase.executorFactory.NewExecutor(), userId, unreadOnly)
}

func (usecase *NotificationUseCase) MarkNotificationRead(
	ctx context.Context,
	userId models.UserId,
	notificationId string,
) error {
	if err := usecase.enforceSecurity.ReadNotifications(userId); err != nil {
		return err
	}
	return usecase.repository.MarkNotificationRead(ctx,
		usecase.executorFactory.NewExecutor(), notificationId, userId)
}

func (usecase *NotificationUseCase) RegisterDeviceToken(
	ctx context.Context,
	attributes models.RegisterDeviceTokenAttributes,
) error {
	if err := usecase.enforceSecurity.RegisterDeviceToken(attributes.UserId); err != nil {
		return err
	}
	if attributes.Token == "" {
		return errors.Wrap(models.BadParameterError, "device token is required")
	}
	if _, ok := models.DevicePlatformFrom(string(attributes.Platform)); !ok {
		return errors.Wrapf(models.BadParameterError, "unknown platform '%s'", attributes.Platform)
	}
	return usecase.repository.UpsertDeviceToken(ctx, usecase.executorFactory.NewExecutor(), attributes)
}

// NotifyUser stores the notification row, then attempts push delivery.
// Delivery failures are logged, never surfaced: the row is the source of
// truth, the push is best-effort.
func (usecase *NotificationUseCase) NotifyUser(
	ctx context.Context,
	attributes models.CreateNotificationAttributes,
) {
	logger := utils.LoggerFromContext(ctx)
	exec := usecase.executorFactory.NewExecutor()

	notification, err := usecase.repository.CreateNotification(ctx, exec, attributes)
	if err != nil {
		logger.ErrorContext(ctx, "failed to store notification",
			"user_id", attributes.UserId, "error", err)
		return
	}

	pushEnabled, err := usecase.settings.PushEnabled(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read push_enabled setting", "error", err)
		return
	}
	if !pushEnabled || usecase.pushSender == nil {
		return
	}

	tokens, err := usecase.repository.ListDeviceTokensForUser(ctx, exec, attributes.UserId)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list device tokens",
			"user_id", attributes.UserId, "error", err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	invalidTokens, err := usecase.pushSender.SendPush(ctx, tokens, notification)
	if err != nil {
		logger.WarnContext(ctx, "failed to send push notification",
			"user_id", attributes.UserId, "error", err)
		return
	}

	if len(invalidTokens) > 0 {
		if err := usecase.repository.DeleteDeviceTokens(ctx, exec, invalidTokens); err != nil {
			logger.WarnContext(ctx, "failed to prune invalid device tokens", "error", err)
		}
	}
}

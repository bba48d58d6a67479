package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories/dbmodels"
)

func (repo AmanaDbRepository) CreateNotification(
	ctx context.Context,
	exec Executor,
	attributes models.CreateNotificationAttributes,
) (models.Notification, error) {
	data, err := json.Marshal(attributes.Data)
	if err != nil {
		return models.Notification{}, errors.Wrap(err, "failed to marshal notification data")
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_NOTIFICATIONS).
			Columns("id", "user_id", "kind", "title", "body", "data").
			Values(
				uuid.NewString(),
				attributes.UserId,
				attributes.Kind,
				attributes.Title,
				attributes.Body,
				data,
			).
			Suffix("RETURNING *"),
		dbmodels.AdaptNotification,
	)
}

func (repo AmanaDbRepository) ListNotificationsForUser(
	ctx context.Context,
	exec Executor,
	userId models.UserId,
	unreadOnly bool,
) ([]models.Notification, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectNotificationColumn...).
		From(dbmodels.TABLE_NOTIFICATIONS).
		Where(squirrel.Eq{"user_id": userId}).
		OrderBy("created_at DESC")

	if unreadOnly {
		query = query.Where(squirrel.Eq{"read": false})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptNotification)
}

func (repo AmanaDbRepository) MarkNotificationRead(
	ctx context.Context,
	exec Executor,
	notificationId string,
	userId models.UserId,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_NOTIFICATIONS).
			Set("read", true).
			Where(squirrel.Eq{"id": notificationId, "user_id": userId}),
	)
}

func (repo AmanaDbRepository) UpsertDeviceToken(
	ctx context.Context,
	exec Executor,
	attributes models.RegisterDeviceTokenAttributes,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_DEVICE_TOKENS).
			Columns("id", "user_id", "token", "platform").
			Values(uuid.NewString(), attributes.UserId, attributes.Token, attributes.Platform).
			Suffix("ON CONFLICT (token) DO UPDATE SET "+
				"user_id = EXCLUDED.user_id, "+
				"platform = EXCLUDED.platform"),
	)
}

func (repo AmanaDbRepository) ListDeviceTokensForUser(
	ctx context.Context,
	exec Executor,
	userId models.UserId,
) ([]models.DeviceToken, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectDeviceTokenColumn...).
			From(dbmodels.TABLE_DEVICE_TOKENS).
			Where(squirrel.Eq{"user_id": userId}),
		dbmodels.AdaptDeviceToken,
	)
}

// DeleteDeviceTokens removes tokens the push provider reported as invalid.
func (repo AmanaDbRepository) DeleteDeviceTokens(ctx context.Context, exec Executor, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_DEVICE_TOKENS).
			Where(squirrel.Eq{"token": tokens}),
	)
}

package repositories

import (
	"context"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

type PushSender interface {
	SendPush(ctx context.Context, tokens []models.DeviceToken, notification models.Notification) (invalidTokens []string, err error)
}

type fcmRepository struct {
	messagingClient *messaging.Client
}

func NewFcmRepository(messagingClient *messaging.Client) PushSender {
	return &fcmRepository{
		messagingClient: messagingClient,
	}
}

// SendPush delivers the notification to every device token and returns the
// tokens FCM reported as no longer registered so the caller can prune them.
func (repo *fcmRepository) SendPush(
	ctx context.Context,
	tokens []models.DeviceToken,
	notification models.Notification,
) ([]string, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	message := &messaging.MulticastMessage{
		Tokens: utils.Map(tokens, func(t models.DeviceToken) string { return t.Token }),
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data,
	}

	var response *messaging.BatchResponse
	err := retry.Do(
		func() error {
			var err error
			response, err = repo.messagingClient.SendEachForMulticast(ctx, message)
			return err
		},
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send push notification")
	}

	var invalidTokens []string
	for i, resp := range response.Responses {
		if resp.Error == nil {
			continue
		}
		if messaging.IsUnregistered(resp.Error) || messaging.IsInvalidArgument(resp.Error) {
			invalidTokens = append(invalidTokens, message.Tokens[i])
		}
	}
	return invalidTokens, nil
}

package security

import (
	"github.com/cockroachdb/errors"

	"github.com/amanahq/amana-backend/models"
)

type EnforceSecurityNotification interface {
	EnforceSecurity
	ReadNotifications(userId models.UserId) error
	RegisterDeviceToken(userId models.UserId) error
}

type EnforceSecurityNotificationImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityNotificationImpl) ReadNotifications(userId models.UserId) error {
	if userId != e.Credentials.ActorIdentity.UserId {
		return errors.Wrap(models.ForbiddenError, "users can only read their own notifications")
	}
	return e.Permission(models.NOTIFICATION_READ)
}

func (e *EnforceSecurityNotificationImpl) RegisterDeviceToken(userId models.UserId) error {
	if userId != e.Credentials.ActorIdentity.UserId {
		return errors.Wrap(models.ForbiddenError, "users can only register their own devices")
	}
	return nil
}

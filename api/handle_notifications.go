package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amanahq/amana-backend/dto"
	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/usecases"
	"github.com/amanahq/amana-backend/utils"
)

type NotificationInput struct {
	Id string `uri:"notification_id" binding:"required,uuid"`
}

func handleListNotifications(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := credentialsFromContext(ctx)
		if presentError(ctx, c, err) {
			return
		}

		unreadOnly := c.Query("unread_only") == "true"

		usecase := usecasesWithCreds(ctx, uc).NewNotificationUseCase()
		notifications, err := usecase.ListNotifications(ctx, creds.ActorIdentity.UserId, unreadOnly)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"notifications": utils.Map(notifications, dto.AdaptNotificationDto),
		})
	}
}

func handleMarkNotificationRead(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := credentialsFromContext(ctx)
		if presentError(ctx, c, err) {
			return
		}

		var notificationInput NotificationInput
		if err := c.ShouldBindUri(&notificationInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewNotificationUseCase()
		err = usecase.MarkNotificationRead(ctx, creds.ActorIdentity.UserId, notificationInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func handleRegisterDeviceToken(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := credentialsFromContext(ctx)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.RegisterDeviceTokenBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewNotificationUseCase()
		err = usecase.RegisterDeviceToken(ctx, models.RegisterDeviceTokenAttributes{
			UserId:   creds.ActorIdentity.UserId,
			Token:    body.Token,
			Platform: models.DevicePlatform(body.Platform),
		})
		if presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

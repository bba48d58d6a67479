package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amanahq/amana-backend/dto"
	"github.com/amanahq/amana-backend/usecases"
	"github.com/amanahq/amana-backend/utils"
)

type SettingInput struct {
	Key string `uri:"key" binding:"required"`
}

func handleListSettings(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewSettingUseCase()
		settings, err := usecase.ListSettings(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"settings": utils.Map(settings, dto.AdaptSettingDto)})
	}
}

func handleGetSetting(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var settingInput SettingInput
		if err := c.ShouldBindUri(&settingInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSettingUseCase()
		setting, err := usecase.GetSetting(ctx, settingInput.Key)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"setting": dto.AdaptSettingDto(setting)})
	}
}

func handlePutSetting(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := credentialsFromContext(ctx)
		if presentError(ctx, c, err) {
			return
		}

		var settingInput SettingInput
		if err := c.ShouldBindUri(&settingInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body dto.UpsertSettingBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSettingUseCase()
		setting, err := usecase.UpsertSetting(ctx,
			dto.AdaptUpsertSettingBody(settingInput.Key, body, creds.ActorIdentity.UserId))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"setting": dto.AdaptSettingDto(setting)})
	}
}

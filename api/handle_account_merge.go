package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amanahq/amana-backend/dto"
	"github.com/amanahq/amana-backend/usecases"
	"github.com/amanahq/amana-backend/utils"
)

type PreviewAccountMergeBody struct {
	SourceUserId string `json:"source_user_id" binding:"required,uuid"`
	TargetUserId string `json:"target_user_id" binding:"required,uuid"`
}

func handlePreviewAccountMerge(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body PreviewAccountMergeBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAccountMergeUseCase()
		preview, err := usecase.PreviewMerge(ctx, body.SourceUserId, body.TargetUserId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"preview": dto.AdaptAccountMergePreviewDto(preview)})
	}
}

func handleExecuteAccountMerge(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := credentialsFromContext(ctx)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.ExecuteAccountMergeBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAccountMergeUseCase()
		merge, err := usecase.ExecuteMerge(ctx,
			dto.AdaptExecuteAccountMergeBody(body, creds.ActorIdentity.UserId))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"merge": dto.AdaptAccountMergeDto(merge)})
	}
}

func handleListAccountMerges(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewAccountMergeUseCase()
		merges, err := usecase.ListMerges(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"merges": utils.Map(merges, dto.AdaptAccountMergeDto)})
	}
}

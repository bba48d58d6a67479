package api

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/amanahq/amana-backend/dto"
	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/usecases"
)

type FileForm struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

type CaseFileInput struct {
	Id string `uri:"file_id" binding:"required,uuid"`
}

func handlePostCaseFile(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := credentialsFromContext(ctx)
		if presentError(ctx, c, err) {
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		var form FileForm
		if err := c.ShouldBind(&form); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseFileUseCase()
		caseFile, err := usecase.CreateCaseFile(ctx, creds.ActorIdentity.UserId,
			models.CreateCaseFileInput{
				CaseId: caseInput.Id,
				File:   form.File,
			})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"file": dto.NewAPICaseFile(caseFile)})
	}
}

func handleDownloadCaseFile(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var fileInput CaseFileInput
		if err := c.ShouldBindUri(&fileInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseFileUseCase()
		url, err := usecase.GetCaseFileDownloadUrl(ctx, fileInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}

func handleDownloadCaseFileContent(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var fileInput CaseFileInput
		if err := c.ShouldBindUri(&fileInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseFileUseCase()
		blob, err := usecase.DownloadCaseFile(ctx, fileInput.Id)
		if presentError(ctx, c, err) {
			return
		}
		defer blob.ReadCloser.Close()

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", blob.FileName))
		c.DataFromReader(http.StatusOK, -1, "application/octet-stream", blob.ReadCloser, nil)
	}
}

func handleDeleteCaseFile(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := credentialsFromContext(ctx)
		if presentError(ctx, c, err) {
			return
		}

		var fileInput CaseFileInput
		if err := c.ShouldBindUri(&fileInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseFileUseCase()
		if presentError(ctx, c, usecase.DeleteCaseFile(ctx, creds.ActorIdentity.UserId, fileInput.Id)) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

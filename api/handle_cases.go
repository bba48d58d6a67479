package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amanahq/amana-backend/dto"
	"github.com/amanahq/amana-backend/usecases"
)

type CaseInput struct {
	Id string `uri:"case_id" binding:"required,uuid"`
}

func handleListCases(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var filters dto.CaseFilters
		if err := c.ShouldBind(&filters); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		parsedFilters, err := filters.Parse()
		if presentError(ctx, c, err) {
			return
		}

		var paginationDto dto.PaginationAndSorting
		if err := c.ShouldBind(&paginationDto); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		cases, err := usecase.ListCases(ctx, parsedFilters, dto.AdaptPaginationAndSorting(paginationDto))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptPaginated(cases, dto.AdaptCaseDto))
	}
}

func handleGetCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		donationCase, err := usecase.GetCase(ctx, caseInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(donationCase)})
	}
}

func handlePostCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := credentialsFromContext(ctx)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.CreateCaseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		donationCase, err := usecase.CreateCase(ctx, creds.ActorIdentity.UserId,
			dto.AdaptCreateCaseBody(body, creds.ActorIdentity.UserId))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"case": dto.AdaptCaseDto(donationCase)})
	}
}

func handlePatchCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := credentialsFromContext(ctx)
		if presentError(ctx, c, err) {
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body dto.UpdateCaseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		donationCase, err := usecase.UpdateCase(ctx, creds.ActorIdentity.UserId,
			dto.AdaptUpdateCaseBody(caseInput.Id, body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(donationCase)})
	}
}

func handleDeleteCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		if presentError(ctx, c, usecase.DeleteCase(ctx, caseInput.Id)) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func handlePublishCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := credentialsFromContext(ctx)
		if presentError(ctx, c, err) {
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		donationCase, err := usecase.PublishCase(ctx, creds.ActorIdentity.UserId, caseInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(donationCase)})
	}
}

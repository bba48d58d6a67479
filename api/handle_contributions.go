package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amanahq/amana-backend/dto"
	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/usecases"
)

type ContributionInput struct {
	Id string `uri:"contribution_id" binding:"required,uuid"`
}

func listContributions(c *gin.Context, uc usecases.Usecases, filters models.ContributionFilters) {
	ctx := c.Request.Context()

	var paginationDto dto.PaginationAndSorting
	if err := c.ShouldBind(&paginationDto); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	usecase := usecasesWithCreds(ctx, uc).NewContributionUseCase()
	contributions, err := usecase.ListContributions(ctx, filters,
		dto.AdaptPaginationAndSorting(paginationDto))
	if presentError(ctx, c, err) {
		return
	}

	c.JSON(http.StatusOK, dto.AdaptPaginated(contributions, dto.AdaptContributionDto))
}

func handleListContributions(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var filters dto.ContributionFilters
		if err := c.ShouldBind(&filters); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		listContributions(c, uc, filters.Parse())
	}
}

func handleListCaseContributions(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		listContributions(c, uc, models.ContributionFilters{CaseId: caseInput.Id})
	}
}

func handleGetContribution(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var contributionInput ContributionInput
		if err := c.ShouldBindUri(&contributionInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewContributionUseCase()
		contribution, err := usecase.GetContribution(ctx, contributionInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"contribution": dto.AdaptContributionDto(contribution)})
	}
}

func handlePostContribution(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := credentialsFromContext(ctx)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.CreateContributionBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewContributionUseCase()
		contribution, err := usecase.CreateContribution(ctx,
			dto.AdaptCreateContributionBody(body, creds.ActorIdentity.UserId))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"contribution": dto.AdaptContributionDto(contribution)})
	}
}

func handleReviewContribution(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := credentialsFromContext(ctx)
		if presentError(ctx, c, err) {
			return
		}

		var contributionInput ContributionInput
		if err := c.ShouldBindUri(&contributionInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body dto.ReviewContributionBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewContributionUseCase()
		contribution, err := usecase.ReviewContribution(ctx, models.ReviewContributionAttributes{
			ContributionId: contributionInput.Id,
			ReviewerId:     creds.ActorIdentity.UserId,
			Approve:        *body.Approve,
			ReviewNote:     body.ReviewNote,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"contribution": dto.AdaptContributionDto(contribution)})
	}
}

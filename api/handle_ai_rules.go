package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amanahq/amana-backend/dto"
	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/usecases"
	"github.com/amanahq/amana-backend/utils"
)

type AiRuleInput struct {
	Id string `uri:"rule_id" binding:"required,uuid"`
}

func handleListAiRules(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var category models.AiRuleCategory
		if categoryParam := c.Query("category"); categoryParam != "" {
			category = models.AiRuleCategoryFrom(categoryParam)
			if category == models.AiRuleCategoryUnknown {
				c.Status(http.StatusBadRequest)
				return
			}
		}

		usecase := usecasesWithCreds(ctx, uc).NewAiRuleUseCase()
		rules, err := usecase.ListAiRules(ctx, category)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"ai_rules": utils.Map(rules, dto.AdaptAiRuleDto)})
	}
}

func handleGetAiRule(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var ruleInput AiRuleInput
		if err := c.ShouldBindUri(&ruleInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAiRuleUseCase()
		rule, err := usecase.GetAiRule(ctx, ruleInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"ai_rule": dto.AdaptAiRuleDto(rule)})
	}
}

func handlePostAiRule(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateAiRuleBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAiRuleUseCase()
		rule, err := usecase.CreateAiRule(ctx, dto.AdaptCreateAiRuleBody(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"ai_rule": dto.AdaptAiRuleDto(rule)})
	}
}

func handlePatchAiRule(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var ruleInput AiRuleInput
		if err := c.ShouldBindUri(&ruleInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body dto.UpdateAiRuleBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		attributes, err := dto.AdaptUpdateAiRuleBody(ruleInput.Id, body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAiRuleUseCase()
		rule, err := usecase.UpdateAiRule(ctx, attributes)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"ai_rule": dto.AdaptAiRuleDto(rule)})
	}
}

func handleDeleteAiRule(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var ruleInput AiRuleInput
		if err := c.ShouldBindUri(&ruleInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAiRuleUseCase()
		if presentError(ctx, c, usecase.DeleteAiRule(ctx, ruleInput.Id)) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func handleReorderAiRules(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.ReorderAiRulesBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAiRuleUseCase()
		rules, err := usecase.ReorderAiRules(ctx, models.ReorderAiRulesAttributes{
			Category:   models.AiRuleCategoryFrom(body.Category),
			OrderedIds: body.OrderedIds,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"ai_rules": utils.Map(rules, dto.AdaptAiRuleDto)})
	}
}

func handlePreviewAiRules(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.RenderPromptBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAiRuleUseCase()
		text, err := usecase.GeneratePreview(ctx,
			models.AiRuleCategoryFrom(body.Category), body.Params)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.APIGeneratedPreview{Text: text})
	}
}

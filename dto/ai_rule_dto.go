package dto

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/amanahq/amana-backend/models"
)

type APIAiRule struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Template  string    `json:"template"`
	Category  string    `json:"category"`
	RuleType  string    `json:"rule_type"`
	Priority  int       `json:"priority"`
	Enabled   bool      `json:"enabled"`
	Params    []string  `json:"params"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func AdaptAiRuleDto(rule models.AiRule) APIAiRule {
	return APIAiRule{
		Id:        rule.Id,
		Name:      rule.Name,
		Template:  rule.Template,
		Category:  string(rule.Category),
		RuleType:  string(rule.RuleType),
		Priority:  rule.Priority,
		Enabled:   rule.Enabled,
		Params:    rule.ExtractParams(),
		CreatedAt: rule.CreatedAt,
		UpdatedAt: rule.UpdatedAt,
	}
}

type CreateAiRuleBody struct {
	Name     string `json:"name" binding:"required"`
	Template string `json:"template" binding:"required"`
	Category string `json:"category" binding:"required"`
	RuleType string `json:"rule_type" binding:"required"`
	Enabled  *bool  `json:"enabled"`
}

func AdaptCreateAiRuleBody(body CreateAiRuleBody) models.CreateAiRuleAttributes {
	enabled := true
	if body.Enabled != nil {
		enabled = *body.Enabled
	}
	return models.CreateAiRuleAttributes{
		Name:     body.Name,
		Template: body.Template,
		Category: models.AiRuleCategoryFrom(body.Category),
		RuleType: models.AiRuleTypeFrom(body.RuleType),
		Enabled:  enabled,
	}
}

type UpdateAiRuleBody struct {
	Name     *string `json:"name"`
	Template *string `json:"template"`
	RuleType *string `json:"rule_type"`
	Enabled  *bool   `json:"enabled"`
}

func AdaptUpdateAiRuleBody(ruleId string, body UpdateAiRuleBody) (models.UpdateAiRuleAttributes, error) {
	attrs := models.UpdateAiRuleAttributes{
		Id:       ruleId,
		Name:     body.Name,
		Template: body.Template,
		Enabled:  body.Enabled,
	}
	if body.RuleType != nil {
		ruleType := models.AiRuleTypeFrom(*body.RuleType)
		if ruleType == models.AiRuleTypeUnknown {
			return models.UpdateAiRuleAttributes{},
				errors.Wrapf(models.BadParameterError, "unknown rule type '%s'", *body.RuleType)
		}
		attrs.RuleType = &ruleType
	}
	return attrs, nil
}

type ReorderAiRulesBody struct {
	Category   string   `json:"category" binding:"required"`
	OrderedIds []string `json:"ordered_ids" binding:"required"`
}

type RenderPromptBody struct {
	Category string            `json:"category" binding:"required"`
	Params   map[string]string `json:"params"`
}

type APIRenderedPrompt struct {
	Prompt string `json:"prompt"`
}

type APIGeneratedPreview struct {
	Text string `json:"text"`
}

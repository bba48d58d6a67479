package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
)

type AiRuleRepository struct {
	mock.Mock
}

func (r *AiRuleRepository) GetAiRuleById(ctx context.Context, exec repositories.Executor,
	ruleId string,
) (models.AiRule, error) {
	args := r.Called(ctx, exec, ruleId)
	return args.Get(0).(models.AiRule), args.Error(1)
}

func (r *AiRuleRepository) ListAiRules(ctx context.Context, exec repositories.Executor,
	category models.AiRuleCategory,
) ([]models.AiRule, error) {
	args := r.Called(ctx, exec, category)
	return args.Get(0).([]models.AiRule), args.Error(1)
}

func (r *AiRuleRepository) ListEnabledAiRules(ctx context.Context, exec repositories.Executor,
	category models.AiRuleCategory,
) ([]models.AiRule, error) {
	args := r.Called(ctx, exec, category)
	return args.Get(0).([]models.AiRule), args.Error(1)
}

func (r *AiRuleRepository) CreateAiRule(ctx context.Context, exec repositories.Executor,
	attributes models.CreateAiRuleAttributes, newRuleId string,
) error {
	args := r.Called(ctx, exec, attributes, newRuleId)
	return args.Error(0)
}

func (r *AiRuleRepository) UpdateAiRule(ctx context.Context, exec repositories.Executor,
	attributes models.UpdateAiRuleAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *AiRuleRepository) DeleteAiRule(ctx context.Context, exec repositories.Executor, ruleId string) error {
	args := r.Called(ctx, exec, ruleId)
	return args.Error(0)
}

func (r *AiRuleRepository) SetAiRulePriority(ctx context.Context, exec repositories.Executor,
	ruleId string, priority int,
) error {
	args := r.Called(ctx, exec, ruleId, priority)
	return args.Error(0)
}

func (r *AiRuleRepository) RenumberAiRulePriorities(ctx context.Context, exec repositories.Executor,
	category models.AiRuleCategory,
) error {
	args := r.Called(ctx, exec, category)
	return args.Error(0)
}

package usecases

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/usecases/executor_factory"
	"github.com/amanahq/amana-backend/usecases/security"
)

type AiRuleUseCaseRepository interface {
	GetAiRuleById(ctx context.Context, exec repositories.Executor, ruleId string) (models.AiRule, error)
	ListAiRules(ctx context.Context, exec repositories.Executor,
		category models.AiRuleCategory) ([]models.AiRule, error)
	ListEnabledAiRules(ctx context.Context, exec repositories.Executor,
		category models.AiRuleCategory) ([]models.AiRule, error)
	CreateAiRule(ctx context.Context, exec repositories.Executor,
		attributes models.CreateAiRuleAttributes, newRuleId string) error
	UpdateAiRule(ctx context.Context, exec repositories.Executor, attributes models.UpdateAiRuleAttributes) error
	DeleteAiRule(ctx context.Context, exec repositories.Executor, ruleId string) error
	SetAiRulePriority(ctx context.Context, exec repositories.Executor, ruleId string, priority int) error
	RenumberAiRulePriorities(ctx context.Context, exec repositories.Executor,
		category models.AiRuleCategory) error
}

type AiRuleUseCase struct {
	enforceSecurity    security.EnforceSecurityAiRule
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         AiRuleUseCaseRepository
	textGenerator      repositories.TextGenerator
}

func (usecase *AiRuleUseCase) ListAiRules(ctx context.Context, category models.AiRuleCategory) ([]models.AiRule, error) {
	if err := usecase.enforceSecurity.ReadAiRule(); err != nil {
		return nil, err
	}
	return usecase.repository.ListAiRules(ctx, usecase.executorFactory.NewExecutor(), category)
}

func (usecase *AiRuleUseCase) GetAiRule(ctx context.Context, ruleId string) (models.AiRule, error) {
	if err := usecase.enforceSecurity.ReadAiRule(); err != nil {
		return models.AiRule{}, err
	}
	return usecase.repository.GetAiRuleById(ctx, usecase.executorFactory.NewExecutor(), ruleId)
}

func (usecase *AiRuleUseCase) CreateAiRule(
	ctx context.Context,
	attributes models.CreateAiRuleAttributes,
) (models.AiRule, error) {
	if err := usecase.enforceSecurity.WriteAiRule(); err != nil {
		return models.AiRule{}, err
	}
	if attributes.Name == "" || attributes.Template == "" {
		return models.AiRule{}, errors.Wrap(models.BadParameterError, "name and template are required")
	}
	if attributes.Category == models.AiRuleCategoryUnknown {
		return models.AiRule{}, errors.Wrap(models.BadParameterError, "unknown rule category")
	}
	if attributes.RuleType == models.AiRuleTypeUnknown {
		return models.AiRule{}, errors.Wrap(models.BadParameterError, "unknown rule type")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.AiRule, error) {
			newRuleId := uuid.NewString()
			if err := usecase.repository.CreateAiRule(ctx, tx, attributes, newRuleId); err != nil {
				return models.AiRule{}, err
			}
			return usecase.repository.GetAiRuleById(ctx, tx, newRuleId)
		})
}

func (usecase *AiRuleUseCase) UpdateAiRule(
	ctx context.Context,
	attributes models.UpdateAiRuleAttributes,
) (models.AiRule, error) {
	if err := usecase.enforceSecurity.WriteAiRule(); err != nil {
		return models.AiRule{}, err
	}
	if attributes.RuleType != nil && *attributes.RuleType == models.AiRuleTypeUnknown {
		return models.AiRule{}, errors.Wrap(models.BadParameterError, "unknown rule type")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.AiRule, error) {
			if _, err := usecase.repository.GetAiRuleById(ctx, tx, attributes.Id); err != nil {
				return models.AiRule{}, err
			}
			if err := usecase.repository.UpdateAiRule(ctx, tx, attributes); err != nil {
				return models.AiRule{}, err
			}
			return usecase.repository.GetAiRuleById(ctx, tx, attributes.Id)
		})
}

// DeleteAiRule removes the rule and renumbers the remaining priorities of its
// category so they stay dense.
func (usecase *AiRuleUseCase) DeleteAiRule(ctx context.Context, ruleId string) error {
	if err := usecase.enforceSecurity.WriteAiRule(); err != nil {
		return err
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		rule, err := usecase.repository.GetAiRuleById(ctx, tx, ruleId)
		if err != nil {
			return err
		}
		if err := usecase.repository.DeleteAiRule(ctx, tx, ruleId); err != nil {
			return err
		}
		return usecase.repository.RenumberAiRulePriorities(ctx, tx, rule.Category)
	})
}

// ReorderAiRules rewrites the priorities of one category following the given
// id list, which must be a permutation of the category's rules.
func (usecase *AiRuleUseCase) ReorderAiRules(ctx context.Context, attributes models.ReorderAiRulesAttributes) ([]models.AiRule, error) {
	if err := usecase.enforceSecurity.WriteAiRule(); err != nil {
		return nil, err
	}
	if attributes.Category == models.AiRuleCategoryUnknown {
		return nil, errors.Wrap(models.BadParameterError, "unknown rule category")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) ([]models.AiRule, error) {
			rules, err := usecase.repository.ListAiRules(ctx, tx, attributes.Category)
			if err != nil {
				return nil, err
			}

			if err := validatePermutation(rules, attributes.OrderedIds); err != nil {
				return nil, err
			}

			for i, ruleId := range attributes.OrderedIds {
				if err := usecase.repository.SetAiRulePriority(ctx, tx, ruleId, i+1); err != nil {
					return nil, err
				}
			}

			return usecase.repository.ListAiRules(ctx, tx, attributes.Category)
		})
}

func validatePermutation(rules []models.AiRule, orderedIds []string) error {
	if len(orderedIds) != len(rules) {
		return errors.Wrapf(models.BadParameterError,
			"expected %d rule ids, got %d", len(rules), len(orderedIds))
	}

	known := make(map[string]bool, len(rules))
	for _, rule := range rules {
		known[rule.Id] = true
	}

	seen := make(map[string]bool, len(orderedIds))
	for _, id := range orderedIds {
		if !known[id] {
			return errors.Wrapf(models.BadParameterError,
				"rule '%s' does not belong to the category", id)
		}
		if seen[id] {
			return errors.Wrapf(models.BadParameterError, "duplicate rule id '%s'", id)
		}
		seen[id] = true
	}
	return nil
}

// RenderPrompt composes the prompt for a category: enabled rules concatenated
// by ascending priority with their placeholders substituted.
func (usecase *AiRuleUseCase) RenderPrompt(
	ctx context.Context,
	category models.AiRuleCategory,
	params map[string]string,
) (string, error) {
	if err := usecase.enforceSecurity.ReadAiRule(); err != nil {
		return "", err
	}

	rules, err := usecase.repository.ListEnabledAiRules(ctx,
		usecase.executorFactory.NewExecutor(), category)
	if err != nil {
		return "", err
	}
	if len(rules) == 0 {
		return "", errors.Wrapf(models.NotFoundError,
			"no enabled rules for category '%s'", category)
	}

	parts := make([]string, 0, len(rules))
	for _, rule := range rules {
		for _, param := range rule.ExtractParams() {
			if _, ok := params[param]; !ok {
				return "", errors.Wrapf(models.BadParameterError,
					"missing value for parameter '%s' of rule '%s'", param, rule.Name)
			}
		}
		parts = append(parts, models.SubstituteTemplateParams(rule.Template, params))
	}

	return strings.Join(parts, "\n\n"), nil
}

// GeneratePreview composes the category prompt and asks the configured model
// for draft text. Nothing is persisted.
func (usecase *AiRuleUseCase) GeneratePreview(
	ctx context.Context,
	category models.AiRuleCategory,
	params map[string]string,
) (string, error) {
	if err := usecase.enforceSecurity.WriteAiRule(); err != nil {
		return "", err
	}
	if usecase.textGenerator == nil {
		return "", errors.New("no text generation client configured")
	}

	prompt, err := usecase.RenderPrompt(ctx, category, params)
	if err != nil {
		return "", err
	}

	return usecase.textGenerator.GenerateText(ctx, prompt)
}

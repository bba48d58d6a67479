package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories/dbmodels"
)

func (repo AmanaDbRepository) GetAiRuleById(ctx context.Context, exec Executor, ruleId string) (models.AiRule, error) {
	return SqlToModel(
		ctx,
		exec,
		selectAiRules().Where(squirrel.Eq{"id": ruleId}),
		dbmodels.AdaptAiRule,
	)
}

func (repo AmanaDbRepository) ListAiRules(
	ctx context.Context,
	exec Executor,
	category models.AiRuleCategory,
) ([]models.AiRule, error) {
	query := selectAiRules().OrderBy("category", "priority")
	if category != "" {
		query = query.Where(squirrel.Eq{"category": category})
	}
	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAiRule)
}

func (repo AmanaDbRepository) ListEnabledAiRules(
	ctx context.Context,
	exec Executor,
	category models.AiRuleCategory,
) ([]models.AiRule, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectAiRules().
			Where(squirrel.Eq{"category": category, "enabled": true}).
			OrderBy("priority"),
		dbmodels.AdaptAiRule,
	)
}

func selectAiRules() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectAiRuleColumn...).
		From(dbmodels.TABLE_AI_RULES)
}

func (repo AmanaDbRepository) CreateAiRule(
	ctx context.Context,
	exec Executor,
	attributes models.CreateAiRuleAttributes,
	newRuleId string,
) error {
	// New rules always land at the end of their category.
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_AI_RULES).
			Columns(
				"id",
				"name",
				"template",
				"category",
				"rule_type",
				"priority",
				"enabled",
			).
			Values(
				newRuleId,
				attributes.Name,
				attributes.Template,
				attributes.Category,
				attributes.RuleType,
				squirrel.Expr(
					"(SELECT COALESCE(MAX(priority), 0) + 1 FROM "+dbmodels.TABLE_AI_RULES+" WHERE category = ?)",
					attributes.Category,
				),
				attributes.Enabled,
			),
	)
}

func (repo AmanaDbRepository) UpdateAiRule(
	ctx context.Context,
	exec Executor,
	attributes models.UpdateAiRuleAttributes,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_AI_RULES).
		Where(squirrel.Eq{"id": attributes.Id}).
		Set("updated_at", squirrel.Expr("NOW()"))

	if attributes.Name != nil {
		query = query.Set("name", *attributes.Name)
	}
	if attributes.Template != nil {
		query = query.Set("template", *attributes.Template)
	}
	if attributes.RuleType != nil {
		query = query.Set("rule_type", *attributes.RuleType)
	}
	if attributes.Enabled != nil {
		query = query.Set("enabled", *attributes.Enabled)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo AmanaDbRepository) DeleteAiRule(ctx context.Context, exec Executor, ruleId string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_AI_RULES).
			Where(squirrel.Eq{"id": ruleId}),
	)
}

func (repo AmanaDbRepository) SetAiRulePriority(
	ctx context.Context,
	exec Executor,
	ruleId string,
	priority int,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_AI_RULES).
			Set("priority", priority).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": ruleId}),
	)
}

// RenumberAiRulePriorities rewrites the category's priorities to a dense 1..N
// sequence following the current ordering. Used after a delete leaves a gap.
func (repo AmanaDbRepository) RenumberAiRulePriorities(
	ctx context.Context,
	exec Executor,
	category models.AiRuleCategory,
) error {
	sql := `
		UPDATE ` + dbmodels.TABLE_AI_RULES + ` AS r
		SET priority = ranked.new_priority
		FROM (
			SELECT id, ROW_NUMBER() OVER (ORDER BY priority, created_at) AS new_priority
			FROM ` + dbmodels.TABLE_AI_RULES + `
			WHERE category = $1
		) AS ranked
		WHERE r.id = ranked.id`

	_, err := exec.Exec(ctx, sql, category)
	return err
}

package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories/dbmodels"
)

func (repo AmanaDbRepository) CreateCaseEvent(
	ctx context.Context,
	exec Executor,
	attributes models.CreateCaseEventAttributes,
) error {
	return repo.BatchCreateCaseEvents(ctx, exec, []models.CreateCaseEventAttributes{attributes})
}

func (repo AmanaDbRepository) BatchCreateCaseEvents(
	ctx context.Context,
	exec Executor,
	attributes []models.CreateCaseEventAttributes,
) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_CASE_EVENTS).
		Columns(
			"id",
			"case_id",
			"user_id",
			"event_type",
			"new_value",
			"previous_value",
		)

	for _, attrs := range attributes {
		query = query.Values(
			uuid.NewString(),
			attrs.CaseId,
			attrs.UserId,
			attrs.EventType,
			attrs.NewValue,
			attrs.PreviousValue,
		)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo AmanaDbRepository) ListCaseEvents(
	ctx context.Context,
	exec Executor,
	caseId string,
) ([]models.CaseEvent, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseEventColumn...).
			From(dbmodels.TABLE_CASE_EVENTS).
			Where(squirrel.Eq{"case_id": caseId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptCaseEvent,
	)
}

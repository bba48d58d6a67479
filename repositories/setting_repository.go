package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories/dbmodels"
)

func (repo AmanaDbRepository) ListSettings(ctx context.Context, exec Executor) ([]models.Setting, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectSettingColumn...).
			From(dbmodels.TABLE_SETTINGS).
			OrderBy("key"),
		dbmodels.AdaptSetting,
	)
}

func (repo AmanaDbRepository) GetSettingByKey(ctx context.Context, exec Executor, key string) (*models.Setting, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectSettingColumn...).
			From(dbmodels.TABLE_SETTINGS).
			Where(squirrel.Eq{"key": key}),
		dbmodels.AdaptSetting,
	)
}

func (repo AmanaDbRepository) UpsertSetting(
	ctx context.Context,
	exec Executor,
	attributes models.UpsertSettingAttributes,
) (models.Setting, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_SETTINGS).
			Columns("key", "value", "value_type", "description", "updated_by").
			Values(
				attributes.Key,
				attributes.Value,
				attributes.ValueType,
				attributes.Description,
				attributes.UpdatedBy,
			).
			Suffix("ON CONFLICT (key) DO UPDATE SET "+
				"value = EXCLUDED.value, "+
				"value_type = EXCLUDED.value_type, "+
				"description = EXCLUDED.description, "+
				"updated_by = EXCLUDED.updated_by, "+
				"updated_at = NOW()").
			Suffix("RETURNING *"),
		dbmodels.AdaptSetting,
	)
}

func (repo AmanaDbRepository) DeleteSetting(ctx context.Context, exec Executor, key string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_SETTINGS).
			Where(squirrel.Eq{"key": key}),
	)
}

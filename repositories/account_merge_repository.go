package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories/dbmodels"
)

// CountRowsReferencingUser returns, per merge table, how many rows point at
// the user. Tables with zero rows are included so previews always show the
// full table list.
func (repo AmanaDbRepository) CountRowsReferencingUser(
	ctx context.Context,
	exec Executor,
	userId models.UserId,
) (map[string]int, error) {
	counts := make(map[string]int, len(models.MergeTables))
	for _, mt := range models.MergeTables {
		count, err := SqlToRowCount(
			ctx,
			exec,
			NewQueryBuilder().
				Select("COUNT(*)").
				From(mt.Table).
				Where(squirrel.Eq{mt.Column: userId}),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "counting rows of %s", mt.Table)
		}
		counts[mt.Table] = count
	}
	return counts, nil
}

// ReassignUserRows rewrites the user-reference column of one merge table from
// the source user to the target user and returns the keys of the rows touched.
func (repo AmanaDbRepository) ReassignUserRows(
	ctx context.Context,
	exec Executor,
	mergeTable models.MergeTable,
	sourceUserId, targetUserId models.UserId,
) ([]string, error) {
	sql, args, err := NewQueryBuilder().
		Update(mergeTable.Table).
		Set(mergeTable.Column, targetUserId).
		Where(squirrel.Eq{mergeTable.Column: sourceUserId}).
		Suffix("RETURNING " + mergeTable.KeyColumn).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "reassigning rows of %s", mergeTable.Table)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (repo AmanaDbRepository) CreateAccountMerge(
	ctx context.Context,
	exec Executor,
	merge models.AccountMerge,
) error {
	reassignedRows, err := json.Marshal(merge.ReassignedRows)
	if err != nil {
		return errors.Wrap(err, "failed to marshal reassigned rows")
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_ACCOUNT_MERGES).
			Columns(
				"id",
				"source_user_id",
				"target_user_id",
				"executed_by",
				"delete_source",
				"reassigned_rows",
			).
			Values(
				merge.Id,
				merge.SourceUserId,
				merge.TargetUserId,
				merge.ExecutedBy,
				merge.DeleteSource,
				reassignedRows,
			),
	)
}

func (repo AmanaDbRepository) GetAccountMergeById(
	ctx context.Context,
	exec Executor,
	mergeId string,
) (models.AccountMerge, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAccountMergeColumn...).
			From(dbmodels.TABLE_ACCOUNT_MERGES).
			Where(squirrel.Eq{"id": mergeId}),
		dbmodels.AdaptAccountMerge,
	)
}

func (repo AmanaDbRepository) ListAccountMerges(ctx context.Context, exec Executor) ([]models.AccountMerge, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAccountMergeColumn...).
			From(dbmodels.TABLE_ACCOUNT_MERGES).
			OrderBy("created_at DESC"),
		dbmodels.AdaptAccountMerge,
	)
}

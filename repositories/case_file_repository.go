package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories/dbmodels"
)

func (repo AmanaDbRepository) CreateCaseFile(
	ctx context.Context,
	exec Executor,
	input models.CreateDbCaseFileInput,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CASE_FILES).
			Columns(
				"id",
				"case_id",
				"bucket_name",
				"file_reference",
				"file_name",
				"content_type",
				"size_bytes",
			).
			Values(
				input.Id,
				input.CaseId,
				input.BucketName,
				input.FileReference,
				input.FileName,
				input.ContentType,
				input.SizeBytes,
			),
	)
}

func (repo AmanaDbRepository) GetCaseFileById(ctx context.Context, exec Executor, caseFileId string) (models.CaseFile, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseFileColumn...).
			From(dbmodels.TABLE_CASE_FILES).
			Where(squirrel.Eq{"id": caseFileId}),
		dbmodels.AdaptCaseFile,
	)
}

func (repo AmanaDbRepository) GetCaseFilesByCaseId(ctx context.Context, exec Executor, caseId string) ([]models.CaseFile, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseFileColumn...).
			From(dbmodels.TABLE_CASE_FILES).
			Where(squirrel.Eq{"case_id": caseId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptCaseFile,
	)
}

func (repo AmanaDbRepository) DeleteCaseFile(ctx context.Context, exec Executor, caseFileId string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_CASE_FILES).
			Where(squirrel.Eq{"id": caseFileId}),
	)
}

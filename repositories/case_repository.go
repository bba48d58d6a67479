package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories/dbmodels"
)

func (repo AmanaDbRepository) GetCaseById(ctx context.Context, exec Executor, caseId string) (models.Case, error) {
	return SqlToModel(
		ctx,
		exec,
		selectCases().Where(squirrel.Eq{"id": caseId}),
		dbmodels.AdaptCase,
	)
}

func (repo AmanaDbRepository) ListCases(
	ctx context.Context,
	exec Executor,
	filters models.CaseFilters,
	pagination models.PaginationAndSorting,
) ([]models.Case, error) {
	query := selectCases().
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy(fmt.Sprintf("%s %s, id %s", pagination.Sorting, pagination.Order, pagination.Order)).
		Limit(uint64(pagination.Limit))

	if len(filters.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": filters.Statuses})
	}
	if filters.Category != "" {
		query = query.Where(squirrel.Eq{"category": filters.Category})
	}
	if filters.Name != "" {
		query = query.Where("title ILIKE ?", "%"+filters.Name+"%")
	}
	if !filters.StartDate.IsZero() {
		query = query.Where(squirrel.GtOrEq{"created_at": filters.StartDate})
	}
	if !filters.EndDate.IsZero() {
		query = query.Where(squirrel.LtOrEq{"created_at": filters.EndDate})
	}
	if pagination.OffsetId != "" {
		comparator := "<"
		if pagination.Order == models.SortingOrderAsc {
			comparator = ">"
		}
		query = query.Where(
			fmt.Sprintf("(created_at, id) %s (SELECT created_at, id FROM %s WHERE id = ?)",
				comparator, dbmodels.TABLE_CASES),
			pagination.OffsetId,
		)
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCase)
}

func selectCases() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectCaseColumn...).
		From(dbmodels.TABLE_CASES)
}

func (repo AmanaDbRepository) CreateCase(
	ctx context.Context,
	exec Executor,
	attributes models.CreateCaseAttributes,
	newCaseId string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CASES).
			Columns(
				"id",
				"title",
				"description",
				"category",
				"status",
				"target_amount",
				"currency",
				"beneficiary_name",
				"beneficiary_city",
				"beneficiary_family_size",
				"source_language",
				"created_by",
			).
			Values(
				newCaseId,
				attributes.Title,
				attributes.Description,
				attributes.Category,
				models.CaseDraft,
				attributes.TargetAmount,
				attributes.Currency,
				attributes.Beneficiary.Name,
				attributes.Beneficiary.City,
				attributes.Beneficiary.FamilySize,
				attributes.SourceLanguage,
				attributes.CreatedBy,
			),
	)
}

func (repo AmanaDbRepository) UpdateCase(
	ctx context.Context,
	exec Executor,
	attributes models.UpdateCaseAttributes,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CASES).
		Where(squirrel.Eq{"id": attributes.Id}).
		Set("updated_at", squirrel.Expr("NOW()"))

	if attributes.Title != nil {
		query = query.Set("title", *attributes.Title)
	}
	if attributes.Description != nil {
		query = query.Set("description", *attributes.Description)
	}
	if attributes.Category != nil {
		query = query.Set("category", *attributes.Category)
	}
	if attributes.TargetAmount != nil {
		query = query.Set("target_amount", *attributes.TargetAmount)
	}
	if attributes.Status != "" {
		query = query.Set("status", attributes.Status)
	}
	if attributes.Beneficiary != nil {
		query = query.
			Set("beneficiary_name", attributes.Beneficiary.Name).
			Set("beneficiary_city", attributes.Beneficiary.City).
			Set("beneficiary_family_size", attributes.Beneficiary.FamilySize)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo AmanaDbRepository) UpdateCaseStatus(
	ctx context.Context,
	exec Executor,
	caseId string,
	status models.CaseStatus,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CASES).
			Set("status", status).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": caseId}),
	)
}

// AddToCaseCollectedAmount increments the running total of approved
// contributions. The delta is applied server-side so concurrent reviews
// never lose an update.
func (repo AmanaDbRepository) AddToCaseCollectedAmount(
	ctx context.Context,
	exec Executor,
	caseId string,
	delta int64,
) (models.Case, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CASES).
			Set("collected_amount", squirrel.Expr("collected_amount + ?", delta)).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": caseId}).
			Suffix("RETURNING *"),
		dbmodels.AdaptCase,
	)
}

func (repo AmanaDbRepository) SetCaseTranslationsPending(
	ctx context.Context,
	exec Executor,
	caseId string,
	pending bool,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CASES).
			Set("translations_pending", pending).
			Where(squirrel.Eq{"id": caseId}),
	)
}

func (repo AmanaDbRepository) SoftDeleteCase(ctx context.Context, exec Executor, caseId string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CASES).
			Set("deleted_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": caseId}),
	)
}

func (repo AmanaDbRepository) ListCaseTranslations(
	ctx context.Context,
	exec Executor,
	caseId string,
) ([]models.CaseTranslation, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseTranslationColumn...).
			From(dbmodels.TABLE_CASE_TRANSLATIONS).
			Where(squirrel.Eq{"case_id": caseId}).
			OrderBy("language"),
		dbmodels.AdaptCaseTranslation,
	)
}

func (repo AmanaDbRepository) UpsertCaseTranslation(
	ctx context.Context,
	exec Executor,
	caseId string,
	translation models.CaseTranslation,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CASE_TRANSLATIONS).
			Columns("id", "case_id", "language", "title", "description").
			Values(uuid.NewString(), caseId, translation.Language, translation.Title, translation.Description).
			Suffix("ON CONFLICT (case_id, language) DO UPDATE SET "+
				"title = EXCLUDED.title, "+
				"description = EXCLUDED.description"),
	)
}

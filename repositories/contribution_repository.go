package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories/dbmodels"
)

func (repo AmanaDbRepository) GetContributionById(
	ctx context.Context,
	exec Executor,
	contributionId string,
) (models.Contribution, error) {
	return SqlToModel(
		ctx,
		exec,
		selectContributions().Where(squirrel.Eq{"id": contributionId}),
		dbmodels.AdaptContribution,
	)
}

func (repo AmanaDbRepository) ListContributions(
	ctx context.Context,
	exec Executor,
	filters models.ContributionFilters,
	pagination models.PaginationAndSorting,
) ([]models.Contribution, error) {
	query := selectContributions().
		OrderBy(fmt.Sprintf("%s %s, id %s", pagination.Sorting, pagination.Order, pagination.Order)).
		Limit(uint64(pagination.Limit))

	if filters.CaseId != "" {
		query = query.Where(squirrel.Eq{"case_id": filters.CaseId})
	}
	if filters.ContributorId != "" {
		query = query.Where(squirrel.Eq{"contributor_id": filters.ContributorId})
	}
	if filters.Status != "" {
		query = query.Where(squirrel.Eq{"status": filters.Status})
	}
	if pagination.OffsetId != "" {
		comparator := "<"
		if pagination.Order == models.SortingOrderAsc {
			comparator = ">"
		}
		query = query.Where(
			fmt.Sprintf("(created_at, id) %s (SELECT created_at, id FROM %s WHERE id = ?)",
				comparator, dbmodels.TABLE_CONTRIBUTIONS),
			pagination.OffsetId,
		)
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptContribution)
}

func selectContributions() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectContributionColumn...).
		From(dbmodels.TABLE_CONTRIBUTIONS)
}

func (repo AmanaDbRepository) CreateContribution(
	ctx context.Context,
	exec Executor,
	attributes models.CreateContributionAttributes,
	newContributionId string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CONTRIBUTIONS).
			Columns(
				"id",
				"case_id",
				"contributor_id",
				"amount",
				"currency",
				"status",
				"message",
			).
			Values(
				newContributionId,
				attributes.CaseId,
				attributes.ContributorId,
				attributes.Amount,
				attributes.Currency,
				models.ContributionPending,
				attributes.Message,
			),
	)
}

// ReviewContribution flips a pending contribution to its reviewed status.
// The status guard in the WHERE clause makes a double review a no-op at the
// SQL level; callers detect it through the returned row.
func (repo AmanaDbRepository) ReviewContribution(
	ctx context.Context,
	exec Executor,
	contributionId string,
	status models.ContributionStatus,
	reviewerId models.UserId,
	reviewNote string,
) (*models.Contribution, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CONTRIBUTIONS).
			Set("status", status).
			Set("reviewer_id", reviewerId).
			Set("review_note", reviewNote).
			Set("reviewed_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": contributionId, "status": models.ContributionPending}).
			Suffix("RETURNING *"),
		dbmodels.AdaptContribution,
	)
}

func (repo AmanaDbRepository) CountContributionsByStatus(
	ctx context.Context,
	exec Executor,
	caseId string,
	status models.ContributionStatus,
) (int, error) {
	return SqlToRowCount(
		ctx,
		exec,
		NewQueryBuilder().
			Select("COUNT(*)").
			From(dbmodels.TABLE_CONTRIBUTIONS).
			Where(squirrel.Eq{"case_id": caseId, "status": status}),
	)
}

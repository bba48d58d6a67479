package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
)

type ContributionRepository struct {
	mock.Mock
}

func (r *ContributionRepository) GetContributionById(ctx context.Context, exec repositories.Executor,
	contributionId string,
) (models.Contribution, error) {
	args := r.Called(ctx, exec, contributionId)
	return args.Get(0).(models.Contribution), args.Error(1)
}

func (r *ContributionRepository) ListContributions(ctx context.Context, exec repositories.Executor,
	filters models.ContributionFilters, pagination models.PaginationAndSorting,
) ([]models.Contribution, error) {
	args := r.Called(ctx, exec, filters, pagination)
	return args.Get(0).([]models.Contribution), args.Error(1)
}

func (r *ContributionRepository) CreateContribution(ctx context.Context, exec repositories.Executor,
	attributes models.CreateContributionAttributes, newContributionId string,
) error {
	args := r.Called(ctx, exec, attributes, newContributionId)
	return args.Error(0)
}

func (r *ContributionRepository) ReviewContribution(ctx context.Context, exec repositories.Executor,
	contributionId string, status models.ContributionStatus, reviewerId models.UserId, reviewNote string,
) (*models.Contribution, error) {
	args := r.Called(ctx, exec, contributionId, status, reviewerId, reviewNote)
	return args.Get(0).(*models.Contribution), args.Error(1)
}

func (r *ContributionRepository) GetCaseById(ctx context.Context, exec repositories.Executor,
	caseId string,
) (models.Case, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *ContributionRepository) AddToCaseCollectedAmount(ctx context.Context, exec repositories.Executor,
	caseId string, delta int64,
) (models.Case, error) {
	args := r.Called(ctx, exec, caseId, delta)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *ContributionRepository) UpdateCaseStatus(ctx context.Context, exec repositories.Executor,
	caseId string, status models.CaseStatus,
) error {
	args := r.Called(ctx, exec, caseId, status)
	return args.Error(0)
}

func (r *ContributionRepository) CreateCaseEvent(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseEventAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

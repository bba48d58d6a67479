package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
)

type CaseRepository struct {
	mock.Mock
}

func (r *CaseRepository) GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseRepository) ListCases(ctx context.Context, exec repositories.Executor,
	filters models.CaseFilters, pagination models.PaginationAndSorting,
) ([]models.Case, error) {
	args := r.Called(ctx, exec, filters, pagination)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseRepository) CreateCase(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseAttributes, newCaseId string,
) error {
	args := r.Called(ctx, exec, attributes, newCaseId)
	return args.Error(0)
}

func (r *CaseRepository) UpdateCase(ctx context.Context, exec repositories.Executor,
	attributes models.UpdateCaseAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *CaseRepository) UpdateCaseStatus(ctx context.Context, exec repositories.Executor,
	caseId string, status models.CaseStatus,
) error {
	args := r.Called(ctx, exec, caseId, status)
	return args.Error(0)
}

func (r *CaseRepository) SoftDeleteCase(ctx context.Context, exec repositories.Executor, caseId string) error {
	args := r.Called(ctx, exec, caseId)
	return args.Error(0)
}

func (r *CaseRepository) SetCaseTranslationsPending(ctx context.Context, exec repositories.Executor,
	caseId string, pending bool,
) error {
	args := r.Called(ctx, exec, caseId, pending)
	return args.Error(0)
}

func (r *CaseRepository) ListCaseTranslations(ctx context.Context, exec repositories.Executor,
	caseId string,
) ([]models.CaseTranslation, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.CaseTranslation), args.Error(1)
}

func (r *CaseRepository) UpsertCaseTranslation(ctx context.Context, exec repositories.Executor,
	caseId string, translation models.CaseTranslation,
) error {
	args := r.Called(ctx, exec, caseId, translation)
	return args.Error(0)
}

func (r *CaseRepository) CreateCaseEvent(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseEventAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *CaseRepository) ListCaseEvents(ctx context.Context, exec repositories.Executor,
	caseId string,
) ([]models.CaseEvent, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.CaseEvent), args.Error(1)
}

func (r *CaseRepository) GetCaseFilesByCaseId(ctx context.Context, exec repositories.Executor,
	caseId string,
) ([]models.CaseFile, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.CaseFile), args.Error(1)
}

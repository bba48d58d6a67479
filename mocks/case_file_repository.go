package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
)

type CaseFileRepository struct {
	mock.Mock
}

func (r *CaseFileRepository) GetCaseById(ctx context.Context, exec repositories.Executor,
	caseId string,
) (models.Case, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseFileRepository) CreateCaseFile(ctx context.Context, exec repositories.Executor,
	input models.CreateDbCaseFileInput,
) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *CaseFileRepository) GetCaseFileById(ctx context.Context, exec repositories.Executor,
	caseFileId string,
) (models.CaseFile, error) {
	args := r.Called(ctx, exec, caseFileId)
	return args.Get(0).(models.CaseFile), args.Error(1)
}

func (r *CaseFileRepository) GetCaseFilesByCaseId(ctx context.Context, exec repositories.Executor,
	caseId string,
) ([]models.CaseFile, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.CaseFile), args.Error(1)
}

func (r *CaseFileRepository) DeleteCaseFile(ctx context.Context, exec repositories.Executor, caseFileId string) error {
	args := r.Called(ctx, exec, caseFileId)
	return args.Error(0)
}

func (r *CaseFileRepository) CreateCaseEvent(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseEventAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

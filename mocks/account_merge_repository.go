package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
)

type AccountMergeRepository struct {
	mock.Mock
}

func (r *AccountMergeRepository) UserById(ctx context.Context, exec repositories.Executor,
	userId string,
) (models.User, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *AccountMergeRepository) SoftDeleteUser(ctx context.Context, exec repositories.Executor,
	userId models.UserId,
) error {
	args := r.Called(ctx, exec, userId)
	return args.Error(0)
}

func (r *AccountMergeRepository) CountRowsReferencingUser(ctx context.Context, exec repositories.Executor,
	userId models.UserId,
) (map[string]int, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).(map[string]int), args.Error(1)
}

func (r *AccountMergeRepository) ReassignUserRows(ctx context.Context, exec repositories.Executor,
	mergeTable models.MergeTable, sourceUserId, targetUserId models.UserId,
) ([]string, error) {
	args := r.Called(ctx, exec, mergeTable, sourceUserId, targetUserId)
	return args.Get(0).([]string), args.Error(1)
}

func (r *AccountMergeRepository) CreateAccountMerge(ctx context.Context, exec repositories.Executor,
	merge models.AccountMerge,
) error {
	args := r.Called(ctx, exec, merge)
	return args.Error(0)
}

func (r *AccountMergeRepository) GetAccountMergeById(ctx context.Context, exec repositories.Executor,
	mergeId string,
) (models.AccountMerge, error) {
	args := r.Called(ctx, exec, mergeId)
	return args.Get(0).(models.AccountMerge), args.Error(1)
}

func (r *AccountMergeRepository) ListAccountMerges(ctx context.Context, exec repositories.Executor) ([]models.AccountMerge, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.AccountMerge), args.Error(1)
}

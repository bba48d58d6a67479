package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/usecases/executor_factory"
	"github.com/amanahq/amana-backend/usecases/security"
)

type AccountMergeUseCaseRepository interface {
	UserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error)
	SoftDeleteUser(ctx context.Context, exec repositories.Executor, userId models.UserId) error
	CountRowsReferencingUser(ctx context.Context, exec repositories.Executor,
		userId models.UserId) (map[string]int, error)
	ReassignUserRows(ctx context.Context, exec repositories.Executor, mergeTable models.MergeTable,
		sourceUserId, targetUserId models.UserId) ([]string, error)
	CreateAccountMerge(ctx context.Context, exec repositories.Executor, merge models.AccountMerge) error
	GetAccountMergeById(ctx context.Context, exec repositories.Executor, mergeId string) (models.AccountMerge, error)
	ListAccountMerges(ctx context.Context, exec repositories.Executor) ([]models.AccountMerge, error)
}

type AccountMergeUseCase struct {
	enforceSecurity    security.EnforceSecurityUser
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         AccountMergeUseCaseRepository
}

func (usecase *AccountMergeUseCase) validateMergePair(source, target models.User) error {
	if source.UserId == target.UserId {
		return models.ErrMergeSameUser
	}
	if source.IsDeleted() || target.IsDeleted() {
		return models.ErrMergeUserDeleted
	}
	return nil
}

// PreviewMerge reports, per table, how many rows would be reassigned from the
// source user to the target user.
func (usecase *AccountMergeUseCase) PreviewMerge(
	ctx context.Context,
	sourceUserId, targetUserId string,
) (models.AccountMergePreview, error) {
	if err := usecase.enforceSecurity.MergeAccounts(); err != nil {
		return models.AccountMergePreview{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	source, err := usecase.repository.UserById(ctx, exec, sourceUserId)
	if err != nil {
		return models.AccountMergePreview{}, err
	}
	target, err := usecase.repository.UserById(ctx, exec, targetUserId)
	if err != nil {
		return models.AccountMergePreview{}, err
	}
	if err := usecase.validateMergePair(source, target); err != nil {
		return models.AccountMergePreview{}, err
	}

	rowCounts, err := usecase.repository.CountRowsReferencingUser(ctx, exec, source.UserId)
	if err != nil {
		return models.AccountMergePreview{}, err
	}

	return models.AccountMergePreview{
		SourceUser: source,
		TargetUser: target,
		RowCounts:  rowCounts,
	}, nil
}

// ExecuteMerge reassigns every row referencing the source user to the target
// user, writes an audit row holding the reassigned row ids, and optionally
// soft-deletes the source. Everything runs in one transaction.
func (usecase *AccountMergeUseCase) ExecuteMerge(
	ctx context.Context,
	attributes models.ExecuteAccountMergeAttributes,
) (models.AccountMerge, error) {
	if err := usecase.enforceSecurity.MergeAccounts(); err != nil {
		return models.AccountMerge{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.AccountMerge, error) {
			source, err := usecase.repository.UserById(ctx, tx, string(attributes.SourceUserId))
			if err != nil {
				return models.AccountMerge{}, err
			}
			target, err := usecase.repository.UserById(ctx, tx, string(attributes.TargetUserId))
			if err != nil {
				return models.AccountMerge{}, err
			}
			if err := usecase.validateMergePair(source, target); err != nil {
				return models.AccountMerge{}, err
			}

			reassignedRows := make(map[string][]string, len(models.MergeTables))
			for _, mergeTable := range models.MergeTables {
				rowIds, err := usecase.repository.ReassignUserRows(ctx, tx,
					mergeTable, source.UserId, target.UserId)
				if err != nil {
					return models.AccountMerge{}, errors.Wrapf(err,
						"failed to reassign rows of %s", mergeTable.Table)
				}
				if len(rowIds) > 0 {
					reassignedRows[mergeTable.Table] = rowIds
				}
			}

			merge := models.AccountMerge{
				Id:             uuid.NewString(),
				SourceUserId:   source.UserId,
				TargetUserId:   target.UserId,
				ExecutedBy:     attributes.ExecutedBy,
				DeleteSource:   attributes.DeleteSource,
				ReassignedRows: reassignedRows,
			}
			if err := usecase.repository.CreateAccountMerge(ctx, tx, merge); err != nil {
				return models.AccountMerge{}, err
			}

			if attributes.DeleteSource {
				if err := usecase.repository.SoftDeleteUser(ctx, tx, source.UserId); err != nil {
					return models.AccountMerge{}, err
				}
			}

			return usecase.repository.GetAccountMergeById(ctx, tx, merge.Id)
		})
}

func (usecase *AccountMergeUseCase) ListMerges(ctx context.Context) ([]models.AccountMerge, error) {
	if err := usecase.enforceSecurity.MergeAccounts(); err != nil {
		return nil, err
	}
	return usecase.repository.ListAccountMerges(ctx, usecase.executorFactory.NewExecutor())
}

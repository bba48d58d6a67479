package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/amanahq/amana-backend/mocks"
	"github.com/amanahq/amana-backend/models"
)

type AccountMergeUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.AccountMergeRepository
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	transaction        *mocks.Transaction
	executor           *mocks.Executor
	enforceSecurity    *mocks.EnforceSecurity

	sourceUser models.User
	targetUser models.User
	ctx        context.Context
}

func (suite *AccountMergeUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.AccountMergeRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.executor = new(mocks.Executor)
	suite.enforceSecurity = new(mocks.EnforceSecurity)

	suite.sourceUser = models.User{UserId: "source_id", Email: "old@amana.org"}
	suite.targetUser = models.User{UserId: "target_id", Email: "new@amana.org"}
	suite.ctx = context.Background()
}

func (suite *AccountMergeUsecaseTestSuite) makeUsecase() *AccountMergeUseCase {
	return &AccountMergeUseCase{
		enforceSecurity:    suite.enforceSecurity,
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
	}
}

func (suite *AccountMergeUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.transactionFactory.AssertExpectations(t)
	suite.enforceSecurity.AssertExpectations(t)
}

func (suite *AccountMergeUsecaseTestSuite) Test_PreviewMerge_nominal() {
	rowCounts := map[string]int{
		models.TableContributions: 3,
		models.TableCases:         1,
	}

	suite.enforceSecurity.On("MergeAccounts").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("UserById", suite.ctx, suite.executor, "source_id").
		Return(suite.sourceUser, nil)
	suite.repository.On("UserById", suite.ctx, suite.executor, "target_id").
		Return(suite.targetUser, nil)
	suite.repository.On("CountRowsReferencingUser", suite.ctx, suite.executor,
		models.UserId("source_id")).
		Return(rowCounts, nil)

	preview, err := suite.makeUsecase().PreviewMerge(suite.ctx, "source_id", "target_id")

	suite.NoError(err)
	suite.Equal(rowCounts, preview.RowCounts)
	suite.Equal(4, preview.TotalRows())
	suite.AssertExpectations()
}

func (suite *AccountMergeUsecaseTestSuite) Test_PreviewMerge_sameUser() {
	suite.enforceSecurity.On("MergeAccounts").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("UserById", suite.ctx, suite.executor, "source_id").
		Return(suite.sourceUser, nil)

	_, err := suite.makeUsecase().PreviewMerge(suite.ctx, "source_id", "source_id")

	suite.ErrorIs(err, models.ErrMergeSameUser)
	suite.AssertExpectations()
}

func (suite *AccountMergeUsecaseTestSuite) Test_PreviewMerge_deletedUser() {
	deletedAt := time.Now()
	deletedSource := suite.sourceUser
	deletedSource.DeletedAt = &deletedAt

	suite.enforceSecurity.On("MergeAccounts").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("UserById", suite.ctx, suite.executor, "source_id").
		Return(deletedSource, nil)
	suite.repository.On("UserById", suite.ctx, suite.executor, "target_id").
		Return(suite.targetUser, nil)

	_, err := suite.makeUsecase().PreviewMerge(suite.ctx, "source_id", "target_id")

	suite.ErrorIs(err, models.ErrMergeUserDeleted)
	suite.AssertExpectations()
}

func (suite *AccountMergeUsecaseTestSuite) Test_ExecuteMerge_nominal() {
	suite.enforceSecurity.On("MergeAccounts").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("UserById", suite.ctx, suite.transaction, "source_id").
		Return(suite.sourceUser, nil)
	suite.repository.On("UserById", suite.ctx, suite.transaction, "target_id").
		Return(suite.targetUser, nil)

	for _, mergeTable := range models.MergeTables {
		rowIds := []string{}
		if mergeTable.Table == models.TableContributions {
			rowIds = []string{"contribution_1", "contribution_2"}
		}
		suite.repository.On("ReassignUserRows", suite.ctx, suite.transaction,
			mergeTable, models.UserId("source_id"), models.UserId("target_id")).
			Return(rowIds, nil)
	}

	executed := models.AccountMerge{
		Id:           "merge_id",
		SourceUserId: "source_id",
		TargetUserId: "target_id",
		ExecutedBy:   "admin_id",
		DeleteSource: true,
		ReassignedRows: map[string][]string{
			models.TableContributions: {"contribution_1", "contribution_2"},
		},
	}
	suite.repository.On("CreateAccountMerge", suite.ctx, suite.transaction,
		mock.MatchedBy(func(merge models.AccountMerge) bool {
			return merge.SourceUserId == "source_id" &&
				merge.TargetUserId == "target_id" &&
				merge.DeleteSource &&
				len(merge.ReassignedRows[models.TableContributions]) == 2
		})).
		Return(nil)
	suite.repository.On("SoftDeleteUser", suite.ctx, suite.transaction, models.UserId("source_id")).
		Return(nil)
	suite.repository.On("GetAccountMergeById", suite.ctx, suite.transaction, mock.Anything).
		Return(executed, nil)

	merge, err := suite.makeUsecase().ExecuteMerge(suite.ctx, models.ExecuteAccountMergeAttributes{
		SourceUserId: "source_id",
		TargetUserId: "target_id",
		ExecutedBy:   "admin_id",
		DeleteSource: true,
	})

	suite.NoError(err)
	suite.Equal(executed, merge)
	suite.AssertExpectations()
}

func (suite *AccountMergeUsecaseTestSuite) Test_ExecuteMerge_keepsSourceByDefault() {
	suite.enforceSecurity.On("MergeAccounts").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("UserById", suite.ctx, suite.transaction, "source_id").
		Return(suite.sourceUser, nil)
	suite.repository.On("UserById", suite.ctx, suite.transaction, "target_id").
		Return(suite.targetUser, nil)
	suite.repository.On("ReassignUserRows", suite.ctx, suite.transaction,
		mock.Anything, models.UserId("source_id"), models.UserId("target_id")).
		Return([]string{}, nil)
	suite.repository.On("CreateAccountMerge", suite.ctx, suite.transaction, mock.Anything).
		Return(nil)
	suite.repository.On("GetAccountMergeById", suite.ctx, suite.transaction, mock.Anything).
		Return(models.AccountMerge{Id: "merge_id"}, nil)

	_, err := suite.makeUsecase().ExecuteMerge(suite.ctx, models.ExecuteAccountMergeAttributes{
		SourceUserId: "source_id",
		TargetUserId: "target_id",
		ExecutedBy:   "admin_id",
	})

	suite.NoError(err)
	suite.repository.AssertNotCalled(suite.T(), "SoftDeleteUser",
		mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func TestAccountMergeUsecase(t *testing.T) {
	suite.Run(t, new(AccountMergeUsecaseTestSuite))
}

package usecases

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/amanahq/amana-backend/mocks"
	"github.com/amanahq/amana-backend/models"
)

type UserUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.UserRepository
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	transaction        *mocks.Transaction
	executor           *mocks.Executor
	enforceSecurity    *mocks.EnforceSecurity

	user models.User
	ctx  context.Context
}

func (suite *UserUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.UserRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.executor = new(mocks.Executor)
	suite.enforceSecurity = new(mocks.EnforceSecurity)

	suite.user = models.User{
		UserId: "user_id",
		Email:  "user@amana.org",
		Role:   models.CASE_MANAGER,
	}
	suite.ctx = context.Background()
}

func (suite *UserUsecaseTestSuite) makeUsecase() *UserUseCase {
	return &UserUseCase{
		enforceSecurity:    suite.enforceSecurity,
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
	}
}

func (suite *UserUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.transactionFactory.AssertExpectations(t)
	suite.enforceSecurity.AssertExpectations(t)
}

func (suite *UserUsecaseTestSuite) Test_CreateUser_normalizesEmail() {
	expected := models.CreateUser{
		Email: "new.user@amana.org",
		Role:  models.CASE_MANAGER,
	}

	suite.enforceSecurity.On("CreateUser", mock.Anything).Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("CreateUser", suite.ctx, suite.transaction, expected, mock.Anything).
		Return(nil)
	suite.repository.On("UserById", suite.ctx, suite.transaction, mock.Anything).
		Return(suite.user, nil)

	_, err := suite.makeUsecase().CreateUser(suite.ctx, models.CreateUser{
		Email: "  New.User@Amana.org ",
		Role:  models.CASE_MANAGER,
	})

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *UserUsecaseTestSuite) Test_CreateUser_requiresRole() {
	suite.enforceSecurity.On("CreateUser", mock.Anything).Return(nil)

	_, err := suite.makeUsecase().CreateUser(suite.ctx, models.CreateUser{
		Email: "new.user@amana.org",
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *UserUsecaseTestSuite) Test_CreateUser_duplicateEmail() {
	suite.enforceSecurity.On("CreateUser", mock.Anything).Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("CreateUser", suite.ctx, suite.transaction, mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := suite.makeUsecase().CreateUser(suite.ctx, models.CreateUser{
		Email: "user@amana.org",
		Role:  models.CASE_MANAGER,
	})

	suite.ErrorIs(err, models.ConflictError)
	suite.AssertExpectations()
}

func (suite *UserUsecaseTestSuite) Test_DeleteUser_nominal() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("UserById", suite.ctx, suite.transaction, "user_id").
		Return(suite.user, nil)
	suite.enforceSecurity.On("DeleteUser", suite.user).Return(nil)
	suite.repository.On("SoftDeleteUser", suite.ctx, suite.transaction, models.UserId("user_id")).
		Return(nil)

	err := suite.makeUsecase().DeleteUser(suite.ctx, "user_id")

	suite.NoError(err)
	suite.AssertExpectations()
}

func TestUserUsecase(t *testing.T) {
	suite.Run(t, new(UserUsecaseTestSuite))
}

func TestSeedUsecase(t *testing.T) {
	ctx := context.Background()
	adminEmail := "admin@amana.org"

	t.Run("creates the admin on a fresh database", func(t *testing.T) {
		executor := new(mocks.Executor)
		executorFactory := new(mocks.ExecutorFactory)
		executorFactory.On("NewExecutor").Return(executor)

		transaction := new(mocks.Transaction)
		transactionFactory := &mocks.TransactionFactory{TxMock: transaction}
		transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)

		repository := new(mocks.UserRepository)
		repository.On("UserByEmail", ctx, executor, adminEmail).
			Return((*models.User)(nil), nil)
		repository.On("CreateUser", ctx, transaction, models.CreateUser{
			Email: adminEmail,
			Role:  models.ADMIN,
		}, mock.Anything).Return(nil)

		usecase := SeedUseCase{
			executorFactory:    executorFactory,
			transactionFactory: transactionFactory,
			repository:         repository,
		}

		err := usecase.SeedAdminUser(ctx, adminEmail)
		assert.NoError(t, err)
		repository.AssertExpectations(t)
	})

	t.Run("no-op when the admin already exists", func(t *testing.T) {
		executor := new(mocks.Executor)
		executorFactory := new(mocks.ExecutorFactory)
		executorFactory.On("NewExecutor").Return(executor)

		repository := new(mocks.UserRepository)
		repository.On("UserByEmail", ctx, executor, adminEmail).
			Return(&models.User{UserId: "admin_id", Email: adminEmail}, nil)

		usecase := SeedUseCase{
			executorFactory: executorFactory,
			repository:      repository,
		}

		err := usecase.SeedAdminUser(ctx, adminEmail)
		assert.NoError(t, err)
		repository.AssertNotCalled(t, "CreateUser",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

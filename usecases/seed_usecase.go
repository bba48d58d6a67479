package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/usecases/executor_factory"
	"github.com/amanahq/amana-backend/utils"
)

type SeedUseCaseRepository interface {
	UserByEmail(ctx context.Context, exec repositories.Executor, email string) (*models.User, error)
	CreateUser(ctx context.Context, exec repositories.Executor,
		createUser models.CreateUser, newUserId string) error
}

type SeedUseCase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         SeedUseCaseRepository
}

// SeedAdminUser creates the first admin account so a fresh deployment can be
// logged into. It is a no-op when a user with that email already exists.
func (usecase *SeedUseCase) SeedAdminUser(ctx context.Context, adminEmail string) error {
	exec := usecase.executorFactory.NewExecutor()

	existing, err := usecase.repository.UserByEmail(ctx, exec, adminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	newUserId := uuid.NewString()
	err = usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		return usecase.repository.CreateUser(ctx, tx, models.CreateUser{
			Email: adminEmail,
			Role:  models.ADMIN,
		}, newUserId)
	})
	if repositories.IsUniqueViolationError(err) {
		// concurrent seed, the admin exists
		return nil
	}
	if err != nil {
		return err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "created admin user", "user_id", newUserId)
	return nil
}

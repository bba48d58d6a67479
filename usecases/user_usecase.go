package usecases

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/usecases/executor_factory"
	"github.com/amanahq/amana-backend/usecases/security"
)

type UserUseCaseRepository interface {
	UserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error)
	UserByEmail(ctx context.Context, exec repositories.Executor, email string) (*models.User, error)
	ListUsers(ctx context.Context, exec repositories.Executor) ([]models.User, error)
	CreateUser(ctx context.Context, exec repositories.Executor,
		createUser models.CreateUser, newUserId string) error
	UpdateUser(ctx context.Context, exec repositories.Executor, updateUser models.UpdateUser) error
	SoftDeleteUser(ctx context.Context, exec repositories.Executor, userId models.UserId) error
}

type UserUseCase struct {
	enforceSecurity    security.EnforceSecurityUser
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         UserUseCaseRepository
}

func (usecase *UserUseCase) GetUser(ctx context.Context, userId string) (models.User, error) {
	user, err := usecase.repository.UserById(ctx, usecase.executorFactory.NewExecutor(), userId)
	if err != nil {
		return models.User{}, err
	}
	if err := usecase.enforceSecurity.ReadUser(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (usecase *UserUseCase) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := usecase.enforceSecurity.ListUsers(); err != nil {
		return nil, err
	}
	return usecase.repository.ListUsers(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *UserUseCase) CreateUser(ctx context.Context, createUser models.CreateUser) (models.User, error) {
	if err := usecase.enforceSecurity.CreateUser(createUser); err != nil {
		return models.User{}, err
	}

	createUser.Email = strings.ToLower(strings.TrimSpace(createUser.Email))
	if createUser.Email == "" {
		return models.User{}, errors.Wrap(models.BadParameterError, "email is required")
	}
	if createUser.Role == models.NO_ROLE {
		return models.User{}, errors.Wrap(models.BadParameterError, "a role is required")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.User, error) {
			newUserId := uuid.NewString()
			if err := usecase.repository.CreateUser(ctx, tx, createUser, newUserId); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.User{}, errors.Wrapf(models.ConflictError,
						"a user with email %s already exists", createUser.Email)
				}
				return models.User{}, err
			}
			return usecase.repository.UserById(ctx, tx, newUserId)
		})
}

func (usecase *UserUseCase) UpdateUser(ctx context.Context, updateUser models.UpdateUser) (models.User, error) {
	if updateUser.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*updateUser.Email))
		updateUser.Email = &email
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.User, error) {
			target, err := usecase.repository.UserById(ctx, tx, updateUser.UserId)
			if err != nil {
				return models.User{}, err
			}
			if err := usecase.enforceSecurity.UpdateUser(target, updateUser); err != nil {
				return models.User{}, err
			}

			if err := usecase.repository.UpdateUser(ctx, tx, updateUser); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.User{}, errors.Wrap(models.ConflictError,
						"a user with this email already exists")
				}
				return models.User{}, err
			}
			return usecase.repository.UserById(ctx, tx, updateUser.UserId)
		})
}

func (usecase *UserUseCase) DeleteUser(ctx context.Context, userId string) error {
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		user, err := usecase.repository.UserById(ctx, tx, userId)
		if err != nil {
			return err
		}
		if err := usecase.enforceSecurity.DeleteUser(user); err != nil {
			return err
		}
		return usecase.repository.SoftDeleteUser(ctx, tx, user.UserId)
	})
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
)

type UserRepository struct {
	mock.Mock
}

func (r *UserRepository) UserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *UserRepository) UserByEmail(ctx context.Context, exec repositories.Executor, email string) (*models.User, error) {
	args := r.Called(ctx, exec, email)
	return args.Get(0).(*models.User), args.Error(1)
}

func (r *UserRepository) UserByFirebaseUid(ctx context.Context, exec repositories.Executor,
	firebaseUid string,
) (*models.User, error) {
	args := r.Called(ctx, exec, firebaseUid)
	return args.Get(0).(*models.User), args.Error(1)
}

func (r *UserRepository) UpdateUserFirebaseUid(ctx context.Context, exec repositories.Executor,
	userId models.UserId, firebaseUid string,
) error {
	args := r.Called(ctx, exec, userId, firebaseUid)
	return args.Error(0)
}

func (r *UserRepository) ListUsers(ctx context.Context, exec repositories.Executor) ([]models.User, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.User), args.Error(1)
}

func (r *UserRepository) CreateUser(ctx context.Context, exec repositories.Executor,
	createUser models.CreateUser, newUserId string,
) error {
	args := r.Called(ctx, exec, createUser, newUserId)
	return args.Error(0)
}

func (r *UserRepository) UpdateUser(ctx context.Context, exec repositories.Executor,
	updateUser models.UpdateUser,
) error {
	args := r.Called(ctx, exec, updateUser)
	return args.Error(0)
}

func (r *UserRepository) SoftDeleteUser(ctx context.Context, exec repositories.Executor, userId models.UserId) error {
	args := r.Called(ctx, exec, userId)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
)

type SettingRepository struct {
	mock.Mock
}

func (r *SettingRepository) ListSettings(ctx context.Context, exec repositories.Executor) ([]models.Setting, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.Setting), args.Error(1)
}

func (r *SettingRepository) GetSettingByKey(ctx context.Context, exec repositories.Executor,
	key string,
) (*models.Setting, error) {
	args := r.Called(ctx, exec, key)
	return args.Get(0).(*models.Setting), args.Error(1)
}

func (r *SettingRepository) UpsertSetting(ctx context.Context, exec repositories.Executor,
	attributes models.UpsertSettingAttributes,
) (models.Setting, error) {
	args := r.Called(ctx, exec, attributes)
	return args.Get(0).(models.Setting), args.Error(1)
}

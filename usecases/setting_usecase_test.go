package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/amanahq/amana-backend/mocks"
	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/repositories/dbmodels"
	"github.com/amanahq/amana-backend/usecases/executor_factory"
)

type SettingUsecaseTestSuite struct {
	suite.Suite
	repository      *mocks.SettingRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor
	enforceSecurity *mocks.EnforceSecurity

	ctx context.Context
}

func (suite *SettingUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.SettingRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.enforceSecurity = new(mocks.EnforceSecurity)

	suite.ctx = context.Background()
}

func (suite *SettingUsecaseTestSuite) makeUsecase() *SettingUseCase {
	return NewSettingUseCase(
		suite.enforceSecurity,
		suite.executorFactory,
		suite.repository,
		NewSettingCache(),
	)
}

func (suite *SettingUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.enforceSecurity.AssertExpectations(t)
}

func (suite *SettingUsecaseTestSuite) Test_GetSetting_cachesTheRow() {
	setting := models.Setting{
		Key:       "default_currency",
		Value:     "EUR",
		ValueType: models.SettingValueString,
	}

	suite.enforceSecurity.On("ReadSetting").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor).Once()
	suite.repository.On("GetSettingByKey", suite.ctx, suite.executor, "default_currency").
		Return(&setting, nil).
		Once()

	usecase := suite.makeUsecase()

	first, err := usecase.GetSetting(suite.ctx, "default_currency")
	suite.NoError(err)
	suite.Equal(setting, first)

	// second read is served from the cache
	second, err := usecase.GetSetting(suite.ctx, "default_currency")
	suite.NoError(err)
	suite.Equal(setting, second)

	suite.AssertExpectations()
}

func (suite *SettingUsecaseTestSuite) Test_GetSetting_notFound() {
	suite.enforceSecurity.On("ReadSetting").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetSettingByKey", suite.ctx, suite.executor, "missing").
		Return((*models.Setting)(nil), nil)

	_, err := suite.makeUsecase().GetSetting(suite.ctx, "missing")

	suite.ErrorIs(err, models.NotFoundError)
	suite.AssertExpectations()
}

func (suite *SettingUsecaseTestSuite) Test_UpsertSetting_validatesValueType() {
	suite.enforceSecurity.On("WriteSetting").Return(nil)

	usecase := suite.makeUsecase()

	_, err := usecase.UpsertSetting(suite.ctx, models.UpsertSettingAttributes{
		Key:       "max_upload_size_mb",
		Value:     "not a number",
		ValueType: models.SettingValueInt,
	})
	suite.ErrorIs(err, models.BadParameterError)

	_, err = usecase.UpsertSetting(suite.ctx, models.UpsertSettingAttributes{
		Key:       "push_enabled",
		Value:     "maybe",
		ValueType: models.SettingValueBool,
	})
	suite.ErrorIs(err, models.BadParameterError)

	_, err = usecase.UpsertSetting(suite.ctx, models.UpsertSettingAttributes{
		Key:       "target_languages",
		Value:     "{not json",
		ValueType: models.SettingValueJson,
	})
	suite.ErrorIs(err, models.BadParameterError)

	suite.AssertExpectations()
}

func (suite *SettingUsecaseTestSuite) Test_UpsertSetting_invalidatesTheCache() {
	stored := models.Setting{
		Key:       "default_currency",
		Value:     "EUR",
		ValueType: models.SettingValueString,
	}
	updated := stored
	updated.Value = "TND"

	suite.enforceSecurity.On("ReadSetting").Return(nil)
	suite.enforceSecurity.On("WriteSetting").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetSettingByKey", suite.ctx, suite.executor, "default_currency").
		Return(&stored, nil).
		Once()
	suite.repository.On("UpsertSetting", suite.ctx, suite.executor, models.UpsertSettingAttributes{
		Key:       "default_currency",
		Value:     "TND",
		ValueType: models.SettingValueString,
	}).Return(updated, nil)
	suite.repository.On("GetSettingByKey", suite.ctx, suite.executor, "default_currency").
		Return(&updated, nil).
		Once()

	usecase := suite.makeUsecase()

	_, err := usecase.GetSetting(suite.ctx, "default_currency")
	suite.NoError(err)

	_, err = usecase.UpsertSetting(suite.ctx, models.UpsertSettingAttributes{
		Key:       "default_currency",
		Value:     "TND",
		ValueType: models.SettingValueString,
	})
	suite.NoError(err)

	setting, err := usecase.GetSetting(suite.ctx, "default_currency")
	suite.NoError(err)
	suite.Equal("TND", setting.Value)

	suite.AssertExpectations()
}

func (suite *SettingUsecaseTestSuite) Test_TypedAccessors_defaults() {
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetSettingByKey", suite.ctx, suite.executor, mock.Anything).
		Return((*models.Setting)(nil), nil)

	usecase := suite.makeUsecase()

	size, err := usecase.MaxUploadSizeMb(suite.ctx)
	suite.NoError(err)
	suite.Equal(10, size)

	enabled, err := usecase.PushEnabled(suite.ctx)
	suite.NoError(err)
	suite.True(enabled)

	currency, err := usecase.DefaultCurrency(suite.ctx)
	suite.NoError(err)
	suite.Equal("USD", currency)

	fileTypes, err := usecase.AllowedFileTypes(suite.ctx)
	suite.NoError(err)
	suite.Contains(fileTypes, "pdf")

	languages, err := usecase.TargetLanguages(suite.ctx)
	suite.NoError(err)
	suite.Nil(languages)

	suite.AssertExpectations()
}

func (suite *SettingUsecaseTestSuite) Test_TargetLanguages_legacyFormat() {
	setting := models.Setting{
		Key:       "target_languages",
		Value:     "en, fr ,ar",
		ValueType: models.SettingValueString,
	}

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetSettingByKey", suite.ctx, suite.executor, models.SettingTargetLanguages).
		Return(&setting, nil)

	languages, err := suite.makeUsecase().TargetLanguages(suite.ctx)

	suite.NoError(err)
	suite.Equal([]string{"en", "fr", "ar"}, languages)
	suite.AssertExpectations()
}

func TestSettingUsecase(t *testing.T) {
	suite.Run(t, new(SettingUsecaseTestSuite))
}

func TestGetSettingAgainstTheRealRepository(t *testing.T) {
	exec := executor_factory.NewExecutorFactoryStub()
	enforceSecurity := new(mocks.EnforceSecurity)
	enforceSecurity.On("ReadSetting").Return(nil)

	usecase := NewSettingUseCase(
		enforceSecurity,
		exec,
		repositories.NewAmanaDbRepository(),
		NewSettingCache(),
	)

	updatedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	exec.Mock.
		ExpectQuery(`SELECT key, value, value_type, description, updated_by, updated_at FROM settings WHERE key = \$1`).
		WithArgs("default_currency").
		WillReturnRows(
			pgxmock.NewRows(dbmodels.SelectSettingColumn).
				AddRow("default_currency", "TND", "string", "", pgtype.Text{}, updatedAt),
		)

	setting, err := usecase.GetSetting(context.Background(), "default_currency")

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Equal(t, "TND", setting.Value)
	assert.Equal(t, models.SettingValueString, setting.ValueType)
	assert.Nil(t, setting.UpdatedBy)
	enforceSecurity.AssertExpectations(t)
}

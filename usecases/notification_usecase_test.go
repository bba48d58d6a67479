package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/amanahq/amana-backend/mocks"
	"github.com/amanahq/amana-backend/models"
)

type NotificationUsecaseTestSuite struct {
	suite.Suite
	repository      *mocks.NotificationRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor
	enforceSecurity *mocks.EnforceSecurity
	pushSender      *mocks.PushSender
	settings        *mocks.SettingsReader

	notification models.Notification
	attributes   models.CreateNotificationAttributes
	ctx          context.Context
}

func (suite *NotificationUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.NotificationRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.pushSender = new(mocks.PushSender)
	suite.settings = new(mocks.SettingsReader)

	suite.attributes = models.CreateNotificationAttributes{
		UserId: "user_id",
		Kind:   models.NotificationContributionApproved,
		Title:  "Your donation was approved",
	}
	suite.notification = models.Notification{
		Id:     "notification_id",
		UserId: "user_id",
		Kind:   models.NotificationContributionApproved,
		Title:  "Your donation was approved",
	}
	suite.ctx = context.Background()
}

func (suite *NotificationUsecaseTestSuite) makeUsecase() *NotificationUseCase {
	return &NotificationUseCase{
		enforceSecurity: suite.enforceSecurity,
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
		pushSender:      suite.pushSender,
		settings:        suite.settings,
	}
}

func (suite *NotificationUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.enforceSecurity.AssertExpectations(t)
	suite.pushSender.AssertExpectations(t)
	suite.settings.AssertExpectations(t)
}

func (suite *NotificationUsecaseTestSuite) Test_NotifyUser_sendsPushAndPrunesInvalidTokens() {
	tokens := []models.DeviceToken{
		{Id: "t1", UserId: "user_id", Token: "token_1"},
		{Id: "t2", UserId: "user_id", Token: "token_2"},
	}

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("CreateNotification", suite.ctx, suite.executor, suite.attributes).
		Return(suite.notification, nil)
	suite.settings.On("PushEnabled", suite.ctx).Return(true, nil)
	suite.repository.On("ListDeviceTokensForUser", suite.ctx, suite.executor,
		models.UserId("user_id")).
		Return(tokens, nil)
	suite.pushSender.On("SendPush", suite.ctx, tokens, suite.notification).
		Return([]string{"token_2"}, nil)
	suite.repository.On("DeleteDeviceTokens", suite.ctx, suite.executor, []string{"token_2"}).
		Return(nil)

	suite.makeUsecase().NotifyUser(suite.ctx, suite.attributes)

	suite.AssertExpectations()
}

func (suite *NotificationUsecaseTestSuite) Test_NotifyUser_pushDisabled() {
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("CreateNotification", suite.ctx, suite.executor, suite.attributes).
		Return(suite.notification, nil)
	suite.settings.On("PushEnabled", suite.ctx).Return(false, nil)

	suite.makeUsecase().NotifyUser(suite.ctx, suite.attributes)

	suite.pushSender.AssertNotCalled(suite.T(), "SendPush",
		mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *NotificationUsecaseTestSuite) Test_NotifyUser_storageFailureSkipsPush() {
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("CreateNotification", suite.ctx, suite.executor, suite.attributes).
		Return(models.Notification{}, assert.AnError)

	suite.makeUsecase().NotifyUser(suite.ctx, suite.attributes)

	suite.pushSender.AssertNotCalled(suite.T(), "SendPush",
		mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *NotificationUsecaseTestSuite) Test_RegisterDeviceToken_validation() {
	suite.enforceSecurity.On("RegisterDeviceToken", models.UserId("user_id")).Return(nil)

	usecase := suite.makeUsecase()

	err := usecase.RegisterDeviceToken(suite.ctx, models.RegisterDeviceTokenAttributes{
		UserId:   "user_id",
		Platform: models.PlatformAndroid,
	})
	suite.ErrorIs(err, models.BadParameterError)

	err = usecase.RegisterDeviceToken(suite.ctx, models.RegisterDeviceTokenAttributes{
		UserId:   "user_id",
		Token:    "token",
		Platform: "blackberry",
	})
	suite.ErrorIs(err, models.BadParameterError)

	suite.AssertExpectations()
}

func (suite *NotificationUsecaseTestSuite) Test_RegisterDeviceToken_nominal() {
	attributes := models.RegisterDeviceTokenAttributes{
		UserId:   "user_id",
		Token:    "token",
		Platform: models.PlatformIos,
	}

	suite.enforceSecurity.On("RegisterDeviceToken", models.UserId("user_id")).Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("UpsertDeviceToken", suite.ctx, suite.executor, attributes).
		Return(nil)

	err := suite.makeUsecase().RegisterDeviceToken(suite.ctx, attributes)

	suite.NoError(err)
	suite.AssertExpectations()
}

func TestNotificationUsecase(t *testing.T) {
	suite.Run(t, new(NotificationUsecaseTestSuite))
}

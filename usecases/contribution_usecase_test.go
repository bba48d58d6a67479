package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/amanahq/amana-backend/mocks"
	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

type ContributionUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.ContributionRepository
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	transaction        *mocks.Transaction
	executor           *mocks.Executor
	enforceSecurity    *mocks.EnforceSecurity
	notifier           *mocks.Notifier

	activeCase          models.Case
	pendingContribution models.Contribution
	ctx                 context.Context
}

func (suite *ContributionUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.ContributionRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.executor = new(mocks.Executor)
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.notifier = new(mocks.Notifier)

	suite.activeCase = models.Case{
		Id:              "case_id",
		Status:          models.CaseActive,
		TargetAmount:    10000,
		CollectedAmount: 2000,
		Currency:        "EUR",
	}
	suite.pendingContribution = models.Contribution{
		Id:            "contribution_id",
		CaseId:        "case_id",
		ContributorId: "contributor_id",
		Amount:        500,
		Currency:      "EUR",
		Status:        models.ContributionPending,
	}
	suite.ctx = context.Background()
}

func (suite *ContributionUsecaseTestSuite) makeUsecase() *ContributionUseCase {
	return &ContributionUseCase{
		enforceSecurity:    suite.enforceSecurity,
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		notifier:           suite.notifier,
	}
}

func (suite *ContributionUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.transactionFactory.AssertExpectations(t)
	suite.enforceSecurity.AssertExpectations(t)
	suite.notifier.AssertExpectations(t)
}

func (suite *ContributionUsecaseTestSuite) Test_CreateContribution_nominal() {
	attributes := models.CreateContributionAttributes{
		CaseId:        "case_id",
		ContributorId: "contributor_id",
		Amount:        500,
		Currency:      "EUR",
	}

	suite.enforceSecurity.On("CreateContribution").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, "case_id").
		Return(suite.activeCase, nil)
	suite.repository.On("CreateContribution", suite.ctx, suite.transaction, attributes, mock.Anything).
		Return(nil)
	suite.repository.On("GetContributionById", suite.ctx, suite.transaction, mock.Anything).
		Return(suite.pendingContribution, nil)

	contribution, err := suite.makeUsecase().CreateContribution(suite.ctx, attributes)

	suite.NoError(err)
	suite.Equal(suite.pendingContribution, contribution)
	suite.AssertExpectations()
}

func (suite *ContributionUsecaseTestSuite) Test_CreateContribution_caseNotAccepting() {
	draftCase := suite.activeCase
	draftCase.Status = models.CaseDraft

	suite.enforceSecurity.On("CreateContribution").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, "case_id").
		Return(draftCase, nil)

	_, err := suite.makeUsecase().CreateContribution(suite.ctx, models.CreateContributionAttributes{
		CaseId:   "case_id",
		Amount:   500,
		Currency: "EUR",
	})

	suite.ErrorIs(err, models.ErrCaseNotAcceptingContributions)
	suite.AssertExpectations()
}

func (suite *ContributionUsecaseTestSuite) Test_CreateContribution_currencyMismatch() {
	suite.enforceSecurity.On("CreateContribution").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, "case_id").
		Return(suite.activeCase, nil)

	_, err := suite.makeUsecase().CreateContribution(suite.ctx, models.CreateContributionAttributes{
		CaseId:   "case_id",
		Amount:   500,
		Currency: "USD",
	})

	suite.ErrorIs(err, models.ErrCurrencyMismatch)
	suite.AssertExpectations()
}

func (suite *ContributionUsecaseTestSuite) Test_CreateContribution_nonPositiveAmount() {
	suite.enforceSecurity.On("CreateContribution").Return(nil)

	_, err := suite.makeUsecase().CreateContribution(suite.ctx, models.CreateContributionAttributes{
		CaseId:   "case_id",
		Amount:   0,
		Currency: "EUR",
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *ContributionUsecaseTestSuite) Test_ReviewContribution_approve() {
	reviewed := suite.pendingContribution
	reviewed.Status = models.ContributionApproved
	reviewerId := models.UserId("reviewer_id")

	suite.enforceSecurity.On("ReviewContribution").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetContributionById", suite.ctx, suite.transaction, "contribution_id").
		Return(suite.pendingContribution, nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, "case_id").
		Return(suite.activeCase, nil)
	suite.repository.On("ReviewContribution", suite.ctx, suite.transaction,
		"contribution_id", models.ContributionApproved, reviewerId, "looks good").
		Return(&reviewed, nil)
	suite.repository.On("AddToCaseCollectedAmount", suite.ctx, suite.transaction, "case_id", int64(500)).
		Return(models.Case{Id: "case_id", TargetAmount: 10000, CollectedAmount: 2500}, nil)
	suite.repository.On("CreateCaseEvent", suite.ctx, suite.transaction, models.CreateCaseEventAttributes{
		CaseId:    "case_id",
		UserId:    reviewerId,
		EventType: models.CaseContributionApproved,
		NewValue:  utils.Ptr("contribution_id"),
	}).Return(nil)
	suite.notifier.On("NotifyUser", suite.ctx, mock.MatchedBy(func(attrs models.CreateNotificationAttributes) bool {
		return attrs.UserId == "contributor_id" && attrs.Kind == models.NotificationContributionApproved
	}))

	contribution, err := suite.makeUsecase().ReviewContribution(suite.ctx, models.ReviewContributionAttributes{
		ContributionId: "contribution_id",
		ReviewerId:     reviewerId,
		Approve:        true,
		ReviewNote:     "looks good",
	})

	suite.NoError(err)
	suite.Equal(models.ContributionApproved, contribution.Status)
	suite.AssertExpectations()
}

func (suite *ContributionUsecaseTestSuite) Test_ReviewContribution_approvalFundsTheCase() {
	reviewed := suite.pendingContribution
	reviewed.Status = models.ContributionApproved
	reviewerId := models.UserId("reviewer_id")

	suite.enforceSecurity.On("ReviewContribution").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetContributionById", suite.ctx, suite.transaction, "contribution_id").
		Return(suite.pendingContribution, nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, "case_id").
		Return(suite.activeCase, nil)
	suite.repository.On("ReviewContribution", suite.ctx, suite.transaction,
		"contribution_id", models.ContributionApproved, reviewerId, "").
		Return(&reviewed, nil)
	suite.repository.On("AddToCaseCollectedAmount", suite.ctx, suite.transaction, "case_id", int64(500)).
		Return(models.Case{Id: "case_id", TargetAmount: 10000, CollectedAmount: 10000}, nil)
	suite.repository.On("UpdateCaseStatus", suite.ctx, suite.transaction, "case_id", models.CaseFunded).
		Return(nil)
	suite.repository.On("CreateCaseEvent", suite.ctx, suite.transaction, mock.Anything).Return(nil)
	suite.notifier.On("NotifyUser", suite.ctx, mock.Anything)

	_, err := suite.makeUsecase().ReviewContribution(suite.ctx, models.ReviewContributionAttributes{
		ContributionId: "contribution_id",
		ReviewerId:     reviewerId,
		Approve:        true,
	})

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *ContributionUsecaseTestSuite) Test_ReviewContribution_reject() {
	reviewed := suite.pendingContribution
	reviewed.Status = models.ContributionRejected
	reviewerId := models.UserId("reviewer_id")

	suite.enforceSecurity.On("ReviewContribution").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetContributionById", suite.ctx, suite.transaction, "contribution_id").
		Return(suite.pendingContribution, nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, "case_id").
		Return(suite.activeCase, nil)
	suite.repository.On("ReviewContribution", suite.ctx, suite.transaction,
		"contribution_id", models.ContributionRejected, reviewerId, "duplicate payment").
		Return(&reviewed, nil)
	suite.repository.On("CreateCaseEvent", suite.ctx, suite.transaction, models.CreateCaseEventAttributes{
		CaseId:    "case_id",
		UserId:    reviewerId,
		EventType: models.CaseContributionRejected,
		NewValue:  utils.Ptr("contribution_id"),
	}).Return(nil)
	suite.notifier.On("NotifyUser", suite.ctx, mock.MatchedBy(func(attrs models.CreateNotificationAttributes) bool {
		return attrs.Kind == models.NotificationContributionRejected
	}))

	contribution, err := suite.makeUsecase().ReviewContribution(suite.ctx, models.ReviewContributionAttributes{
		ContributionId: "contribution_id",
		ReviewerId:     reviewerId,
		Approve:        false,
		ReviewNote:     "duplicate payment",
	})

	suite.NoError(err)
	suite.Equal(models.ContributionRejected, contribution.Status)
	suite.repository.AssertNotCalled(suite.T(), "AddToCaseCollectedAmount",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *ContributionUsecaseTestSuite) Test_ReviewContribution_alreadyReviewed() {
	alreadyApproved := suite.pendingContribution
	alreadyApproved.Status = models.ContributionApproved

	suite.enforceSecurity.On("ReviewContribution").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetContributionById", suite.ctx, suite.transaction, "contribution_id").
		Return(alreadyApproved, nil)

	_, err := suite.makeUsecase().ReviewContribution(suite.ctx, models.ReviewContributionAttributes{
		ContributionId: "contribution_id",
		ReviewerId:     "reviewer_id",
		Approve:        true,
	})

	suite.ErrorIs(err, models.ErrContributionAlreadyReviewed)
	suite.AssertExpectations()
}

func (suite *ContributionUsecaseTestSuite) Test_ReviewContribution_concurrentReview() {
	suite.enforceSecurity.On("ReviewContribution").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetContributionById", suite.ctx, suite.transaction, "contribution_id").
		Return(suite.pendingContribution, nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, "case_id").
		Return(suite.activeCase, nil)
	suite.repository.On("ReviewContribution", suite.ctx, suite.transaction,
		"contribution_id", models.ContributionApproved, models.UserId("reviewer_id"), "").
		Return((*models.Contribution)(nil), nil)

	_, err := suite.makeUsecase().ReviewContribution(suite.ctx, models.ReviewContributionAttributes{
		ContributionId: "contribution_id",
		ReviewerId:     "reviewer_id",
		Approve:        true,
	})

	suite.ErrorIs(err, models.ErrContributionAlreadyReviewed)
	suite.AssertExpectations()
}

func (suite *ContributionUsecaseTestSuite) Test_ListContributions_paginates() {
	contributions := make([]models.Contribution, 3)
	for i := range contributions {
		contributions[i] = suite.pendingContribution
	}

	pagination := models.PaginationAndSorting{Limit: 2}
	expectedQuery := models.WithPaginationDefaults(pagination, ContributionPaginationDefaults)
	expectedQuery.Limit = 3

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("ListContributions", suite.ctx, suite.executor,
		models.ContributionFilters{}, expectedQuery).
		Return(contributions, nil)
	suite.enforceSecurity.On("ReadContribution", suite.pendingContribution).Return(nil)

	page, err := suite.makeUsecase().ListContributions(suite.ctx, models.ContributionFilters{}, pagination)

	suite.NoError(err)
	suite.Len(page.Items, 2)
	suite.True(page.HasNextPage)
	suite.AssertExpectations()
}

func (suite *ContributionUsecaseTestSuite) Test_ListContributions_negativeLimitFallsBackToDefault() {
	expectedQuery := models.PaginationAndSorting{
		Sorting: ContributionPaginationDefaults.SortBy,
		Order:   ContributionPaginationDefaults.Order,
		Limit:   ContributionPaginationDefaults.Limit + 1,
	}

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("ListContributions", suite.ctx, suite.executor,
		models.ContributionFilters{}, expectedQuery).
		Return([]models.Contribution{}, nil)

	page, err := suite.makeUsecase().ListContributions(suite.ctx, models.ContributionFilters{},
		models.PaginationAndSorting{Limit: -1})

	suite.NoError(err)
	suite.Empty(page.Items)
	suite.False(page.HasNextPage)
	suite.AssertExpectations()
}

func TestContributionUsecase(t *testing.T) {
	suite.Run(t, new(ContributionUsecaseTestSuite))
}

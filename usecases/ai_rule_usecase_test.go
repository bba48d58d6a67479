package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/amanahq/amana-backend/mocks"
	"github.com/amanahq/amana-backend/models"
)

type AiRuleUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.AiRuleRepository
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	transaction        *mocks.Transaction
	executor           *mocks.Executor
	enforceSecurity    *mocks.EnforceSecurity
	textGenerator      *mocks.TextGenerator

	rules []models.AiRule
	ctx   context.Context
}

func (suite *AiRuleUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.AiRuleRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.executor = new(mocks.Executor)
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.textGenerator = new(mocks.TextGenerator)

	suite.rules = []models.AiRule{
		{
			Id:       "rule_1",
			Name:     "tone",
			Template: "Write in a warm, factual tone.",
			Category: models.AiRuleCategoryCaseDescription,
			RuleType: models.AiRuleTypeStyle,
			Priority: 1,
			Enabled:  true,
		},
		{
			Id:       "rule_2",
			Name:     "beneficiary",
			Template: "The beneficiary is {{beneficiary_name}} from {{city}}.",
			Category: models.AiRuleCategoryCaseDescription,
			RuleType: models.AiRuleTypeContent,
			Priority: 2,
			Enabled:  true,
		},
	}
	suite.ctx = context.Background()
}

func (suite *AiRuleUsecaseTestSuite) makeUsecase() *AiRuleUseCase {
	return &AiRuleUseCase{
		enforceSecurity:    suite.enforceSecurity,
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		textGenerator:      suite.textGenerator,
	}
}

func (suite *AiRuleUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.transactionFactory.AssertExpectations(t)
	suite.enforceSecurity.AssertExpectations(t)
	suite.textGenerator.AssertExpectations(t)
}

func (suite *AiRuleUsecaseTestSuite) Test_ReorderAiRules_nominal() {
	attributes := models.ReorderAiRulesAttributes{
		Category:   models.AiRuleCategoryCaseDescription,
		OrderedIds: []string{"rule_2", "rule_1"},
	}

	suite.enforceSecurity.On("WriteAiRule").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("ListAiRules", suite.ctx, suite.transaction, models.AiRuleCategoryCaseDescription).
		Return(suite.rules, nil)
	suite.repository.On("SetAiRulePriority", suite.ctx, suite.transaction, "rule_2", 1).Return(nil)
	suite.repository.On("SetAiRulePriority", suite.ctx, suite.transaction, "rule_1", 2).Return(nil)

	_, err := suite.makeUsecase().ReorderAiRules(suite.ctx, attributes)

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *AiRuleUsecaseTestSuite) Test_ReorderAiRules_incompleteIdList() {
	suite.enforceSecurity.On("WriteAiRule").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("ListAiRules", suite.ctx, suite.transaction, models.AiRuleCategoryCaseDescription).
		Return(suite.rules, nil)

	_, err := suite.makeUsecase().ReorderAiRules(suite.ctx, models.ReorderAiRulesAttributes{
		Category:   models.AiRuleCategoryCaseDescription,
		OrderedIds: []string{"rule_1"},
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *AiRuleUsecaseTestSuite) Test_ReorderAiRules_foreignRuleId() {
	suite.enforceSecurity.On("WriteAiRule").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("ListAiRules", suite.ctx, suite.transaction, models.AiRuleCategoryCaseDescription).
		Return(suite.rules, nil)

	_, err := suite.makeUsecase().ReorderAiRules(suite.ctx, models.ReorderAiRulesAttributes{
		Category:   models.AiRuleCategoryCaseDescription,
		OrderedIds: []string{"rule_1", "rule_from_another_category"},
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *AiRuleUsecaseTestSuite) Test_ReorderAiRules_duplicateRuleId() {
	suite.enforceSecurity.On("WriteAiRule").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("ListAiRules", suite.ctx, suite.transaction, models.AiRuleCategoryCaseDescription).
		Return(suite.rules, nil)

	_, err := suite.makeUsecase().ReorderAiRules(suite.ctx, models.ReorderAiRulesAttributes{
		Category:   models.AiRuleCategoryCaseDescription,
		OrderedIds: []string{"rule_1", "rule_1"},
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *AiRuleUsecaseTestSuite) Test_RenderPrompt_nominal() {
	suite.enforceSecurity.On("ReadAiRule").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("ListEnabledAiRules", suite.ctx, suite.executor,
		models.AiRuleCategoryCaseDescription).
		Return(suite.rules, nil)

	prompt, err := suite.makeUsecase().RenderPrompt(suite.ctx,
		models.AiRuleCategoryCaseDescription,
		map[string]string{"beneficiary_name": "Amina", "city": "Tunis"})

	suite.NoError(err)
	suite.Equal("Write in a warm, factual tone.\n\nThe beneficiary is Amina from Tunis.", prompt)
	suite.AssertExpectations()
}

func (suite *AiRuleUsecaseTestSuite) Test_RenderPrompt_missingParam() {
	suite.enforceSecurity.On("ReadAiRule").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("ListEnabledAiRules", suite.ctx, suite.executor,
		models.AiRuleCategoryCaseDescription).
		Return(suite.rules, nil)

	_, err := suite.makeUsecase().RenderPrompt(suite.ctx,
		models.AiRuleCategoryCaseDescription,
		map[string]string{"beneficiary_name": "Amina"})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *AiRuleUsecaseTestSuite) Test_RenderPrompt_noEnabledRules() {
	suite.enforceSecurity.On("ReadAiRule").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("ListEnabledAiRules", suite.ctx, suite.executor,
		models.AiRuleCategoryCaseDescription).
		Return([]models.AiRule{}, nil)

	_, err := suite.makeUsecase().RenderPrompt(suite.ctx,
		models.AiRuleCategoryCaseDescription, nil)

	suite.ErrorIs(err, models.NotFoundError)
	suite.AssertExpectations()
}

func (suite *AiRuleUsecaseTestSuite) Test_GeneratePreview_nominal() {
	suite.enforceSecurity.On("WriteAiRule").Return(nil)
	suite.enforceSecurity.On("ReadAiRule").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("ListEnabledAiRules", suite.ctx, suite.executor,
		models.AiRuleCategoryCaseDescription).
		Return(suite.rules, nil)
	suite.textGenerator.On("GenerateText", suite.ctx,
		"Write in a warm, factual tone.\n\nThe beneficiary is Amina from Tunis.").
		Return("A generated case description.", nil)

	text, err := suite.makeUsecase().GeneratePreview(suite.ctx,
		models.AiRuleCategoryCaseDescription,
		map[string]string{"beneficiary_name": "Amina", "city": "Tunis"})

	suite.NoError(err)
	suite.Equal("A generated case description.", text)
	suite.AssertExpectations()
}

func (suite *AiRuleUsecaseTestSuite) Test_CreateAiRule_validation() {
	suite.enforceSecurity.On("WriteAiRule").Return(nil)

	usecase := suite.makeUsecase()

	_, err := usecase.CreateAiRule(suite.ctx, models.CreateAiRuleAttributes{
		Template: "no name",
		Category: models.AiRuleCategoryReport,
		RuleType: models.AiRuleTypeStyle,
	})
	suite.ErrorIs(err, models.BadParameterError)

	_, err = usecase.CreateAiRule(suite.ctx, models.CreateAiRuleAttributes{
		Name:     "rule",
		Template: "template",
		Category: models.AiRuleCategoryUnknown,
		RuleType: models.AiRuleTypeStyle,
	})
	suite.ErrorIs(err, models.BadParameterError)

	suite.AssertExpectations()
}

func (suite *AiRuleUsecaseTestSuite) Test_DeleteAiRule_renumbersPriorities() {
	suite.enforceSecurity.On("WriteAiRule").Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetAiRuleById", suite.ctx, suite.transaction, "rule_1").
		Return(suite.rules[0], nil)
	suite.repository.On("DeleteAiRule", suite.ctx, suite.transaction, "rule_1").Return(nil)
	suite.repository.On("RenumberAiRulePriorities", suite.ctx, suite.transaction,
		models.AiRuleCategoryCaseDescription).Return(nil)

	err := suite.makeUsecase().DeleteAiRule(suite.ctx, "rule_1")

	suite.NoError(err)
	suite.AssertExpectations()
}

func TestAiRuleUsecase(t *testing.T) {
	suite.Run(t, new(AiRuleUsecaseTestSuite))
}

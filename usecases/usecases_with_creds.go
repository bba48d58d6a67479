package usecases

import (
	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/usecases/security"
)

type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceCaseSecurity() security.EnforceSecurityCase {
	return &security.EnforceSecurityCaseImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceContributionSecurity() security.EnforceSecurityContribution {
	return &security.EnforceSecurityContributionImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceAiRuleSecurity() security.EnforceSecurityAiRule {
	return &security.EnforceSecurityAiRuleImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceSettingSecurity() security.EnforceSecuritySetting {
	return &security.EnforceSecuritySettingImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceUserSecurity() security.EnforceSecurityUser {
	return &security.EnforceSecurityUserImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceNotificationSecurity() security.EnforceSecurityNotification {
	return &security.EnforceSecurityNotificationImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewSettingUseCase() *SettingUseCase {
	return NewSettingUseCase(
		usecases.NewEnforceSettingSecurity(),
		usecases.NewExecutorFactory(),
		usecases.Repositories.AmanaDbRepository,
		usecases.settingCache,
	)
}

func (usecases *UsecasesWithCreds) NewCaseUseCase() CaseUseCase {
	return CaseUseCase{
		enforceSecurity:    usecases.NewEnforceCaseSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.AmanaDbRepository,
		settings:           usecases.NewSettingUseCase(),
		translator:         usecases.Repositories.Translator,
	}
}

func (usecases *UsecasesWithCreds) NewContributionUseCase() ContributionUseCase {
	return ContributionUseCase{
		enforceSecurity:    usecases.NewEnforceContributionSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.AmanaDbRepository,
		notifier:           usecases.NewNotificationUseCase(),
	}
}

func (usecases *UsecasesWithCreds) NewAiRuleUseCase() AiRuleUseCase {
	return AiRuleUseCase{
		enforceSecurity:    usecases.NewEnforceAiRuleSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.AmanaDbRepository,
		textGenerator:      usecases.Repositories.TextGenerator,
	}
}

func (usecases *UsecasesWithCreds) NewUserUseCase() UserUseCase {
	return UserUseCase{
		enforceSecurity:    usecases.NewEnforceUserSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.AmanaDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewAccountMergeUseCase() AccountMergeUseCase {
	return AccountMergeUseCase{
		enforceSecurity:    usecases.NewEnforceUserSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.AmanaDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewCaseFileUseCase() CaseFileUseCase {
	return CaseFileUseCase{
		enforceSecurity:    usecases.NewEnforceCaseSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.AmanaDbRepository,
		blobRepository:     usecases.Repositories.BlobRepository,
		settings:           usecases.NewSettingUseCase(),
		bucketUrl:          usecases.caseFilesBucketUrl,
	}
}

func (usecases *UsecasesWithCreds) NewNotificationUseCase() *NotificationUseCase {
	return &NotificationUseCase{
		enforceSecurity: usecases.NewEnforceNotificationSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.AmanaDbRepository,
		pushSender:      usecases.Repositories.PushSender,
		settings:        usecases.NewSettingUseCase(),
	}
}

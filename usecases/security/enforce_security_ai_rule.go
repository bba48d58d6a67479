package security

import (
	"github.com/amanahq/amana-backend/models"
)

type EnforceSecurityAiRule interface {
	EnforceSecurity
	ReadAiRule() error
	WriteAiRule() error
}

type EnforceSecurityAiRuleImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityAiRuleImpl) ReadAiRule() error {
	return e.Permission(models.AI_RULE_READ)
}

func (e *EnforceSecurityAiRuleImpl) WriteAiRule() error {
	return e.Permission(models.AI_RULE_WRITE)
}

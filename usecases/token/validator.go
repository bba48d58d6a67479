package token

import (
	"context"

	"github.com/amanahq/amana-backend/models"
)

type tokenValidator interface {
	ValidateToken(token string) (models.Credentials, error)
}

type Validator struct {
	validator tokenValidator
}

func NewValidator(validator tokenValidator) Validator {
	return Validator{
		validator: validator,
	}
}

func (v Validator) Validate(ctx context.Context, token string) (models.Credentials, error) {
	return v.validator.ValidateToken(token)
}

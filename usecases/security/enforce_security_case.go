package security

import (
	"github.com/cockroachdb/errors"

	"github.com/amanahq/amana-backend/models"
)

type EnforceSecurityCase interface {
	EnforceSecurity
	ReadCase(c models.Case) error
	CreateCase() error
	UpdateCase(c models.Case) error
	PublishCase(c models.Case) error
	UploadCaseFile(c models.Case) error
}

type EnforceSecurityCaseImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityCaseImpl) ReadCase(c models.Case) error {
	// Draft cases are only visible to their author and to users who can
	// publish them.
	if c.Status == models.CaseDraft &&
		c.CreatedBy != e.Credentials.ActorIdentity.UserId {
		return errors.Join(
			e.Permission(models.CASE_READ),
			e.Permission(models.CASE_PUBLISH),
		)
	}
	return e.Permission(models.CASE_READ)
}

func (e *EnforceSecurityCaseImpl) CreateCase() error {
	return e.Permission(models.CASE_CREATE)
}

func (e *EnforceSecurityCaseImpl) UpdateCase(c models.Case) error {
	if c.CreatedBy != e.Credentials.ActorIdentity.UserId &&
		e.Credentials.Role != models.ADMIN {
		return errors.Wrap(models.ForbiddenError,
			"only the case author or an admin can update a case")
	}
	return e.Permission(models.CASE_UPDATE)
}

func (e *EnforceSecurityCaseImpl) PublishCase(c models.Case) error {
	return e.Permission(models.CASE_PUBLISH)
}

func (e *EnforceSecurityCaseImpl) UploadCaseFile(c models.Case) error {
	return errors.Join(e.Permission(models.CASE_FILE_UPLOAD), e.UpdateCase(c))
}

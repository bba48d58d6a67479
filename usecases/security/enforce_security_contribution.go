package security

import (
	"github.com/cockroachdb/errors"

	"github.com/amanahq/amana-backend/models"
)

type EnforceSecurityContribution interface {
	EnforceSecurity
	ReadContribution(contribution models.Contribution) error
	CreateContribution() error
	ReviewContribution() error
}

type EnforceSecurityContributionImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityContributionImpl) ReadContribution(contribution models.Contribution) error {
	// Donors see their own contributions, reviewers see everything.
	if contribution.ContributorId == e.Credentials.ActorIdentity.UserId {
		return e.Permission(models.CONTRIBUTION_READ)
	}
	return errors.Join(
		e.Permission(models.CONTRIBUTION_READ),
		e.Permission(models.CONTRIBUTION_REVIEW),
	)
}

func (e *EnforceSecurityContributionImpl) CreateContribution() error {
	return e.Permission(models.CONTRIBUTION_CREATE)
}

func (e *EnforceSecurityContributionImpl) ReviewContribution() error {
	return e.Permission(models.CONTRIBUTION_REVIEW)
}

package security

import (
	"github.com/cockroachdb/errors"

	"github.com/amanahq/amana-backend/models"
)

type EnforceSecurityUser interface {
	EnforceSecurity
	ReadUser(user models.User) error
	CreateUser(input models.CreateUser) error
	UpdateUser(targetUser models.User, updateUser models.UpdateUser) error
	DeleteUser(user models.User) error
	ListUsers() error
	MergeAccounts() error
}

type EnforceSecurityUserImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityUserImpl) ReadUser(user models.User) error {
	if user.UserId == e.Credentials.ActorIdentity.UserId {
		return nil
	}
	return e.Permission(models.USER_READ)
}

func (e *EnforceSecurityUserImpl) CreateUser(input models.CreateUser) error {
	// Double guard: only admins hold USER_CREATE, but make sure a future role
	// holding it still cannot mint admins.
	if input.Role == models.ADMIN && e.Credentials.Role != models.ADMIN {
		return errors.Wrap(models.ForbiddenError, "only admins can create admins")
	}
	return e.Permission(models.USER_CREATE)
}

func (e *EnforceSecurityUserImpl) UpdateUser(targetUser models.User, updateUser models.UpdateUser) error {
	if updateUser.Role != nil && e.Credentials.Role != models.ADMIN {
		return errors.Wrap(models.ForbiddenError, "only admins can change a user's role")
	}
	if targetUser.UserId == e.Credentials.ActorIdentity.UserId && updateUser.Role == nil {
		return nil
	}
	return e.Permission(models.USER_UPDATE)
}

func (e *EnforceSecurityUserImpl) DeleteUser(user models.User) error {
	if user.UserId == e.Credentials.ActorIdentity.UserId {
		return errors.Wrap(models.ForbiddenError, "cannot delete your own account")
	}
	return e.Permission(models.USER_DELETE)
}

func (e *EnforceSecurityUserImpl) ListUsers() error {
	return e.Permission(models.USER_READ)
}

func (e *EnforceSecurityUserImpl) MergeAccounts() error {
	return e.Permission(models.ACCOUNT_MERGE)
}

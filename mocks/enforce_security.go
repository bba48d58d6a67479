package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/amanahq/amana-backend/models"
)

type EnforceSecurity struct {
	mock.Mock
}

func (e *EnforceSecurity) Permission(permission models.Permission) error {
	args := e.Called(permission)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadCase(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) CreateCase() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) UpdateCase(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) PublishCase(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) UploadCaseFile(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadContribution(contribution models.Contribution) error {
	args := e.Called(contribution)
	return args.Error(0)
}

func (e *EnforceSecurity) CreateContribution() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReviewContribution() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadAiRule() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) WriteAiRule() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadSetting() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) WriteSetting() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadUser(user models.User) error {
	args := e.Called(user)
	return args.Error(0)
}

func (e *EnforceSecurity) CreateUser(input models.CreateUser) error {
	args := e.Called(input)
	return args.Error(0)
}

func (e *EnforceSecurity) UpdateUser(targetUser models.User, updateUser models.UpdateUser) error {
	args := e.Called(targetUser, updateUser)
	return args.Error(0)
}

func (e *EnforceSecurity) DeleteUser(user models.User) error {
	args := e.Called(user)
	return args.Error(0)
}

func (e *EnforceSecurity) ListUsers() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) MergeAccounts() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadNotifications(userId models.UserId) error {
	args := e.Called(userId)
	return args.Error(0)
}

func (e *EnforceSecurity) RegisterDeviceToken(userId models.UserId) error {
	args := e.Called(userId)
	return args.Error(0)
}

package security

import (
	"github.com/amanahq/amana-backend/models"
)

type EnforceSecuritySetting interface {
	EnforceSecurity
	ReadSetting() error
	WriteSetting() error
}

type EnforceSecuritySettingImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecuritySettingImpl) ReadSetting() error {
	return e.Permission(models.SETTING_READ)
}

func (e *EnforceSecuritySettingImpl) WriteSetting() error {
	return e.Permission(models.SETTING_WRITE)
}

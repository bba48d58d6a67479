package models

import (
	"slices"
	"time"
)

type Setting struct {
	Key         string
	Value       string
	ValueType   SettingValueType
	Description string
	UpdatedBy   *UserId
	UpdatedAt   time.Time
}

type SettingValueType string

const (
	SettingValueString  SettingValueType = "string"
	SettingValueInt     SettingValueType = "int"
	SettingValueBool    SettingValueType = "bool"
	SettingValueJson    SettingValueType = "json"
	SettingValueUnknown SettingValueType = "unknown"
)

var ValidSettingValueTypes = []SettingValueType{
	SettingValueString, SettingValueInt, SettingValueBool, SettingValueJson,
}

func SettingValueTypeFrom(s string) SettingValueType {
	if slices.Contains(ValidSettingValueTypes, SettingValueType(s)) {
		return SettingValueType(s)
	}
	return SettingValueUnknown
}

// Well-known setting keys read by the application itself.
const (
	SettingTargetLanguages  = "target_languages"
	SettingMaxUploadSizeMb  = "max_upload_size_mb"
	SettingAllowedFileTypes = "allowed_file_types"
	SettingPushEnabled      = "push_enabled"
	SettingDefaultCurrency  = "default_currency"
)

type UpsertSettingAttributes struct {
	Key         string
	Value       string
	ValueType   SettingValueType
	Description string
	UpdatedBy   UserId
}

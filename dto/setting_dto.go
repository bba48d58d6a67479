package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/amanahq/amana-backend/models"
)

type APISetting struct {
	Key         string      `json:"key"`
	Value       string      `json:"value"`
	ValueType   string      `json:"value_type"`
	Description string      `json:"description,omitempty"`
	UpdatedBy   null.String `json:"updated_by"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func AdaptSettingDto(setting models.Setting) APISetting {
	dto := APISetting{
		Key:         setting.Key,
		Value:       setting.Value,
		ValueType:   string(setting.ValueType),
		Description: setting.Description,
		UpdatedAt:   setting.UpdatedAt,
	}
	if setting.UpdatedBy != nil {
		dto.UpdatedBy = null.StringFrom(string(*setting.UpdatedBy))
	}
	return dto
}

type UpsertSettingBody struct {
	Value       string `json:"value" binding:"required"`
	ValueType   string `json:"value_type" binding:"required"`
	Description string `json:"description"`
}

func AdaptUpsertSettingBody(key string, body UpsertSettingBody,
	updatedBy models.UserId,
) models.UpsertSettingAttributes {
	return models.UpsertSettingAttributes{
		Key:         key,
		Value:       body.Value,
		ValueType:   models.SettingValueTypeFrom(body.ValueType),
		Description: body.Description,
		UpdatedBy:   updatedBy,
	}
}

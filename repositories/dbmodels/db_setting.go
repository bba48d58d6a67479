package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

type DBSetting struct {
	Key         string      `db:"key"`
	Value       string      `db:"value"`
	ValueType   string      `db:"value_type"`
	Description string      `db:"description"`
	UpdatedBy   pgtype.Text `db:"updated_by"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

const TABLE_SETTINGS = "settings"

var SelectSettingColumn = utils.ColumnList[DBSetting]()

func AdaptSetting(db DBSetting) (models.Setting, error) {
	setting := models.Setting{
		Key:         db.Key,
		Value:       db.Value,
		ValueType:   models.SettingValueType(db.ValueType),
		Description: db.Description,
		UpdatedAt:   db.UpdatedAt,
	}
	if db.UpdatedBy.Valid {
		updatedBy := models.UserId(db.UpdatedBy.String)
		setting.UpdatedBy = &updatedBy
	}
	return setting, nil
}

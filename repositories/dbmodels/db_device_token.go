package dbmodels

import (
	"time"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

type DBDeviceToken struct {
	Id        string    `db:"id"`
	UserId    string    `db:"user_id"`
	Token     string    `db:"token"`
	Platform  string    `db:"platform"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_DEVICE_TOKENS = "device_tokens"

var SelectDeviceTokenColumn = utils.ColumnList[DBDeviceToken]()

func AdaptDeviceToken(db DBDeviceToken) (models.DeviceToken, error) {
	return models.DeviceToken{
		Id:        db.Id,
		UserId:    models.UserId(db.UserId),
		Token:     db.Token,
		Platform:  models.DevicePlatform(db.Platform),
		CreatedAt: db.CreatedAt,
	}, nil
}

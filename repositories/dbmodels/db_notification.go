package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

type DBNotification struct {
	Id        string          `db:"id"`
	UserId    string          `db:"user_id"`
	Kind      string          `db:"kind"`
	Title     string          `db:"title"`
	Body      string          `db:"body"`
	Data      json.RawMessage `db:"data"`
	Read      bool            `db:"read"`
	CreatedAt time.Time       `db:"created_at"`
}

const TABLE_NOTIFICATIONS = "notifications"

var SelectNotificationColumn = utils.ColumnList[DBNotification]()

func AdaptNotification(db DBNotification) (models.Notification, error) {
	notification := models.Notification{
		Id:        db.Id,
		UserId:    models.UserId(db.UserId),
		Kind:      models.NotificationKind(db.Kind),
		Title:     db.Title,
		Body:      db.Body,
		Read:      db.Read,
		CreatedAt: db.CreatedAt,
	}
	if len(db.Data) > 0 {
		if err := json.Unmarshal(db.Data, &notification.Data); err != nil {
			return models.Notification{}, errors.Wrap(err, "failed to unmarshal notification data")
		}
	}
	return notification, nil
}

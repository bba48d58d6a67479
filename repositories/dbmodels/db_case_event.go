package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

type DBCaseEvent struct {
	Id            string      `db:"id"`
	CaseId        string      `db:"case_id"`
	UserId        string      `db:"user_id"`
	EventType     string      `db:"event_type"`
	NewValue      pgtype.Text `db:"new_value"`
	PreviousValue pgtype.Text `db:"previous_value"`
	CreatedAt     time.Time   `db:"created_at"`
}

const TABLE_CASE_EVENTS = "case_events"

var SelectCaseEventColumn = utils.ColumnList[DBCaseEvent]()

func AdaptCaseEvent(db DBCaseEvent) (models.CaseEvent, error) {
	event := models.CaseEvent{
		Id:        db.Id,
		CaseId:    db.CaseId,
		UserId:    models.UserId(db.UserId),
		EventType: models.CaseEventType(db.EventType),
		CreatedAt: db.CreatedAt,
	}
	if db.NewValue.Valid {
		event.NewValue = &db.NewValue.String
	}
	if db.PreviousValue.Valid {
		event.PreviousValue = &db.PreviousValue.String
	}
	return event, nil
}

package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

type DBAccountMerge struct {
	Id             string          `db:"id"`
	SourceUserId   string          `db:"source_user_id"`
	TargetUserId   string          `db:"target_user_id"`
	ExecutedBy     string          `db:"executed_by"`
	DeleteSource   bool            `db:"delete_source"`
	ReassignedRows json.RawMessage `db:"reassigned_rows"`
	CreatedAt      time.Time       `db:"created_at"`
}

const TABLE_ACCOUNT_MERGES = "account_merges"

var SelectAccountMergeColumn = utils.ColumnList[DBAccountMerge]()

func AdaptAccountMerge(db DBAccountMerge) (models.AccountMerge, error) {
	merge := models.AccountMerge{
		Id:           db.Id,
		SourceUserId: models.UserId(db.SourceUserId),
		TargetUserId: models.UserId(db.TargetUserId),
		ExecutedBy:   models.UserId(db.ExecutedBy),
		DeleteSource: db.DeleteSource,
		CreatedAt:    db.CreatedAt,
	}
	if len(db.ReassignedRows) > 0 {
		if err := json.Unmarshal(db.ReassignedRows, &merge.ReassignedRows); err != nil {
			return models.AccountMerge{}, errors.Wrap(err, "failed to unmarshal reassigned rows")
		}
	}
	return merge, nil
}

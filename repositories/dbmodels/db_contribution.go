package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

type DBContribution struct {
	Id            string           `db:"id"`
	CaseId        string           `db:"case_id"`
	ContributorId string           `db:"contributor_id"`
	Amount        int64            `db:"amount"`
	Currency      string           `db:"currency"`
	Status        string           `db:"status"`
	Message       pgtype.Text      `db:"message"`
	ReviewerId    pgtype.Text      `db:"reviewer_id"`
	ReviewNote    pgtype.Text      `db:"review_note"`
	ReviewedAt    pgtype.Timestamp `db:"reviewed_at"`
	CreatedAt     time.Time        `db:"created_at"`
}

const TABLE_CONTRIBUTIONS = "contributions"

var SelectContributionColumn = utils.ColumnList[DBContribution]()

func AdaptContribution(db DBContribution) (models.Contribution, error) {
	contribution := models.Contribution{
		Id:            db.Id,
		CaseId:        db.CaseId,
		ContributorId: models.UserId(db.ContributorId),
		Amount:        db.Amount,
		Currency:      db.Currency,
		Status:        models.ContributionStatus(db.Status),
		Message:       db.Message.String,
		CreatedAt:     db.CreatedAt,
	}
	if db.ReviewNote.Valid {
		contribution.ReviewNote = &db.ReviewNote.String
	}
	if db.ReviewerId.Valid {
		reviewerId := models.UserId(db.ReviewerId.String)
		contribution.ReviewerId = &reviewerId
	}
	if db.ReviewedAt.Valid {
		contribution.ReviewedAt = &db.ReviewedAt.Time
	}
	return contribution, nil
}

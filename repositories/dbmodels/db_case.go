package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

type DBCase struct {
	Id                  string           `db:"id"`
	Title               string           `db:"title"`
	Description         string           `db:"description"`
	Category            string           `db:"category"`
	Status              string           `db:"status"`
	TargetAmount        int64            `db:"target_amount"`
	CollectedAmount     int64            `db:"collected_amount"`
	Currency            string           `db:"currency"`
	BeneficiaryName     string           `db:"beneficiary_name"`
	BeneficiaryCity     string           `db:"beneficiary_city"`
	BeneficiaryFamily   int              `db:"beneficiary_family_size"`
	SourceLanguage      string           `db:"source_language"`
	TranslationsPending bool             `db:"translations_pending"`
	CreatedBy           string           `db:"created_by"`
	DeletedAt           pgtype.Timestamp `db:"deleted_at"`
	CreatedAt           time.Time        `db:"created_at"`
	UpdatedAt           time.Time        `db:"updated_at"`
}

const TABLE_CASES = "cases"

var SelectCaseColumn = utils.ColumnList[DBCase]()

func AdaptCase(db DBCase) (models.Case, error) {
	return models.Case{
		Id:              db.Id,
		Title:           db.Title,
		Description:     db.Description,
		Category:        db.Category,
		Status:          models.CaseStatus(db.Status),
		TargetAmount:    db.TargetAmount,
		CollectedAmount: db.CollectedAmount,
		Currency:        db.Currency,
		Beneficiary: models.Beneficiary{
			Name:       db.BeneficiaryName,
			City:       db.BeneficiaryCity,
			FamilySize: db.BeneficiaryFamily,
		},
		SourceLanguage:      db.SourceLanguage,
		TranslationsPending: db.TranslationsPending,
		CreatedBy:           models.UserId(db.CreatedBy),
		CreatedAt:           db.CreatedAt,
		UpdatedAt:           db.UpdatedAt,
	}, nil
}

type DBCaseTranslation struct {
	Id          string    `db:"id"`
	CaseId      string    `db:"case_id"`
	Language    string    `db:"language"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

const TABLE_CASE_TRANSLATIONS = "case_translations"

var SelectCaseTranslationColumn = utils.ColumnList[DBCaseTranslation]()

func AdaptCaseTranslation(db DBCaseTranslation) (models.CaseTranslation, error) {
	return models.CaseTranslation{
		Language:    db.Language,
		Title:       db.Title,
		Description: db.Description,
	}, nil
}

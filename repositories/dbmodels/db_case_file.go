package dbmodels

import (
	"time"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

type DBCaseFile struct {
	Id            string    `db:"id"`
	CaseId        string    `db:"case_id"`
	BucketName    string    `db:"bucket_name"`
	FileReference string    `db:"file_reference"`
	FileName      string    `db:"file_name"`
	ContentType   string    `db:"content_type"`
	SizeBytes     int64     `db:"size_bytes"`
	CreatedAt     time.Time `db:"created_at"`
}

const TABLE_CASE_FILES = "case_files"

var SelectCaseFileColumn = utils.ColumnList[DBCaseFile]()

func AdaptCaseFile(db DBCaseFile) (models.CaseFile, error) {
	return models.CaseFile{
		Id:            db.Id,
		CaseId:        db.CaseId,
		BucketName:    db.BucketName,
		FileReference: db.FileReference,
		FileName:      db.FileName,
		ContentType:   db.ContentType,
		SizeBytes:     db.SizeBytes,
		CreatedAt:     db.CreatedAt,
	}, nil
}

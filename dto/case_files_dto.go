package dto

import (
	"time"

	"github.com/amanahq/amana-backend/models"
)

type APICaseFile struct {
	Id          string    `json:"id"`
	CaseId      string    `json:"case_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewAPICaseFile(caseFile models.CaseFile) APICaseFile {
	return APICaseFile{
		Id:          caseFile.Id,
		CaseId:      caseFile.CaseId,
		FileName:    caseFile.FileName,
		ContentType: caseFile.ContentType,
		SizeBytes:   caseFile.SizeBytes,
		CreatedAt:   caseFile.CreatedAt,
	}
}

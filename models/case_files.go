package models

import (
	"mime/multipart"
	"time"
)

type CaseFile struct {
	Id            string
	CaseId        string
	BucketName    string
	FileReference string
	FileName      string
	ContentType   string
	SizeBytes     int64
	CreatedAt     time.Time
}

type CreateCaseFileInput struct {
	CaseId string
	File   *multipart.FileHeader
}

type CreateDbCaseFileInput struct {
	Id            string
	CaseId        string
	BucketName    string
	FileReference string
	FileName      string
	ContentType   string
	SizeBytes     int64
}

package models

import "time"

type CaseEventType string

const (
	CaseCreated              CaseEventType = "case_created"
	CaseStatusUpdated        CaseEventType = "status_updated"
	CaseTitleUpdated         CaseEventType = "title_updated"
	CaseFileAdded            CaseEventType = "file_added"
	CaseFileRemoved          CaseEventType = "file_removed"
	CaseTranslationAdded     CaseEventType = "translation_added"
	CaseContributionApproved CaseEventType = "contribution_approved"
	CaseContributionRejected CaseEventType = "contribution_rejected"
)

type CaseEvent struct {
	Id            string
	CaseId        string
	UserId        UserId
	EventType     CaseEventType
	NewValue      *string
	PreviousValue *string
	CreatedAt     time.Time
}

type CreateCaseEventAttributes struct {
	CaseId        string
	UserId        UserId
	EventType     CaseEventType
	NewValue      *string
	PreviousValue *string
}

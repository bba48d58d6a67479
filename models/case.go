package models

import (
	"slices"
	"time"

	"github.com/cockroachdb/errors"
)

type Case struct {
	Id                  string
	Title               string
	Description         string
	Category            string
	Status              CaseStatus
	TargetAmount        int64
	CollectedAmount     int64
	Currency            string
	Beneficiary         Beneficiary
	SourceLanguage      string
	Translations        []CaseTranslation
	TranslationsPending bool
	CreatedBy           UserId
	Events              []CaseEvent
	Files               []CaseFile
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Beneficiary struct {
	Name       string
	City       string
	FamilySize int
}

type CaseTranslation struct {
	Language    string
	Title       string
	Description string
}

func (c Case) IsFunded() bool {
	return c.CollectedAmount >= c.TargetAmount
}

func (c Case) AcceptsContributions() bool {
	return c.Status == CaseActive
}

type CaseStatus string

const (
	CaseDraft         CaseStatus = "draft"
	CasePendingReview CaseStatus = "pending_review"
	CaseActive        CaseStatus = "active"
	CaseFunded        CaseStatus = "funded"
	CaseClosed        CaseStatus = "closed"
	CaseUnknownStatus CaseStatus = "unknown"
)

var ValidCaseStatuses = []CaseStatus{CaseDraft, CasePendingReview, CaseActive, CaseFunded, CaseClosed}

func (s CaseStatus) CanTransition(newStatus CaseStatus) bool {
	if s == newStatus {
		return true
	}

	switch s {
	case CaseDraft:
		return newStatus == CasePendingReview
	case CasePendingReview:
		return slices.Contains([]CaseStatus{CaseDraft, CaseActive}, newStatus)
	case CaseActive:
		return slices.Contains([]CaseStatus{CaseFunded, CaseClosed}, newStatus)
	case CaseFunded:
		return newStatus == CaseClosed
	default:
		return false
	}
}

func CaseStatusFrom(s string) CaseStatus {
	if slices.Contains(ValidCaseStatuses, CaseStatus(s)) {
		return CaseStatus(s)
	}
	return CaseUnknownStatus
}

func ValidateCaseStatuses(statuses []string) ([]CaseStatus, error) {
	out := make([]CaseStatus, len(statuses))
	for i, s := range statuses {
		status := CaseStatusFrom(s)
		if status == CaseUnknownStatus {
			return nil, errors.Wrapf(BadParameterError, "unknown case status '%s'", s)
		}
		out[i] = status
	}
	return out, nil
}

type CreateCaseAttributes struct {
	Title          string
	Description    string
	Category       string
	TargetAmount   int64
	Currency       string
	Beneficiary    Beneficiary
	SourceLanguage string
	CreatedBy      UserId
}

type UpdateCaseAttributes struct {
	Id           string
	Title        *string
	Description  *string
	Category     *string
	TargetAmount *int64
	Status       CaseStatus
	Beneficiary  *Beneficiary
}

type CaseFilters struct {
	Statuses  []CaseStatus
	Category  string
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

const (
	CasesSortingCreatedAt SortingField = "created_at"
)

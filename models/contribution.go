package models

import "time"

type Contribution struct {
	Id            string
	CaseId        string
	ContributorId UserId
	Amount        int64
	Currency      string
	Message       string
	Status        ContributionStatus
	ReviewerId    *UserId
	ReviewNote    *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
}

type ContributionStatus string

const (
	ContributionPending  ContributionStatus = "pending"
	ContributionApproved ContributionStatus = "approved"
	ContributionRejected ContributionStatus = "rejected"
)

func (s ContributionStatus) IsReviewed() bool {
	return s == ContributionApproved || s == ContributionRejected
}

type CreateContributionAttributes struct {
	CaseId        string
	ContributorId UserId
	Amount        int64
	Currency      string
	Message       string
}

type ReviewContributionAttributes struct {
	ContributionId string
	ReviewerId     UserId
	Approve        bool
	ReviewNote     string
}

type ContributionFilters struct {
	CaseId        string
	ContributorId string
	Status        ContributionStatus
}

const (
	ContributionsSortingCreatedAt SortingField = "created_at"
)

package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/amanahq/amana-backend/models"
)

type APIContribution struct {
	Id            string      `json:"id"`
	CaseId        string      `json:"case_id"`
	ContributorId string      `json:"contributor_id"`
	Amount        int64       `json:"amount"`
	Currency      string      `json:"currency"`
	Message       string      `json:"message,omitempty"`
	Status        string      `json:"status"`
	ReviewerId    null.String `json:"reviewer_id"`
	ReviewNote    null.String `json:"review_note"`
	ReviewedAt    null.Time   `json:"reviewed_at"`
	CreatedAt     time.Time   `json:"created_at"`
}

func AdaptContributionDto(c models.Contribution) APIContribution {
	dto := APIContribution{
		Id:            c.Id,
		CaseId:        c.CaseId,
		ContributorId: string(c.ContributorId),
		Amount:        c.Amount,
		Currency:      c.Currency,
		Message:       c.Message,
		Status:        string(c.Status),
		ReviewNote:    null.StringFromPtr(c.ReviewNote),
		ReviewedAt:    null.TimeFromPtr(c.ReviewedAt),
		CreatedAt:     c.CreatedAt,
	}
	if c.ReviewerId != nil {
		dto.ReviewerId = null.StringFrom(string(*c.ReviewerId))
	}
	return dto
}

type CreateContributionBody struct {
	CaseId   string `json:"case_id" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency"`
	Message  string `json:"message"`
}

func AdaptCreateContributionBody(body CreateContributionBody,
	contributorId models.UserId,
) models.CreateContributionAttributes {
	return models.CreateContributionAttributes{
		CaseId:        body.CaseId,
		ContributorId: contributorId,
		Amount:        body.Amount,
		Currency:      body.Currency,
		Message:       body.Message,
	}
}

type ReviewContributionBody struct {
	Approve    *bool  `json:"approve" binding:"required"`
	ReviewNote string `json:"review_note"`
}

type ContributionFilters struct {
	CaseId        string `form:"case_id"`
	ContributorId string `form:"contributor_id"`
	Status        string `form:"status"`
}

func (f ContributionFilters) Parse() models.ContributionFilters {
	return models.ContributionFilters{
		CaseId:        f.CaseId,
		ContributorId: f.ContributorId,
		Status:        models.ContributionStatus(f.Status),
	}
}

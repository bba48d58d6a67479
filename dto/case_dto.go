package dto

import (
	"time"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

type APICase struct {
	Id                  string               `json:"id"`
	Title               string               `json:"title"`
	Description         string               `json:"description"`
	Category            string               `json:"category"`
	Status              string               `json:"status"`
	TargetAmount        int64                `json:"target_amount"`
	CollectedAmount     int64                `json:"collected_amount"`
	Currency            string               `json:"currency"`
	Beneficiary         APIBeneficiary       `json:"beneficiary"`
	SourceLanguage      string               `json:"source_language"`
	Translations        []APICaseTranslation `json:"translations,omitempty"`
	TranslationsPending bool                 `json:"translations_pending"`
	CreatedBy           string               `json:"created_by"`
	Events              []APICaseEvent       `json:"events,omitempty"`
	Files               []APICaseFile        `json:"files,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

type APIBeneficiary struct {
	Name       string `json:"name"`
	City       string `json:"city"`
	FamilySize int    `json:"family_size"`
}

type APICaseTranslation struct {
	Language    string `json:"language"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func AdaptCaseDto(c models.Case) APICase {
	return APICase{
		Id:              c.Id,
		Title:           c.Title,
		Description:     c.Description,
		Category:        c.Category,
		Status:          string(c.Status),
		TargetAmount:    c.TargetAmount,
		CollectedAmount: c.CollectedAmount,
		Currency:        c.Currency,
		Beneficiary: APIBeneficiary{
			Name:       c.Beneficiary.Name,
			City:       c.Beneficiary.City,
			FamilySize: c.Beneficiary.FamilySize,
		},
		SourceLanguage:      c.SourceLanguage,
		Translations:        utils.Map(c.Translations, AdaptCaseTranslationDto),
		TranslationsPending: c.TranslationsPending,
		CreatedBy:           string(c.CreatedBy),
		Events:              utils.Map(c.Events, NewAPICaseEvent),
		Files:               utils.Map(c.Files, NewAPICaseFile),
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func AdaptCaseTranslationDto(t models.CaseTranslation) APICaseTranslation {
	return APICaseTranslation{
		Language:    t.Language,
		Title:       t.Title,
		Description: t.Description,
	}
}

type CreateCaseBody struct {
	Title          string             `json:"title" binding:"required"`
	Description    string             `json:"description" binding:"required"`
	Category       string             `json:"category" binding:"required"`
	TargetAmount   int64              `json:"target_amount" binding:"required"`
	Currency       string             `json:"currency"`
	Beneficiary    APIBeneficiaryBody `json:"beneficiary"`
	SourceLanguage string             `json:"source_language"`
}

type APIBeneficiaryBody struct {
	Name       string `json:"name"`
	City       string `json:"city"`
	FamilySize int    `json:"family_size"`
}

func AdaptCreateCaseBody(body CreateCaseBody, createdBy models.UserId) models.CreateCaseAttributes {
	return models.CreateCaseAttributes{
		Title:        body.Title,
		Description:  body.Description,
		Category:     body.Category,
		TargetAmount: body.TargetAmount,
		Currency:     body.Currency,
		Beneficiary: models.Beneficiary{
			Name:       body.Beneficiary.Name,
			City:       body.Beneficiary.City,
			FamilySize: body.Beneficiary.FamilySize,
		},
		SourceLanguage: body.SourceLanguage,
		CreatedBy:      createdBy,
	}
}

type UpdateCaseBody struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	Category     *string             `json:"category"`
	TargetAmount *int64              `json:"target_amount"`
	Status       string              `json:"status"`
	Beneficiary  *APIBeneficiaryBody `json:"beneficiary"`
}

func AdaptUpdateCaseBody(caseId string, body UpdateCaseBody) models.UpdateCaseAttributes {
	attrs := models.UpdateCaseAttributes{
		Id:           caseId,
		Title:        body.Title,
		Description:  body.Description,
		Category:     body.Category,
		TargetAmount: body.TargetAmount,
	}
	if body.Status != "" {
		attrs.Status = models.CaseStatusFrom(body.Status)
	}
	if body.Beneficiary != nil {
		attrs.Beneficiary = &models.Beneficiary{
			Name:       body.Beneficiary.Name,
			City:       body.Beneficiary.City,
			FamilySize: body.Beneficiary.FamilySize,
		}
	}
	return attrs
}

type CaseFilters struct {
	Statuses  []string  `form:"status[]"`
	Category  string    `form:"category"`
	Name      string    `form:"name"`
	StartDate time.Time `form:"start_date"`
	EndDate   time.Time `form:"end_date"`
}

func (f CaseFilters) Parse() (models.CaseFilters, error) {
	statuses, err := models.ValidateCaseStatuses(f.Statuses)
	if err != nil {
		return models.CaseFilters{}, err
	}
	return models.CaseFilters{
		Statuses:  statuses,
		Category:  f.Category,
		Name:      f.Name,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
	}, nil
}

package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/usecases/executor_factory"
	"github.com/amanahq/amana-backend/usecases/security"
	"github.com/amanahq/amana-backend/utils"
)

type CaseUseCaseRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error)
	ListCases(ctx context.Context, exec repositories.Executor, filters models.CaseFilters,
		pagination models.PaginationAndSorting) ([]models.Case, error)
	CreateCase(ctx context.Context, exec repositories.Executor,
		attributes models.CreateCaseAttributes, newCaseId string) error
	UpdateCase(ctx context.Context, exec repositories.Executor, attributes models.UpdateCaseAttributes) error
	UpdateCaseStatus(ctx context.Context, exec repositories.Executor, caseId string, status models.CaseStatus) error
	SoftDeleteCase(ctx context.Context, exec repositories.Executor, caseId string) error
	SetCaseTranslationsPending(ctx context.Context, exec repositories.Executor, caseId string, pending bool) error
	ListCaseTranslations(ctx context.Context, exec repositories.Executor, caseId string) ([]models.CaseTranslation, error)
	UpsertCaseTranslation(ctx context.Context, exec repositories.Executor, caseId string,
		translation models.CaseTranslation) error
	CreateCaseEvent(ctx context.Context, exec repositories.Executor,
		attributes models.CreateCaseEventAttributes) error
	ListCaseEvents(ctx context.Context, exec repositories.Executor, caseId string) ([]models.CaseEvent, error)
	GetCaseFilesByCaseId(ctx context.Context, exec repositories.Executor, caseId string) ([]models.CaseFile, error)
}

var CasePaginationDefaults = models.PaginationDefaults{
	Limit:  25,
	SortBy: models.CasesSortingCreatedAt,
	Order:  models.SortingOrderDesc,
}

type CaseUseCase struct {
	enforceSecurity    security.EnforceSecurityCase
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         CaseUseCaseRepository
	settings           settingsReader
	translator         repositories.Translator
}

func (usecase *CaseUseCase) ListCases(
	ctx context.Context,
	filters models.CaseFilters,
	pagination models.PaginationAndSorting,
) (models.Paginated[models.Case], error) {
	if !filters.StartDate.IsZero() && !filters.EndDate.IsZero() &&
		filters.StartDate.After(filters.EndDate) {
		return models.Paginated[models.Case]{},
			errors.Wrap(models.BadParameterError, "start date must be before end date")
	}

	pagination = models.WithPaginationDefaults(pagination, CasePaginationDefaults)

	// Fetch one extra row to know whether a next page exists.
	paginationPlusOne := pagination
	paginationPlusOne.Limit++

	exec := usecase.executorFactory.NewExecutor()
	cases, err := usecase.repository.ListCases(ctx, exec, filters, paginationPlusOne)
	if err != nil {
		return models.Paginated[models.Case]{}, err
	}
	for _, c := range cases {
		if err := usecase.enforceSecurity.ReadCase(c); err != nil {
			return models.Paginated[models.Case]{}, err
		}
	}

	hasNextPage := len(cases) > pagination.Limit
	if hasNextPage {
		cases = cases[:pagination.Limit]
	}
	return models.Paginated[models.Case]{Items: cases, HasNextPage: hasNextPage}, nil
}

func (usecase *CaseUseCase) GetCase(ctx context.Context, caseId string) (models.Case, error) {
	exec := usecase.executorFactory.NewExecutor()
	c, err := usecase.getCaseWithDetails(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}
	if err := usecase.enforceSecurity.ReadCase(c); err != nil {
		return models.Case{}, err
	}
	return c, nil
}

func (usecase *CaseUseCase) getCaseWithDetails(
	ctx context.Context,
	exec repositories.Executor,
	caseId string,
) (models.Case, error) {
	c, err := usecase.repository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}

	c.Translations, err = usecase.repository.ListCaseTranslations(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}
	c.Events, err = usecase.repository.ListCaseEvents(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}
	c.Files, err = usecase.repository.GetCaseFilesByCaseId(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}
	return c, nil
}

func (usecase *CaseUseCase) CreateCase(
	ctx context.Context,
	userId models.UserId,
	attributes models.CreateCaseAttributes,
) (models.Case, error) {
	if err := usecase.enforceSecurity.CreateCase(); err != nil {
		return models.Case{}, err
	}
	if attributes.TargetAmount <= 0 {
		return models.Case{}, errors.Wrap(models.BadParameterError, "target amount must be positive")
	}
	if attributes.Currency == "" {
		return models.Case{}, errors.Wrap(models.BadParameterError, "currency is required")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			newCaseId := uuid.NewString()
			if err := usecase.repository.CreateCase(ctx, tx, attributes, newCaseId); err != nil {
				return models.Case{}, err
			}

			err := usecase.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:    newCaseId,
				UserId:    userId,
				EventType: models.CaseCreated,
			})
			if err != nil {
				return models.Case{}, err
			}

			return usecase.getCaseWithDetails(ctx, tx, newCaseId)
		})
}

func (usecase *CaseUseCase) UpdateCase(
	ctx context.Context,
	userId models.UserId,
	attributes models.UpdateCaseAttributes,
) (models.Case, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := usecase.repository.GetCaseById(ctx, tx, attributes.Id)
			if err != nil {
				return models.Case{}, err
			}
			if err := usecase.enforceSecurity.UpdateCase(c); err != nil {
				return models.Case{}, err
			}

			if attributes.Status != "" && attributes.Status != c.Status {
				if !c.Status.CanTransition(attributes.Status) {
					return models.Case{}, errors.Wrapf(models.ErrCaseStatusTransitionNotAllowed,
						"cannot transition from '%s' to '%s'", c.Status, attributes.Status)
				}
			}

			if err := usecase.repository.UpdateCase(ctx, tx, attributes); err != nil {
				return models.Case{}, err
			}

			events := make([]models.CreateCaseEventAttributes, 0, 2)
			if attributes.Title != nil && *attributes.Title != c.Title {
				events = append(events, models.CreateCaseEventAttributes{
					CaseId:        c.Id,
					UserId:        userId,
					EventType:     models.CaseTitleUpdated,
					NewValue:      attributes.Title,
					PreviousValue: &c.Title,
				})
			}
			if attributes.Status != "" && attributes.Status != c.Status {
				events = append(events, models.CreateCaseEventAttributes{
					CaseId:        c.Id,
					UserId:        userId,
					EventType:     models.CaseStatusUpdated,
					NewValue:      utils.Ptr(string(attributes.Status)),
					PreviousValue: utils.Ptr(string(c.Status)),
				})
			}
			for _, event := range events {
				if err := usecase.repository.CreateCaseEvent(ctx, tx, event); err != nil {
					return models.Case{}, err
				}
			}

			return usecase.getCaseWithDetails(ctx, tx, c.Id)
		})
}

func (usecase *CaseUseCase) DeleteCase(ctx context.Context, caseId string) error {
	exec := usecase.executorFactory.NewExecutor()
	c, err := usecase.repository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return err
	}
	if err := usecase.enforceSecurity.UpdateCase(c); err != nil {
		return err
	}
	return usecase.repository.SoftDeleteCase(ctx, exec, caseId)
}

// PublishCase transitions a case from pending_review to active and produces
// the missing translations for the configured target languages. Translation
// failures never block the publication: the case is flagged as having pending
// translations instead.
func (usecase *CaseUseCase) PublishCase(ctx context.Context, userId models.UserId, caseId string) (models.Case, error) {
	c, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := usecase.repository.GetCaseById(ctx, tx, caseId)
			if err != nil {
				return models.Case{}, err
			}
			if err := usecase.enforceSecurity.PublishCase(c); err != nil {
				return models.Case{}, err
			}
			if !c.Status.CanTransition(models.CaseActive) {
				return models.Case{}, errors.Wrapf(models.ErrCaseStatusTransitionNotAllowed,
					"cannot publish a case in status '%s'", c.Status)
			}

			if err := usecase.repository.UpdateCaseStatus(ctx, tx, caseId, models.CaseActive); err != nil {
				return models.Case{}, err
			}

			err = usecase.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:        caseId,
				UserId:        userId,
				EventType:     models.CaseStatusUpdated,
				NewValue:      utils.Ptr(string(models.CaseActive)),
				PreviousValue: utils.Ptr(string(c.Status)),
			})
			if err != nil {
				return models.Case{}, err
			}

			return c, nil
		})
	if err != nil {
		return models.Case{}, err
	}

	usecase.translateCase(ctx, userId, c)

	exec := usecase.executorFactory.NewExecutor()
	return usecase.getCaseWithDetails(ctx, exec, caseId)
}

func (usecase *CaseUseCase) translateCase(ctx context.Context, userId models.UserId, c models.Case) {
	logger := utils.LoggerFromContext(ctx)
	exec := usecase.executorFactory.NewExecutor()

	if usecase.translator == nil {
		logger.WarnContext(ctx, "no translation client configured, flagging case",
			"case_id", c.Id)
		usecase.flagCaseTranslationsPending(ctx, exec, c.Id)
		return
	}

	targetLanguages, err := usecase.settings.TargetLanguages(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read target languages setting", "error", err)
		usecase.flagCaseTranslationsPending(ctx, exec, c.Id)
		return
	}

	existing, err := usecase.repository.ListCaseTranslations(ctx, exec, c.Id)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list case translations", "error", err)
		usecase.flagCaseTranslationsPending(ctx, exec, c.Id)
		return
	}
	done := make(map[string]bool, len(existing))
	for _, t := range existing {
		done[t.Language] = true
	}

	pending := false
	for _, lang := range targetLanguages {
		if lang == c.SourceLanguage || done[lang] {
			continue
		}

		translated, err := usecase.translator.Translate(ctx,
			[]string{c.Title, c.Description}, c.SourceLanguage, lang)
		if err != nil || len(translated) != 2 {
			logger.WarnContext(ctx, "failed to translate case",
				"case_id", c.Id, "language", lang, "error", err)
			pending = true
			continue
		}

		translation := models.CaseTranslation{
			Language:    lang,
			Title:       translated[0],
			Description: translated[1],
		}
		if err := usecase.repository.UpsertCaseTranslation(ctx, exec, c.Id, translation); err != nil {
			logger.ErrorContext(ctx, "failed to store case translation",
				"case_id", c.Id, "language", lang, "error", err)
			pending = true
			continue
		}

		err = usecase.repository.CreateCaseEvent(ctx, exec, models.CreateCaseEventAttributes{
			CaseId:    c.Id,
			UserId:    userId,
			EventType: models.CaseTranslationAdded,
			NewValue:  &translation.Language,
		})
		if err != nil {
			logger.ErrorContext(ctx, "failed to record translation event", "error", err)
		}
	}

	if err := usecase.repository.SetCaseTranslationsPending(ctx, exec, c.Id, pending); err != nil {
		logger.ErrorContext(ctx, "failed to update case translations_pending flag", "error", err)
	}
}

func (usecase *CaseUseCase) flagCaseTranslationsPending(ctx context.Context,
	exec repositories.Executor, caseId string,
) {
	if err := usecase.repository.SetCaseTranslationsPending(ctx, exec, caseId, true); err != nil {
		utils.LoggerFromContext(ctx).ErrorContext(ctx,
			"failed to flag case translations as pending", "error", err)
	}
}

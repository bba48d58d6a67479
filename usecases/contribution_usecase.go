package usecases

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/usecases/executor_factory"
	"github.com/amanahq/amana-backend/usecases/security"
	"github.com/amanahq/amana-backend/utils"
)

type ContributionUseCaseRepository interface {
	GetContributionById(ctx context.Context, exec repositories.Executor,
		contributionId string) (models.Contribution, error)
	ListContributions(ctx context.Context, exec repositories.Executor,
		filters models.ContributionFilters, pagination models.PaginationAndSorting) ([]models.Contribution, error)
	CreateContribution(ctx context.Context, exec repositories.Executor,
		attributes models.CreateContributionAttributes, newContributionId string) error
	ReviewContribution(ctx context.Context, exec repositories.Executor, contributionId string,
		status models.ContributionStatus, reviewerId models.UserId, reviewNote string) (*models.Contribution, error)
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error)
	AddToCaseCollectedAmount(ctx context.Context, exec repositories.Executor,
		caseId string, delta int64) (models.Case, error)
	UpdateCaseStatus(ctx context.Context, exec repositories.Executor, caseId string, status models.CaseStatus) error
	CreateCaseEvent(ctx context.Context, exec repositories.Executor,
		attributes models.CreateCaseEventAttributes) error
}

// contributionNotifier delivers the review outcome to the contributor. It
// runs after the review transaction commits.
type contributionNotifier interface {
	NotifyUser(ctx context.Context, attributes models.CreateNotificationAttributes)
}

var ContributionPaginationDefaults = models.PaginationDefaults{
	Limit:  25,
	SortBy: models.ContributionsSortingCreatedAt,
	Order:  models.SortingOrderDesc,
}

type ContributionUseCase struct {
	enforceSecurity    security.EnforceSecurityContribution
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         ContributionUseCaseRepository
	notifier           contributionNotifier
}

func (usecase *ContributionUseCase) GetContribution(ctx context.Context, contributionId string) (models.Contribution, error) {
	contribution, err := usecase.repository.GetContributionById(ctx,
		usecase.executorFactory.NewExecutor(), contributionId)
	if err != nil {
		return models.Contribution{}, err
	}
	if err := usecase.enforceSecurity.ReadContribution(contribution); err != nil {
		return models.Contribution{}, err
	}
	return contribution, nil
}

func (usecase *ContributionUseCase) ListContributions(
	ctx context.Context,
	filters models.ContributionFilters,
	pagination models.PaginationAndSorting,
) (models.Paginated[models.Contribution], error) {
	pagination = models.WithPaginationDefaults(pagination, ContributionPaginationDefaults)

	paginationPlusOne := pagination
	paginationPlusOne.Limit++

	contributions, err := usecase.repository.ListContributions(ctx,
		usecase.executorFactory.NewExecutor(), filters, paginationPlusOne)
	if err != nil {
		return models.Paginated[models.Contribution]{}, err
	}
	for _, contribution := range contributions {
		if err := usecase.enforceSecurity.ReadContribution(contribution); err != nil {
			return models.Paginated[models.Contribution]{}, err
		}
	}

	hasNextPage := len(contributions) > pagination.Limit
	if hasNextPage {
		contributions = contributions[:pagination.Limit]
	}
	return models.Paginated[models.Contribution]{Items: contributions, HasNextPage: hasNextPage}, nil
}

func (usecase *ContributionUseCase) CreateContribution(
	ctx context.Context,
	attributes models.CreateContributionAttributes,
) (models.Contribution, error) {
	if err := usecase.enforceSecurity.CreateContribution(); err != nil {
		return models.Contribution{}, err
	}
	if attributes.Amount <= 0 {
		return models.Contribution{}, errors.Wrap(models.BadParameterError,
			"contribution amount must be positive")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Contribution, error) {
			c, err := usecase.repository.GetCaseById(ctx, tx, attributes.CaseId)
			if err != nil {
				return models.Contribution{}, err
			}
			if !c.AcceptsContributions() {
				return models.Contribution{}, errors.Wrapf(models.ErrCaseNotAcceptingContributions,
					"case is in status '%s'", c.Status)
			}
			if attributes.Currency != c.Currency {
				return models.Contribution{}, errors.Wrapf(models.ErrCurrencyMismatch,
					"case currency is '%s', got '%s'", c.Currency, attributes.Currency)
			}

			newContributionId := uuid.NewString()
			if err := usecase.repository.CreateContribution(ctx, tx, attributes, newContributionId); err != nil {
				return models.Contribution{}, err
			}
			return usecase.repository.GetContributionById(ctx, tx, newContributionId)
		})
}

// ReviewContribution approves or rejects a pending contribution. On approval
// the case's collected amount is incremented and the case becomes funded once
// the target is reached, all inside one transaction. The contributor is
// notified after commit.
func (usecase *ContributionUseCase) ReviewContribution(
	ctx context.Context,
	attributes models.ReviewContributionAttributes,
) (models.Contribution, error) {
	if err := usecase.enforceSecurity.ReviewContribution(); err != nil {
		return models.Contribution{}, err
	}

	status := models.ContributionRejected
	if attributes.Approve {
		status = models.ContributionApproved
	}

	contribution, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Contribution, error) {
			current, err := usecase.repository.GetContributionById(ctx, tx, attributes.ContributionId)
			if err != nil {
				return models.Contribution{}, err
			}
			if current.Status.IsReviewed() {
				return models.Contribution{}, errors.Wrapf(models.ErrContributionAlreadyReviewed,
					"contribution is already '%s'", current.Status)
			}

			c, err := usecase.repository.GetCaseById(ctx, tx, current.CaseId)
			if err != nil {
				return models.Contribution{}, err
			}
			if attributes.Approve && !c.AcceptsContributions() {
				return models.Contribution{}, errors.Wrapf(models.ErrCaseNotAcceptingContributions,
					"cannot approve a contribution on a case in status '%s'", c.Status)
			}

			reviewed, err := usecase.repository.ReviewContribution(ctx, tx,
				attributes.ContributionId, status, attributes.ReviewerId, attributes.ReviewNote)
			if err != nil {
				return models.Contribution{}, err
			}
			if reviewed == nil {
				// a concurrent review won the race
				return models.Contribution{}, errors.Wrap(models.ErrContributionAlreadyReviewed,
					"contribution was reviewed concurrently")
			}

			eventType := models.CaseContributionRejected
			if attributes.Approve {
				eventType = models.CaseContributionApproved

				updated, err := usecase.repository.AddToCaseCollectedAmount(ctx, tx,
					current.CaseId, current.Amount)
				if err != nil {
					return models.Contribution{}, err
				}
				if updated.IsFunded() {
					if err := usecase.repository.UpdateCaseStatus(ctx, tx,
						updated.Id, models.CaseFunded); err != nil {
						return models.Contribution{}, err
					}
				}
			}

			err = usecase.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:    current.CaseId,
				UserId:    attributes.ReviewerId,
				EventType: eventType,
				NewValue:  utils.Ptr(current.Id),
			})
			if err != nil {
				return models.Contribution{}, err
			}

			return *reviewed, nil
		})
	if err != nil {
		return models.Contribution{}, err
	}

	if usecase.notifier != nil {
		kind := models.NotificationContributionRejected
		title := "Your donation was declined"
		if attributes.Approve {
			kind = models.NotificationContributionApproved
			title = "Your donation was approved"
		}
		usecase.notifier.NotifyUser(ctx, models.CreateNotificationAttributes{
			UserId: contribution.ContributorId,
			Kind:   kind,
			Title:  title,
			Body:   attributes.ReviewNote,
			Data: map[string]string{
				"contribution_id": contribution.Id,
				"case_id":         contribution.CaseId,
				"amount":          fmt.Sprintf("%d", contribution.Amount),
			},
		})
	}

	return contribution, nil
}

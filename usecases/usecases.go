package usecases

import (
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/usecases/executor_factory"
	"github.com/amanahq/amana-backend/usecases/token"
)

type Usecases struct {
	Repositories        repositories.Repositories
	appName             string
	apiVersion          string
	caseFilesBucketUrl  string
	tokenLifetimeMinute int
	settingCache        *expirable.LRU[string, models.Setting]
}

type Option func(*options)

func WithAppName(appName string) Option {
	return func(o *options) {
		o.appName = appName
	}
}

func WithApiVersion(apiVersion string) Option {
	return func(o *options) {
		o.apiVersion = apiVersion
	}
}

func WithCaseFilesBucketUrl(bucket string) Option {
	return func(o *options) {
		o.caseFilesBucketUrl = bucket
	}
}

func WithTokenLifetimeMinute(minutes int) Option {
	return func(o *options) {
		o.tokenLifetimeMinute = minutes
	}
}

type options struct {
	appName             string
	apiVersion          string
	caseFilesBucketUrl  string
	tokenLifetimeMinute int
}

const defaultTokenLifetimeMinute = 60

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.tokenLifetimeMinute == 0 {
		o.tokenLifetimeMinute = defaultTokenLifetimeMinute
	}
	return Usecases{
		Repositories:        repositories,
		appName:             o.appName,
		apiVersion:          o.apiVersion,
		caseFilesBucketUrl:  o.caseFilesBucketUrl,
		tokenLifetimeMinute: o.tokenLifetimeMinute,
		settingCache:        NewSettingCache(),
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTokenGenerator() token.Generator {
	return token.NewGenerator(
		usecases.Repositories.AmanaDbRepository,
		usecases.Repositories.JwtRepository,
		usecases.Repositories.FirebaseTokenRepository,
		usecases.NewExecutorFactory(),
		usecases.Repositories.Clock,
		usecases.tokenLifetimeMinute,
	)
}

func (usecases *Usecases) NewTokenValidator() token.Validator {
	return token.NewValidator(usecases.Repositories.JwtRepository)
}

func (usecases *Usecases) NewSeedUseCase() SeedUseCase {
	return SeedUseCase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.AmanaDbRepository,
	}
}

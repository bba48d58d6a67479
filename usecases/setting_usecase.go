package usecases

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/usecases/executor_factory"
	"github.com/amanahq/amana-backend/usecases/security"
)

const (
	settingCacheSize = 64
	settingCacheTTL  = time.Minute
)

// settingsReader exposes the typed accessors other usecases need without
// giving them write access.
type settingsReader interface {
	TargetLanguages(ctx context.Context) ([]string, error)
	MaxUploadSizeMb(ctx context.Context) (int, error)
	AllowedFileTypes(ctx context.Context) ([]string, error)
	PushEnabled(ctx context.Context) (bool, error)
	DefaultCurrency(ctx context.Context) (string, error)
}

type SettingUseCaseRepository interface {
	ListSettings(ctx context.Context, exec repositories.Executor) ([]models.Setting, error)
	GetSettingByKey(ctx context.Context, exec repositories.Executor, key string) (*models.Setting, error)
	UpsertSetting(ctx context.Context, exec repositories.Executor,
		attributes models.UpsertSettingAttributes) (models.Setting, error)
}

type SettingUseCase struct {
	enforceSecurity security.EnforceSecuritySetting
	executorFactory executor_factory.ExecutorFactory
	repository      SettingUseCaseRepository
	cache           *expirable.LRU[string, models.Setting]
}

// NewSettingCache builds the process-wide setting cache, shared by the
// per-request usecase instances.
func NewSettingCache() *expirable.LRU[string, models.Setting] {
	return expirable.NewLRU[string, models.Setting](settingCacheSize, nil, settingCacheTTL)
}

func NewSettingUseCase(
	enforceSecurity security.EnforceSecuritySetting,
	executorFactory executor_factory.ExecutorFactory,
	repository SettingUseCaseRepository,
	cache *expirable.LRU[string, models.Setting],
) *SettingUseCase {
	return &SettingUseCase{
		enforceSecurity: enforceSecurity,
		executorFactory: executorFactory,
		repository:      repository,
		cache:           cache,
	}
}

func (usecase *SettingUseCase) ListSettings(ctx context.Context) ([]models.Setting, error) {
	if err := usecase.enforceSecurity.ReadSetting(); err != nil {
		return nil, err
	}
	return usecase.repository.ListSettings(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *SettingUseCase) GetSetting(ctx context.Context, key string) (models.Setting, error) {
	if err := usecase.enforceSecurity.ReadSetting(); err != nil {
		return models.Setting{}, err
	}
	return usecase.getSetting(ctx, key)
}

func (usecase *SettingUseCase) getSetting(ctx context.Context, key string) (models.Setting, error) {
	if setting, ok := usecase.cache.Get(key); ok {
		return setting, nil
	}

	setting, err := usecase.repository.GetSettingByKey(ctx, usecase.executorFactory.NewExecutor(), key)
	if err != nil {
		return models.Setting{}, err
	}
	if setting == nil {
		return models.Setting{}, errors.Wrapf(models.NotFoundError, "setting '%s' not found", key)
	}

	usecase.cache.Add(key, *setting)
	return *setting, nil
}

func (usecase *SettingUseCase) UpsertSetting(
	ctx context.Context,
	attributes models.UpsertSettingAttributes,
) (models.Setting, error) {
	if err := usecase.enforceSecurity.WriteSetting(); err != nil {
		return models.Setting{}, err
	}
	if attributes.Key == "" {
		return models.Setting{}, errors.Wrap(models.BadParameterError, "setting key is required")
	}
	if attributes.ValueType == models.SettingValueUnknown {
		return models.Setting{}, errors.Wrap(models.BadParameterError, "unknown setting value type")
	}
	if err := validateSettingValue(attributes.Value, attributes.ValueType); err != nil {
		return models.Setting{}, err
	}

	setting, err := usecase.repository.UpsertSetting(ctx, usecase.executorFactory.NewExecutor(), attributes)
	if err != nil {
		return models.Setting{}, err
	}

	usecase.cache.Remove(attributes.Key)
	return setting, nil
}

func validateSettingValue(value string, valueType models.SettingValueType) error {
	switch valueType {
	case models.SettingValueInt:
		if _, err := strconv.Atoi(value); err != nil {
			return errors.Wrapf(models.BadParameterError, "'%s' is not an integer", value)
		}
	case models.SettingValueBool:
		if _, err := strconv.ParseBool(value); err != nil {
			return errors.Wrapf(models.BadParameterError, "'%s' is not a boolean", value)
		}
	case models.SettingValueJson:
		if !json.Valid([]byte(value)) {
			return errors.Wrap(models.BadParameterError, "value is not valid json")
		}
	}
	return nil
}

// Typed accessors for the well-known keys, with defaults when the row is
// absent.

func (usecase *SettingUseCase) TargetLanguages(ctx context.Context) ([]string, error) {
	value, err := usecase.settingValueOrDefault(ctx, models.SettingTargetLanguages, "")
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}

	var languages []string
	if err := json.Unmarshal([]byte(value), &languages); err != nil {
		// legacy comma-separated format
		languages = strings.Split(value, ",")
		for i := range languages {
			languages[i] = strings.TrimSpace(languages[i])
		}
	}
	return languages, nil
}

func (usecase *SettingUseCase) MaxUploadSizeMb(ctx context.Context) (int, error) {
	value, err := usecase.settingValueOrDefault(ctx, models.SettingMaxUploadSizeMb, "10")
	if err != nil {
		return 0, err
	}
	size, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s setting", models.SettingMaxUploadSizeMb)
	}
	return size, nil
}

func (usecase *SettingUseCase) AllowedFileTypes(ctx context.Context) ([]string, error) {
	value, err := usecase.settingValueOrDefault(ctx, models.SettingAllowedFileTypes,
		`["pdf","png","jpg","jpeg","webp","mp4"]`)
	if err != nil {
		return nil, err
	}
	var fileTypes []string
	if err := json.Unmarshal([]byte(value), &fileTypes); err != nil {
		return nil, errors.Wrapf(err, "invalid %s setting", models.SettingAllowedFileTypes)
	}
	return fileTypes, nil
}

func (usecase *SettingUseCase) PushEnabled(ctx context.Context) (bool, error) {
	value, err := usecase.settingValueOrDefault(ctx, models.SettingPushEnabled, "true")
	if err != nil {
		return false, err
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(err, "invalid %s setting", models.SettingPushEnabled)
	}
	return enabled, nil
}

func (usecase *SettingUseCase) DefaultCurrency(ctx context.Context) (string, error) {
	return usecase.settingValueOrDefault(ctx, models.SettingDefaultCurrency, "USD")
}

func (usecase *SettingUseCase) settingValueOrDefault(ctx context.Context, key, defaultValue string) (string, error) {
	setting, err := usecase.getSetting(ctx, key)
	if errors.Is(err, models.NotFoundError) {
		return defaultValue, nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

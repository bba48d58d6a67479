package repositories

import (
	"context"

	"cloud.google.com/go/translate"
	"github.com/cockroachdb/errors"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/amanahq/amana-backend/utils"
)

type Translator interface {
	Translate(ctx context.Context, texts []string, sourceLanguage, targetLanguage string) ([]string, error)
}

type translationRepository struct {
	client *translate.Client
}

func NewTranslationRepository(ctx context.Context, opts ...option.ClientOption) (Translator, error) {
	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create translation client")
	}
	return &translationRepository{client: client}, nil
}

func (repo *translationRepository) Translate(
	ctx context.Context,
	texts []string,
	sourceLanguage, targetLanguage string,
) ([]string, error) {
	source, err := language.Parse(sourceLanguage)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid source language '%s'", sourceLanguage)
	}
	target, err := language.Parse(targetLanguage)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid target language '%s'", targetLanguage)
	}

	translations, err := repo.client.Translate(ctx, texts, target, &translate.Options{
		Source: source,
		Format: translate.Text,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to translate to '%s'", targetLanguage)
	}

	return utils.Map(translations, func(t translate.Translation) string { return t.Text }), nil
}

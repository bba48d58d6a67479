package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"
)

const defaultGenAiModel = "gemini-2.0-flash"

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type genAiRepository struct {
	client *genai.Client
	model  string
}

func NewGenAiRepository(ctx context.Context, apiKey, model string) (TextGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("genai api key is required")
	}
	if model == "" {
		model = defaultGenAiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	return &genAiRepository{
		client: client,
		model:  model,
	}, nil
}

func (repo *genAiRepository) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := repo.client.Models.GenerateContent(ctx, repo.model, genai.Text(prompt), nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate content")
	}
	return resp.Text(), nil
}

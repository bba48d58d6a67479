package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/amanahq/amana-backend/models"
)

type BlobRepository struct {
	mock.Mock
}

func (m *BlobRepository) GetBlob(ctx context.Context, bucketUrl, fileName string) (models.Blob, error) {
	args := m.Called(ctx, bucketUrl, fileName)
	return args.Get(0).(models.Blob), args.Error(1)
}

func (m *BlobRepository) OpenStream(ctx context.Context, bucketUrl, fileName string) (io.WriteCloser, error) {
	args := m.Called(ctx, bucketUrl, fileName)
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

func (m *BlobRepository) DeleteFile(ctx context.Context, bucketUrl, fileName string) error {
	args := m.Called(ctx, bucketUrl, fileName)
	return args.Error(0)
}

func (m *BlobRepository) GenerateSignedUrl(ctx context.Context, bucketUrl, fileName string) (string, error) {
	args := m.Called(ctx, bucketUrl, fileName)
	return args.String(0), args.Error(1)
}

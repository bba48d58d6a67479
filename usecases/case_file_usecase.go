package usecases

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/usecases/executor_factory"
	"github.com/amanahq/amana-backend/usecases/security"
	"github.com/amanahq/amana-backend/utils"
)

type CaseFileUseCaseRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error)
	CreateCaseFile(ctx context.Context, exec repositories.Executor, input models.CreateDbCaseFileInput) error
	GetCaseFileById(ctx context.Context, exec repositories.Executor, caseFileId string) (models.CaseFile, error)
	GetCaseFilesByCaseId(ctx context.Context, exec repositories.Executor, caseId string) ([]models.CaseFile, error)
	DeleteCaseFile(ctx context.Context, exec repositories.Executor, caseFileId string) error
	CreateCaseEvent(ctx context.Context, exec repositories.Executor,
		attributes models.CreateCaseEventAttributes) error
}

type CaseFileUseCase struct {
	enforceSecurity    security.EnforceSecurityCase
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         CaseFileUseCaseRepository
	blobRepository     repositories.BlobRepository
	settings           settingsReader
	bucketUrl          string
}

// CreateCaseFile streams the uploaded file to blob storage, then records the
// case_files row and the audit event in one transaction. The blob is cleaned
// up on failure.
func (usecase *CaseFileUseCase) CreateCaseFile(
	ctx context.Context,
	userId models.UserId,
	input models.CreateCaseFileInput,
) (models.CaseFile, error) {
	exec := usecase.executorFactory.NewExecutor()
	c, err := usecase.repository.GetCaseById(ctx, exec, input.CaseId)
	if err != nil {
		return models.CaseFile{}, err
	}
	if err := usecase.enforceSecurity.UploadCaseFile(c); err != nil {
		return models.CaseFile{}, err
	}
	if err := usecase.validateFile(ctx, input.File); err != nil {
		return models.CaseFile{}, err
	}

	newFileReference := fmt.Sprintf("cases/%s/%s", input.CaseId, uuid.NewString())
	if err := usecase.writeToBlobStorage(ctx, input.File, newFileReference); err != nil {
		return models.CaseFile{}, err
	}

	newCaseFileId := uuid.NewString()
	err = usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		err := usecase.repository.CreateCaseFile(ctx, tx, models.CreateDbCaseFileInput{
			Id:            newCaseFileId,
			CaseId:        input.CaseId,
			BucketName:    usecase.bucketUrl,
			FileReference: newFileReference,
			FileName:      input.File.Filename,
			ContentType:   input.File.Header.Get("Content-Type"),
			SizeBytes:     input.File.Size,
		})
		if err != nil {
			return err
		}

		return usecase.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:    input.CaseId,
			UserId:    userId,
			EventType: models.CaseFileAdded,
			NewValue:  &input.File.Filename,
		})
	})
	if err != nil {
		logger := utils.LoggerFromContext(ctx)
		if deleteErr := usecase.blobRepository.DeleteFile(ctx, usecase.bucketUrl,
			newFileReference); deleteErr != nil {
			logger.WarnContext(ctx, "failed to clean up blob after case file creation failed",
				"bucket", usecase.bucketUrl,
				"file_reference", newFileReference,
				"error", deleteErr)
		}
		return models.CaseFile{}, err
	}

	return usecase.repository.GetCaseFileById(ctx, exec, newCaseFileId)
}

func (usecase *CaseFileUseCase) validateFile(ctx context.Context, file *multipart.FileHeader) error {
	if file == nil || file.Size == 0 {
		return errors.Wrap(models.BadParameterError, "a non-empty file is required")
	}

	maxSizeMb, err := usecase.settings.MaxUploadSizeMb(ctx)
	if err != nil {
		return err
	}
	if file.Size > int64(maxSizeMb)*1024*1024 {
		return errors.Wrapf(models.BadParameterError,
			"file exceeds the %d MB limit", maxSizeMb)
	}

	allowedTypes, err := usecase.settings.AllowedFileTypes(ctx)
	if err != nil {
		return err
	}
	extension := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if !slices.Contains(allowedTypes, extension) {
		return errors.Wrapf(models.BadParameterError,
			"file type '%s' is not allowed", extension)
	}
	return nil
}

func (usecase *CaseFileUseCase) writeToBlobStorage(
	ctx context.Context,
	fileHeader *multipart.FileHeader,
	newFileReference string,
) error {
	writer, err := usecase.blobRepository.OpenStream(ctx, usecase.bucketUrl, newFileReference)
	if err != nil {
		return err
	}
	// Close is a no-op if already called; keep the deferred one to release
	// the writer on early error returns.
	defer writer.Close()

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(models.BadParameterError, err.Error())
	}
	defer file.Close()

	if _, err := io.Copy(writer, file); err != nil {
		return err
	}
	return writer.Close()
}

func (usecase *CaseFileUseCase) GetCaseFileDownloadUrl(ctx context.Context, caseFileId string) (string, error) {
	exec := usecase.executorFactory.NewExecutor()
	file, err := usecase.repository.GetCaseFileById(ctx, exec, caseFileId)
	if err != nil {
		return "", err
	}

	c, err := usecase.repository.GetCaseById(ctx, exec, file.CaseId)
	if err != nil {
		return "", err
	}
	if err := usecase.enforceSecurity.ReadCase(c); err != nil {
		return "", err
	}

	return usecase.blobRepository.GenerateSignedUrl(ctx, file.BucketName, file.FileReference)
}

// DownloadCaseFile streams the blob through the backend, for bucket schemes
// that cannot produce signed urls (file:// in particular). The caller owns
// the returned reader.
func (usecase *CaseFileUseCase) DownloadCaseFile(ctx context.Context, caseFileId string) (models.Blob, error) {
	exec := usecase.executorFactory.NewExecutor()
	file, err := usecase.repository.GetCaseFileById(ctx, exec, caseFileId)
	if err != nil {
		return models.Blob{}, err
	}

	c, err := usecase.repository.GetCaseById(ctx, exec, file.CaseId)
	if err != nil {
		return models.Blob{}, err
	}
	if err := usecase.enforceSecurity.ReadCase(c); err != nil {
		return models.Blob{}, err
	}

	blob, err := usecase.blobRepository.GetBlob(ctx, file.BucketName, file.FileReference)
	if err != nil {
		return models.Blob{}, err
	}
	blob.FileName = file.FileName
	return blob, nil
}

// DeleteCaseFile removes the row; the blob deletion is best-effort.
func (usecase *CaseFileUseCase) DeleteCaseFile(ctx context.Context, userId models.UserId, caseFileId string) error {
	exec := usecase.executorFactory.NewExecutor()
	file, err := usecase.repository.GetCaseFileById(ctx, exec, caseFileId)
	if err != nil {
		return err
	}

	c, err := usecase.repository.GetCaseById(ctx, exec, file.CaseId)
	if err != nil {
		return err
	}
	if err := usecase.enforceSecurity.UploadCaseFile(c); err != nil {
		return err
	}

	err = usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if err := usecase.repository.DeleteCaseFile(ctx, tx, caseFileId); err != nil {
			return err
		}
		return usecase.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:    file.CaseId,
			UserId:    userId,
			EventType: models.CaseFileRemoved,
			NewValue:  &file.FileName,
		})
	})
	if err != nil {
		return err
	}

	if deleteErr := usecase.blobRepository.DeleteFile(ctx, file.BucketName, file.FileReference); deleteErr != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx, "failed to delete blob of removed case file",
			"bucket", file.BucketName,
			"file_reference", file.FileReference,
			"error", deleteErr)
	}
	return nil
}

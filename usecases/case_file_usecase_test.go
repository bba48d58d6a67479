package usecases

import (
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/amanahq/amana-backend/mocks"
	"github.com/amanahq/amana-backend/models"
)

type CaseFileUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.CaseFileRepository
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	transaction        *mocks.Transaction
	executor           *mocks.Executor
	enforceSecurity    *mocks.EnforceSecurity
	blobRepository     *mocks.BlobRepository
	settings           *mocks.SettingsReader

	activeCase models.Case
	caseFile   models.CaseFile
	ctx        context.Context
}

func (suite *CaseFileUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.CaseFileRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.executor = new(mocks.Executor)
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.blobRepository = new(mocks.BlobRepository)
	suite.settings = new(mocks.SettingsReader)

	suite.activeCase = models.Case{Id: "case_id", Status: models.CaseActive}
	suite.caseFile = models.CaseFile{
		Id:            "file_id",
		CaseId:        "case_id",
		BucketName:    "gs://amana-case-files",
		FileReference: "cases/case_id/blob_ref",
		FileName:      "receipt.pdf",
	}
	suite.ctx = context.Background()
}

func (suite *CaseFileUsecaseTestSuite) makeUsecase() *CaseFileUseCase {
	return &CaseFileUseCase{
		enforceSecurity:    suite.enforceSecurity,
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		blobRepository:     suite.blobRepository,
		settings:           suite.settings,
		bucketUrl:          "gs://amana-case-files",
	}
}

func (suite *CaseFileUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.transactionFactory.AssertExpectations(t)
	suite.enforceSecurity.AssertExpectations(t)
	suite.blobRepository.AssertExpectations(t)
	suite.settings.AssertExpectations(t)
}

func fileHeader(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{},
	}
}

func (suite *CaseFileUsecaseTestSuite) Test_CreateCaseFile_emptyFile() {
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetCaseById", suite.ctx, suite.executor, "case_id").
		Return(suite.activeCase, nil)
	suite.enforceSecurity.On("UploadCaseFile", suite.activeCase).Return(nil)

	_, err := suite.makeUsecase().CreateCaseFile(suite.ctx, "user_id", models.CreateCaseFileInput{
		CaseId: "case_id",
		File:   fileHeader("receipt.pdf", 0),
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *CaseFileUsecaseTestSuite) Test_CreateCaseFile_tooLarge() {
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetCaseById", suite.ctx, suite.executor, "case_id").
		Return(suite.activeCase, nil)
	suite.enforceSecurity.On("UploadCaseFile", suite.activeCase).Return(nil)
	suite.settings.On("MaxUploadSizeMb", suite.ctx).Return(10, nil)

	_, err := suite.makeUsecase().CreateCaseFile(suite.ctx, "user_id", models.CreateCaseFileInput{
		CaseId: "case_id",
		File:   fileHeader("receipt.pdf", 11*1024*1024),
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *CaseFileUsecaseTestSuite) Test_CreateCaseFile_disallowedType() {
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetCaseById", suite.ctx, suite.executor, "case_id").
		Return(suite.activeCase, nil)
	suite.enforceSecurity.On("UploadCaseFile", suite.activeCase).Return(nil)
	suite.settings.On("MaxUploadSizeMb", suite.ctx).Return(10, nil)
	suite.settings.On("AllowedFileTypes", suite.ctx).Return([]string{"pdf", "png"}, nil)

	_, err := suite.makeUsecase().CreateCaseFile(suite.ctx, "user_id", models.CreateCaseFileInput{
		CaseId: "case_id",
		File:   fileHeader("malware.exe", 1024),
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *CaseFileUsecaseTestSuite) Test_GetCaseFileDownloadUrl_nominal() {
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetCaseFileById", suite.ctx, suite.executor, "file_id").
		Return(suite.caseFile, nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.executor, "case_id").
		Return(suite.activeCase, nil)
	suite.enforceSecurity.On("ReadCase", suite.activeCase).Return(nil)
	suite.blobRepository.On("GenerateSignedUrl", suite.ctx,
		"gs://amana-case-files", "cases/case_id/blob_ref").
		Return("https://signed.example.com/blob_ref", nil)

	url, err := suite.makeUsecase().GetCaseFileDownloadUrl(suite.ctx, "file_id")

	suite.NoError(err)
	suite.Equal("https://signed.example.com/blob_ref", url)
	suite.AssertExpectations()
}

func (suite *CaseFileUsecaseTestSuite) Test_DownloadCaseFile_streamsTheBlob() {
	content := io.NopCloser(strings.NewReader("%PDF-1.7"))

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetCaseFileById", suite.ctx, suite.executor, "file_id").
		Return(suite.caseFile, nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.executor, "case_id").
		Return(suite.activeCase, nil)
	suite.enforceSecurity.On("ReadCase", suite.activeCase).Return(nil)
	suite.blobRepository.On("GetBlob", suite.ctx,
		"gs://amana-case-files", "cases/case_id/blob_ref").
		Return(models.Blob{FileName: "cases/case_id/blob_ref", ReadCloser: content}, nil)

	blob, err := suite.makeUsecase().DownloadCaseFile(suite.ctx, "file_id")

	suite.NoError(err)
	// the stored upload name wins over the blob reference
	suite.Equal("receipt.pdf", blob.FileName)
	data, err := io.ReadAll(blob.ReadCloser)
	suite.NoError(err)
	suite.Equal("%PDF-1.7", string(data))
	suite.AssertExpectations()
}

func (suite *CaseFileUsecaseTestSuite) Test_DeleteCaseFile_nominal() {
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetCaseFileById", suite.ctx, suite.executor, "file_id").
		Return(suite.caseFile, nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.executor, "case_id").
		Return(suite.activeCase, nil)
	suite.enforceSecurity.On("UploadCaseFile", suite.activeCase).Return(nil)
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("DeleteCaseFile", suite.ctx, suite.transaction, "file_id").Return(nil)
	suite.repository.On("CreateCaseEvent", suite.ctx, suite.transaction,
		mock.MatchedBy(func(attrs models.CreateCaseEventAttributes) bool {
			return attrs.EventType == models.CaseFileRemoved
		})).Return(nil)
	suite.blobRepository.On("DeleteFile", suite.ctx,
		"gs://amana-case-files", "cases/case_id/blob_ref").
		Return(nil)

	err := suite.makeUsecase().DeleteCaseFile(suite.ctx, "user_id", "file_id")

	suite.NoError(err)
	suite.AssertExpectations()
}

func TestCaseFileUsecase(t *testing.T) {
	suite.Run(t, new(CaseFileUsecaseTestSuite))
}

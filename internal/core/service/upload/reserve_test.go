package upload_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/LiamCoop/upload-prints/internal/adapters/events"
	"github.com/LiamCoop/upload-prints/internal/adapters/repository"
	"github.com/LiamCoop/upload-prints/internal/adapters/storage"
	"github.com/LiamCoop/upload-prints/internal/config"
	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/LiamCoop/upload-prints/internal/core/port"
	"github.com/LiamCoop/upload-prints/internal/core/service/upload"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var defaultCfg = config.UploadConfig{
	SignedURLTTL:       time.Hour,
	DiagnosticURLTTL:   5 * time.Minute,
	OrderNumberRetries: 3,
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestUploadService_Reserve_Success_CustomerFile(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	mockPublisher := events.NewMockPublisher()
	uploadService := upload.NewUploadService(mockUow, mockStorage, mockPublisher, defaultCfg, discardLogger)

	orderID := uuid.New()
	principal := domain.Principal{ID: "cust-1", Role: domain.RoleCustomer}
	stored := &domain.Order{ID: orderID, OwnerID: "cust-1", Status: domain.OrderStatusReceived}
	uploadURL := "https://minio.example.com/prints/signed-put"

	mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(stored, nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	mockUow.GetFileRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	mockStorage.On("IssueUploadURL", ctx, mock.Anything, defaultCfg.SignedURLTTL).Return(uploadURL, nil)

	// Act
	record, url, err := uploadService.Reserve(ctx, principal, orderID, domain.FileKindCustomer, "my design.png", 2048, "image/png")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, uploadURL, url)
	assert.Equal(t, orderID, record.OrderID)
	assert.Equal(t, domain.UploadStatusPending, record.Status)
	assert.Equal(t, "cust-1", record.UploadedBy)
	assert.Contains(t, record.StorageKey, "uploads/cust-1/")
	assert.Contains(t, record.StorageKey, "my_design.png")

	mockUow.AssertExpectations(t)
	mockUow.GetFileRepoMock().AssertExpectations(t)
	mockStorage.AssertExpectations(t)
}

func TestUploadService_Reserve_Success_StaffProcessedFile(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	mockPublisher := events.NewMockPublisher()
	uploadService := upload.NewUploadService(mockUow, mockStorage, mockPublisher, defaultCfg, discardLogger)

	orderID := uuid.New()
	staff := domain.Principal{ID: "staff-1", Role: domain.RoleStaff}
	// order already in review: processed files are not gated on RECEIVED
	stored := &domain.Order{ID: orderID, OwnerID: "cust-1", Status: domain.OrderStatusReviewing}

	mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(stored, nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	mockUow.GetFileRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	mockStorage.On("IssueUploadURL", ctx, mock.Anything, defaultCfg.SignedURLTTL).Return("https://minio.example.com/signed", nil)

	// Act
	record, url, err := uploadService.Reserve(ctx, staff, orderID, domain.FileKindProcessed, "proof.pdf", 4096, "application/pdf")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, url)
	assert.Contains(t, record.StorageKey, "processed/staff-1/")
}

func TestUploadService_Reserve_Errors(t *testing.T) {
	ctx := context.Background()
	customer := domain.Principal{ID: "cust-1", Role: domain.RoleCustomer}

	newService := func() (*repository.MockUnitOfWork, *storage.MockStorage, port.UploadService) {
		mockUow := repository.NewMockUnitOfWork()
		mockStorage := storage.NewMockStorage()
		mockPublisher := events.NewMockPublisher()
		return mockUow, mockStorage, upload.NewUploadService(mockUow, mockStorage, mockPublisher, defaultCfg, discardLogger)
	}

	t.Run("error - unknown kind", func(t *testing.T) {
		mockUow, _, uploadService := newService()

		record, url, err := uploadService.Reserve(ctx, customer, uuid.New(), domain.FileKind("archive"), "a.png", 10, "image/png")

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, record)
		assert.Empty(t, url)
		mockUow.GetOrderRepoMock().AssertNotCalled(t, "FindByID")
	})

	t.Run("error - blank file name", func(t *testing.T) {
		_, _, uploadService := newService()

		record, _, err := uploadService.Reserve(ctx, customer, uuid.New(), domain.FileKindCustomer, "   ", 10, "image/png")

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, record)
	})

	t.Run("error - non-positive size", func(t *testing.T) {
		_, _, uploadService := newService()

		record, _, err := uploadService.Reserve(ctx, customer, uuid.New(), domain.FileKindCustomer, "a.png", 0, "image/png")

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, record)
	})

	t.Run("error - missing mime type", func(t *testing.T) {
		_, _, uploadService := newService()

		record, _, err := uploadService.Reserve(ctx, customer, uuid.New(), domain.FileKindCustomer, "a.png", 10, "")

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, record)
	})

	t.Run("error - order not found", func(t *testing.T) {
		mockUow, _, uploadService := newService()
		orderID := uuid.New()
		mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(nil, domain.ErrOrderNotFound)

		record, _, err := uploadService.Reserve(ctx, customer, orderID, domain.FileKindCustomer, "a.png", 10, "image/png")

		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.Nil(t, record)
	})

	t.Run("error - other customer's order", func(t *testing.T) {
		mockUow, _, uploadService := newService()
		orderID := uuid.New()
		stored := &domain.Order{ID: orderID, OwnerID: "cust-2", Status: domain.OrderStatusReceived}
		mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(stored, nil)

		record, _, err := uploadService.Reserve(ctx, customer, orderID, domain.FileKindCustomer, "a.png", 10, "image/png")

		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, record)
	})

	t.Run("error - customer reserving processed kind", func(t *testing.T) {
		mockUow, _, uploadService := newService()
		orderID := uuid.New()
		stored := &domain.Order{ID: orderID, OwnerID: "cust-1", Status: domain.OrderStatusReceived}
		mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(stored, nil)

		record, _, err := uploadService.Reserve(ctx, customer, orderID, domain.FileKindProcessed, "a.pdf", 10, "application/pdf")

		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, record)
	})

	t.Run("error - order closed for uploads", func(t *testing.T) {
		mockUow, _, uploadService := newService()
		orderID := uuid.New()
		stored := &domain.Order{ID: orderID, OwnerID: "cust-1", Status: domain.OrderStatusReviewing}
		mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(stored, nil)

		record, _, err := uploadService.Reserve(ctx, customer, orderID, domain.FileKindCustomer, "a.png", 10, "image/png")

		assert.ErrorIs(t, err, domain.ErrOrderClosedForUploads)
		assert.Nil(t, record)
	})

	t.Run("error - storage refuses to sign", func(t *testing.T) {
		mockUow, mockStorage, uploadService := newService()
		orderID := uuid.New()
		stored := &domain.Order{ID: orderID, OwnerID: "cust-1", Status: domain.OrderStatusReceived}
		mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(stored, nil)
		mockUow.On("Execute", ctx, mock.Anything).Return(nil)
		mockUow.GetFileRepoMock().On("Create", ctx, mock.Anything).Return(nil)
		mockStorage.On("IssueUploadURL", ctx, mock.Anything, defaultCfg.SignedURLTTL).Return("", errors.New("minio unreachable"))

		record, url, err := uploadService.Reserve(ctx, customer, orderID, domain.FileKindCustomer, "a.png", 10, "image/png")

		require.Error(t, err)
		assert.Nil(t, record)
		assert.Empty(t, url)
	})
}

func TestUploadService_Reserve_KeyEmbedsTimestamp(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	mockPublisher := events.NewMockPublisher()
	uploadService := upload.NewUploadService(mockUow, mockStorage, mockPublisher, defaultCfg, discardLogger)

	orderID := uuid.New()
	principal := domain.Principal{ID: "cust-1", Role: domain.RoleCustomer}
	stored := &domain.Order{ID: orderID, OwnerID: "cust-1", Status: domain.OrderStatusReceived}

	mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(stored, nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	mockUow.GetFileRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	mockStorage.On("IssueUploadURL", ctx, mock.Anything, defaultCfg.SignedURLTTL).Return("https://example.com", nil)

	before := time.Now().UnixMilli()

	// Act
	record, _, err := uploadService.Reserve(ctx, principal, orderID, domain.FileKindCustomer, "a.png", 10, "image/png")

	// Assert
	after := time.Now().UnixMilli()
	require.NoError(t, err)
	var millis int64
	var rest string
	_, scanErr := fmt.Sscanf(record.StorageKey, "uploads/cust-1/%d-%s", &millis, &rest)
	require.NoError(t, scanErr)
	assert.GreaterOrEqual(t, millis, before)
	assert.LessOrEqual(t, millis, after)
	assert.Equal(t, "a.png", rest)
}

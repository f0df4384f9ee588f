package download_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/LiamCoop/upload-prints/internal/adapters/repository"
	"github.com/LiamCoop/upload-prints/internal/adapters/storage"
	"github.com/LiamCoop/upload-prints/internal/config"
	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/LiamCoop/upload-prints/internal/core/service/download"

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

func TestDownloadService_IssueBatch_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	downloadService := download.NewDownloadService(mockUow, mockStorage, defaultCfg, discardLogger)

	orderID := uuid.New()
	customer := domain.Principal{ID: "cust-1", Role: domain.RoleCustomer}
	storedOrder := &domain.Order{ID: orderID, OwnerID: "cust-1", Status: domain.OrderStatusReceived}
	records := []domain.FileRecord{
		{ID: uuid.New(), OrderID: orderID, Kind: domain.FileKindCustomer, FileName: "front.png", StorageKey: "uploads/cust-1/1-front.png", Status: domain.UploadStatusCompleted},
		{ID: uuid.New(), OrderID: orderID, Kind: domain.FileKindCustomer, FileName: "back.png", StorageKey: "uploads/cust-1/2-back.png", Status: domain.UploadStatusCompleted},
	}

	mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(storedOrder, nil)
	mockUow.GetFileRepoMock().On("ListByOrder", ctx, orderID, domain.FileKindCustomer, true).Return(records, nil)
	mockStorage.On("IssueDownloadURL", mock.Anything, "uploads/cust-1/1-front.png", defaultCfg.SignedURLTTL).Return("https://signed/front", nil)
	mockStorage.On("IssueDownloadURL", mock.Anything, "uploads/cust-1/2-back.png", defaultCfg.SignedURLTTL).Return("https://signed/back", nil)

	// Act
	links, err := downloadService.IssueBatch(ctx, customer, orderID, domain.FileKindCustomer)

	// Assert
	require.NoError(t, err)
	require.Len(t, links, 2)
	// listing order (creation time ascending) survives concurrent signing
	assert.Equal(t, "front.png", links[0].FileName)
	assert.Equal(t, "https://signed/front", links[0].URL)
	assert.Equal(t, "back.png", links[1].FileName)
	assert.Equal(t, "https://signed/back", links[1].URL)

	mockStorage.AssertExpectations(t)
}

func TestDownloadService_IssueBatch_EmptyOrder(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	downloadService := download.NewDownloadService(mockUow, mockStorage, defaultCfg, discardLogger)

	orderID := uuid.New()
	customer := domain.Principal{ID: "cust-1", Role: domain.RoleCustomer}
	storedOrder := &domain.Order{ID: orderID, OwnerID: "cust-1", Status: domain.OrderStatusReceived}

	mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(storedOrder, nil)
	mockUow.GetFileRepoMock().On("ListByOrder", ctx, orderID, domain.FileKindCustomer, true).Return([]domain.FileRecord{}, nil)

	// Act
	links, err := downloadService.IssueBatch(ctx, customer, orderID, domain.FileKindCustomer)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, links)
	mockStorage.AssertNotCalled(t, "IssueDownloadURL")
}

func TestDownloadService_IssueBatch_SingleSigningFailureFailsBatch(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	downloadService := download.NewDownloadService(mockUow, mockStorage, defaultCfg, discardLogger)

	orderID := uuid.New()
	staff := domain.Principal{ID: "staff-1", Role: domain.RoleStaff}
	storedOrder := &domain.Order{ID: orderID, OwnerID: "cust-1", Status: domain.OrderStatusReviewing}
	records := []domain.FileRecord{
		{ID: uuid.New(), OrderID: orderID, Kind: domain.FileKindProcessed, FileName: "proof.pdf", StorageKey: "processed/staff-1/1-proof.pdf", Status: domain.UploadStatusCompleted},
		{ID: uuid.New(), OrderID: orderID, Kind: domain.FileKindProcessed, FileName: "final.pdf", StorageKey: "processed/staff-1/2-final.pdf", Status: domain.UploadStatusCompleted},
	}

	mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(storedOrder, nil)
	mockUow.GetFileRepoMock().On("ListByOrder", ctx, orderID, domain.FileKindProcessed, true).Return(records, nil)
	mockStorage.On("IssueDownloadURL", mock.Anything, "processed/staff-1/1-proof.pdf", defaultCfg.SignedURLTTL).Return("https://signed/proof", nil).Maybe()
	mockStorage.On("IssueDownloadURL", mock.Anything, "processed/staff-1/2-final.pdf", defaultCfg.SignedURLTTL).Return("", errors.New("minio unreachable"))

	// Act
	links, err := downloadService.IssueBatch(ctx, staff, orderID, domain.FileKindProcessed)

	// Assert
	require.Error(t, err)
	assert.Nil(t, links)
}

func TestDownloadService_IssueBatch_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("error - unknown kind", func(t *testing.T) {
		// Arrange
		mockUow := repository.NewMockUnitOfWork()
		mockStorage := storage.NewMockStorage()
		downloadService := download.NewDownloadService(mockUow, mockStorage, defaultCfg, discardLogger)

		// Act
		links, err := downloadService.IssueBatch(ctx, domain.Principal{ID: "cust-1", Role: domain.RoleCustomer}, uuid.New(), domain.FileKind(""))

		// Assert
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, links)
	})

	t.Run("error - customer requesting processed files", func(t *testing.T) {
		// Arrange
		mockUow := repository.NewMockUnitOfWork()
		mockStorage := storage.NewMockStorage()
		downloadService := download.NewDownloadService(mockUow, mockStorage, defaultCfg, discardLogger)

		orderID := uuid.New()
		storedOrder := &domain.Order{ID: orderID, OwnerID: "cust-1", Status: domain.OrderStatusCompleted}
		mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(storedOrder, nil)

		// Act
		links, err := downloadService.IssueBatch(ctx, domain.Principal{ID: "cust-1", Role: domain.RoleCustomer}, orderID, domain.FileKindProcessed)

		// Assert
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, links)
		mockUow.GetFileRepoMock().AssertNotCalled(t, "ListByOrder")
	})

	t.Run("error - other customer's order", func(t *testing.T) {
		// Arrange
		mockUow := repository.NewMockUnitOfWork()
		mockStorage := storage.NewMockStorage()
		downloadService := download.NewDownloadService(mockUow, mockStorage, defaultCfg, discardLogger)

		orderID := uuid.New()
		storedOrder := &domain.Order{ID: orderID, OwnerID: "cust-2", Status: domain.OrderStatusReceived}
		mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(storedOrder, nil)

		// Act
		links, err := downloadService.IssueBatch(ctx, domain.Principal{ID: "cust-1", Role: domain.RoleCustomer}, orderID, domain.FileKindCustomer)

		// Assert
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, links)
	})

	t.Run("error - order not found", func(t *testing.T) {
		// Arrange
		mockUow := repository.NewMockUnitOfWork()
		mockStorage := storage.NewMockStorage()
		downloadService := download.NewDownloadService(mockUow, mockStorage, defaultCfg, discardLogger)

		orderID := uuid.New()
		mockUow.GetOrderRepoMock().On("FindByID", ctx, orderID).Return(nil, domain.ErrOrderNotFound)

		// Act
		links, err := downloadService.IssueBatch(ctx, domain.Principal{ID: "cust-1", Role: domain.RoleCustomer}, orderID, domain.FileKindCustomer)

		// Assert
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.Nil(t, links)
	})
}

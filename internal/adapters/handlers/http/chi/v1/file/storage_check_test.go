package file_test

import (
	"encoding/json"
	http2 "net/http"
	"net/http/httptest"
	"testing"

	file2 "github.com/LiamCoop/upload-prints/internal/adapters/handlers/http/chi/v1/file"
	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/LiamCoop/upload-prints/internal/core/service/download"
	"github.com/LiamCoop/upload-prints/internal/core/service/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStorageCheckV1_Success(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {
		//Arrange
		principal := domain.Principal{ID: "staff-1", Role: domain.RoleStaff}
		report := &domain.StorageCheckReport{
			ProbeKey:        "uploads/diagnostic/1700000000000-probe.txt",
			UploadURLIssued: true,
			ProbeExists:     false,
		}

		mockDownload := download.NewMockDownloadService()
		mockDownload.On("StorageCheck", mock.Anything, principal).Return(report, nil)

		h := newTestRouter(upload.NewMockUploadService(), mockDownload)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/storage/check", nil)
		req.Header.Set("Authorization", authHeader(t, principal))

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		mockDownload.AssertExpectations(t)
		var response file2.V1StorageCheckResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, report.ProbeKey, response.ProbeKey)
		assert.True(t, response.UploadURLIssued)
		assert.False(t, response.ProbeExists)
	})
}

func TestStorageCheckV1_Errors(t *testing.T) {

	t.Run("error - customer denied", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{ID: "cust-1", Role: domain.RoleCustomer}
		mockDownload := download.NewMockDownloadService()
		mockDownload.On("StorageCheck", mock.Anything, principal).Return(nil, domain.ErrForbidden)

		h := newTestRouter(upload.NewMockUploadService(), mockDownload)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/storage/check", nil)
		req.Header.Set("Authorization", authHeader(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusForbidden, w.Code)
	})

	t.Run("error - storage unreachable", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{ID: "staff-1", Role: domain.RoleStaff}
		mockDownload := download.NewMockDownloadService()
		mockDownload.On("StorageCheck", mock.Anything, principal).Return(nil, assert.AnError)

		h := newTestRouter(upload.NewMockUploadService(), mockDownload)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/storage/check", nil)
		req.Header.Set("Authorization", authHeader(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
	})

	t.Run("error - missing bearer token", func(t *testing.T) {
		// Arrange
		mockDownload := download.NewMockDownloadService()
		h := newTestRouter(upload.NewMockUploadService(), mockDownload)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/storage/check", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusUnauthorized, w.Code)
		mockDownload.AssertNotCalled(t, "StorageCheck")
	})
}

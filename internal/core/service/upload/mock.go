package upload

import (
	"context"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUploadService struct {
	mock.Mock
}

func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) Reserve(ctx context.Context, principal domain.Principal, orderID uuid.UUID, kind domain.FileKind, fileName string, fileSize int64, mimeType string) (*domain.FileRecord, string, error) {
	args := m.Called(ctx, principal, orderID, kind, fileName, fileSize, mimeType)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.FileRecord), args.String(1), args.Error(2)
}

func (m *MockUploadService) Confirm(ctx context.Context, principal domain.Principal, orderID, fileID uuid.UUID, kind domain.FileKind) (*domain.FileRecord, error) {
	args := m.Called(ctx, principal, orderID, fileID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

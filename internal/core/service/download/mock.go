package download

import (
	"context"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockDownloadService struct {
	mock.Mock
}

func NewMockDownloadService() *MockDownloadService {
	return &MockDownloadService{}
}

func (m *MockDownloadService) IssueBatch(ctx context.Context, principal domain.Principal, orderID uuid.UUID, kind domain.FileKind) ([]domain.DownloadLink, error) {
	args := m.Called(ctx, principal, orderID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DownloadLink), args.Error(1)
}

func (m *MockDownloadService) StorageCheck(ctx context.Context, principal domain.Principal) (*domain.StorageCheckReport, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StorageCheckReport), args.Error(1)
}

package events

import (
	"context"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockPublisher struct {
	mock.Mock
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) PublishOrderCreated(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPublisher) PublishOrderStatusChanged(ctx context.Context, order domain.Order, previous domain.OrderStatus) error {
	args := m.Called(ctx, order, previous)
	return args.Error(0)
}

func (m *MockPublisher) PublishUploadConfirmed(ctx context.Context, record domain.FileRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

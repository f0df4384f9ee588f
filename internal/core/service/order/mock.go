package order

import (
	"context"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockOrderService struct {
	mock.Mock
}

func NewMockOrderService() *MockOrderService {
	return &MockOrderService{}
}

func (m *MockOrderService) Create(ctx context.Context, principal domain.Principal, description string) (*domain.Order, error) {
	args := m.Called(ctx, principal, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, principal domain.Principal, orderID uuid.UUID) (*domain.Order, error) {
	args := m.Called(ctx, principal, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, principal domain.Principal, status *domain.OrderStatus) ([]domain.Order, error) {
	args := m.Called(ctx, principal, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, principal domain.Principal, orderID uuid.UUID, next domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, principal, orderID, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

package port

import (
	"context"
	"time"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/google/uuid"
)

// OrderRepository is an interface to define order repository interactions
type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Order, error)
	FindAll(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error)
	MaxOrderSequence(ctx context.Context, year int) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next domain.OrderStatus, at time.Time) error
}

// OrderService is an interface to define order operations
type OrderService interface {
	Create(ctx context.Context, principal domain.Principal, description string) (*domain.Order, error)
	Get(ctx context.Context, principal domain.Principal, orderID uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, principal domain.Principal, status *domain.OrderStatus) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, principal domain.Principal, orderID uuid.UUID, next domain.OrderStatus) (*domain.Order, error)
}

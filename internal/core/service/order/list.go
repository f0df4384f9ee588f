package order

import (
	"context"
	"fmt"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
)

func (s *orderService) List(ctx context.Context, principal domain.Principal, status *domain.OrderStatus) ([]domain.Order, error) {
	if status != nil && !domain.ValidOrderStatus(*status) {
		return nil, fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, *status)
	}

	// staff see every order; customers only their own
	if principal.IsStaff() {
		return s.uow.OrderRepo().FindAll(ctx, status)
	}

	orders, err := s.uow.OrderRepo().FindByOwner(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return orders, nil
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == *status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

package order

import (
	"context"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/LiamCoop/upload-prints/internal/core/policy"
	"github.com/google/uuid"
)

func (s *orderService) Get(ctx context.Context, principal domain.Principal, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.uow.OrderRepo().FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(principal, policy.ActionReadOrder, order, domain.FileKindCustomer); err != nil {
		return nil, err
	}

	return order, nil
}

package order

import (
	"context"
	"fmt"
	"time"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/LiamCoop/upload-prints/internal/core/policy"
	"github.com/google/uuid"
)

func (s *orderService) UpdateStatus(ctx context.Context, principal domain.Principal, orderID uuid.UUID, next domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(next) {
		return nil, fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, next)
	}

	order, err := s.uow.OrderRepo().FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(principal, policy.ActionUpdateOrderStatus, order, domain.FileKindCustomer); err != nil {
		return nil, err
	}

	if !domain.CanTransition(order.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, next)
	}

	now := time.Now()
	if err := s.uow.OrderRepo().UpdateStatus(ctx, orderID, next, now); err != nil {
		return nil, err
	}

	previous := order.Status
	order.Status = next
	order.UpdatedAt = now
	switch next {
	case domain.OrderStatusReviewing:
		order.ReviewingAt = &now
	case domain.OrderStatusReadyForPrint:
		order.ReadyForPrintAt = &now
	case domain.OrderStatusSentToPrinter:
		order.SentToPrinterAt = &now
	case domain.OrderStatusCompleted:
		order.CompletedAt = &now
	}

	if err := s.publisher.PublishOrderStatusChanged(ctx, *order, previous); err != nil {
		s.logger.Warn("failed to publish order status change", "orderID", order.ID, "error", err)
	}

	return order, nil
}

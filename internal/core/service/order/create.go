package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/LiamCoop/upload-prints/internal/core/port"
	"github.com/google/uuid"
)

func (s *orderService) Create(ctx context.Context, principal domain.Principal, description string) (*domain.Order, error) {

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("%w: description exceeds %d characters", domain.ErrValidation, maxDescriptionLength)
	}

	// Number generation is read-max-then-insert and can lose the race
	// under concurrent creation. The unique constraint on order_number
	// is the backstop: on conflict we re-derive and retry.
	attempts := s.cfg.OrderNumberRetries
	if attempts < 1 {
		attempts = 1
	}

	var created *domain.Order
	for attempt := 0; attempt < attempts; attempt++ {
		now := time.Now()
		order := domain.Order{
			ID:          uuid.New(),
			OwnerID:     principal.ID,
			Description: description,
			Status:      domain.OrderStatusReceived,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
			seq, err := uow.OrderRepo().MaxOrderSequence(ctx, now.Year())
			if err != nil {
				return err
			}
			order.OrderNumber = domain.FormatOrderNumber(now.Year(), seq+1)
			return uow.OrderRepo().Create(ctx, order)
		})

		if errors.Is(txErr, domain.ErrAlreadyExists) {
			s.logger.Warn("order number conflict, retrying", "orderNumber", order.OrderNumber, "attempt", attempt+1)
			continue
		}
		if txErr != nil {
			return nil, fmt.Errorf("could not create order: %w", txErr)
		}

		created = &order
		break
	}

	if created == nil {
		return nil, fmt.Errorf("could not allocate a unique order number after %d attempts", attempts)
	}

	if err := s.publisher.PublishOrderCreated(ctx, *created); err != nil {
		s.logger.Warn("failed to publish order created event", "orderID", created.ID, "error", err)
	}

	return created, nil
}

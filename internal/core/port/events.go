package port

import (
	"context"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
)

// EventPublisher is an interface to notify external collaborators of
// order and file milestones. Publishing is best-effort; callers log
// failures and never fail the business operation on them.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order domain.Order) error
	PublishOrderStatusChanged(ctx context.Context, order domain.Order, previous domain.OrderStatus) error
	PublishUploadConfirmed(ctx context.Context, record domain.FileRecord) error
}

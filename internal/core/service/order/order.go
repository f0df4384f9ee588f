package order

import (
	"log/slog"

	"github.com/LiamCoop/upload-prints/internal/config"
	"github.com/LiamCoop/upload-prints/internal/core/port"
)

const maxDescriptionLength = 5000

type orderService struct {
	uow       port.UnitOfWork
	publisher port.EventPublisher
	cfg       config.UploadConfig
	logger    *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(uow port.UnitOfWork, publisher port.EventPublisher, cfg config.UploadConfig, logger *slog.Logger) port.OrderService {
	return &orderService{uow: uow, publisher: publisher, cfg: cfg, logger: logger}
}

// Package upload orchestrates the reserve/confirm handshake: a slot is
// reserved and presigned, the client PUTs bytes directly to the object
// store, then confirm reconciles the database record against what the
// store actually holds.
package upload

import (
	"log/slog"

	"github.com/LiamCoop/upload-prints/internal/config"
	"github.com/LiamCoop/upload-prints/internal/core/port"
)

type uploadService struct {
	uow       port.UnitOfWork
	storage   port.ObjectStorage
	publisher port.EventPublisher
	cfg       config.UploadConfig
	logger    *slog.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(uow port.UnitOfWork, storage port.ObjectStorage, publisher port.EventPublisher, cfg config.UploadConfig, logger *slog.Logger) port.UploadService {
	return &uploadService{
		uow:       uow,
		storage:   storage,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

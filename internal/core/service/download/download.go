package download

import (
	"log/slog"

	"github.com/LiamCoop/upload-prints/internal/config"
	"github.com/LiamCoop/upload-prints/internal/core/port"
)

type downloadService struct {
	uow     port.UnitOfWork
	storage port.ObjectStorage
	cfg     config.UploadConfig
	logger  *slog.Logger
}

// NewDownloadService creates a new download link service
func NewDownloadService(uow port.UnitOfWork, storage port.ObjectStorage, cfg config.UploadConfig, logger *slog.Logger) port.DownloadService {
	return &downloadService{uow: uow, storage: storage, cfg: cfg, logger: logger}
}

package file

import (
	"log/slog"

	"github.com/LiamCoop/upload-prints/internal/core/port"
	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 file routes. Its routes nest under an
// order; the storage check stands alone.
type HandlerV1 struct {
	uploadService   port.UploadService
	downloadService port.DownloadService
	logger          *slog.Logger
}

// NewFileHandlerV1 creates HandlerV1
func NewFileHandlerV1(uploadService port.UploadService, downloadService port.DownloadService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService:   uploadService,
		downloadService: downloadService,
		logger:          logger,
	}
}

// Routes exposes handler routes, mounted under /orders/{orderID}/files
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/upload-url", h.ReserveUploadV1)
	router.Post("/{fileID}/confirm", h.ConfirmUploadV1)
	router.Get("/download-urls", h.DownloadURLsV1)

	return router
}

package port

import (
	"context"
	"time"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/google/uuid"
)

// FileRepository is an interface to define file record repository interactions
type FileRepository interface {
	Create(ctx context.Context, record domain.FileRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FileRecord, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, storageURL string) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	ListByOrder(ctx context.Context, orderID uuid.UUID, kind domain.FileKind, onlyCompleted bool) ([]domain.FileRecord, error)
}

// ObjectStorage is the narrow interface over the S3-compatible object
// store: signed URL issuance and a metadata-only existence probe.
// Exists returns (false, nil) for an absent object; any other failure
// is reported as an error.
type ObjectStorage interface {
	IssueUploadURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	IssueDownloadURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// UploadService is an interface to define the reserve/confirm upload handshake
type UploadService interface {
	Reserve(ctx context.Context, principal domain.Principal, orderID uuid.UUID, kind domain.FileKind, fileName string, fileSize int64, mimeType string) (*domain.FileRecord, string, error)
	Confirm(ctx context.Context, principal domain.Principal, orderID, fileID uuid.UUID, kind domain.FileKind) (*domain.FileRecord, error)
}

// DownloadService is an interface to define signed download link issuance
type DownloadService interface {
	IssueBatch(ctx context.Context, principal domain.Principal, orderID uuid.UUID, kind domain.FileKind) ([]domain.DownloadLink, error)
	StorageCheck(ctx context.Context, principal domain.Principal) (*domain.StorageCheckReport, error)
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// FileKind distinguishes customer-submitted design files from files
// produced and returned by staff. Both kinds follow the same
// reserve/confirm handshake and status state machine.
type FileKind string

const (
	FileKindCustomer  FileKind = "customer"
	FileKindProcessed FileKind = "processed"
)

// ValidFileKind reports whether k names a known file kind
func ValidFileKind(k FileKind) bool {
	return k == FileKindCustomer || k == FileKindProcessed
}

// UploadStatus represents the status of a reserved file slot.
// Transitions: PENDING -> COMPLETED, PENDING -> FAILED and
// FAILED -> COMPLETED (confirm retry). COMPLETED is terminal.
type UploadStatus string

const (
	UploadStatusPending   UploadStatus = "PENDING"
	UploadStatusCompleted UploadStatus = "COMPLETED"
	UploadStatusFailed    UploadStatus = "FAILED"
)

// FileRecord represents one reserved upload slot and, once confirmed,
// the stored object it refers to
type FileRecord struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Kind       FileKind
	FileName   string
	FileSize   int64
	MimeType   string
	StorageKey string
	StorageURL string
	Status     UploadStatus
	UploadedBy string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

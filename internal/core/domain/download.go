package domain

import "github.com/google/uuid"

// DownloadLink pairs a completed file record with a short-lived signed
// GET URL
type DownloadLink struct {
	FileID   uuid.UUID
	FileName string
	URL      string
}

// StorageCheckReport is the result of the staff-only storage
// diagnostic: a throwaway key is presigned for upload and probed for
// existence (expected absent).
type StorageCheckReport struct {
	ProbeKey        string
	UploadURLIssued bool
	ProbeExists     bool
}

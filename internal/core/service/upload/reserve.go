package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/LiamCoop/upload-prints/internal/core/policy"
	"github.com/LiamCoop/upload-prints/internal/core/port"
	"github.com/google/uuid"
)

func (s *uploadService) Reserve(ctx context.Context, principal domain.Principal, orderID uuid.UUID, kind domain.FileKind, fileName string, fileSize int64, mimeType string) (*domain.FileRecord, string, error) {

	if !domain.ValidFileKind(kind) {
		return nil, "", fmt.Errorf("%w: unknown file kind %q", domain.ErrValidation, kind)
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, "", fmt.Errorf("%w: file name is required", domain.ErrValidation)
	}
	if fileSize <= 0 {
		return nil, "", fmt.Errorf("%w: file size must be positive", domain.ErrValidation)
	}
	if mimeType == "" {
		return nil, "", fmt.Errorf("%w: mime type is required", domain.ErrValidation)
	}

	order, err := s.uow.OrderRepo().FindByID(ctx, orderID)
	if err != nil {
		return nil, "", err
	}

	if err := policy.Authorize(principal, policy.ActionReserveUpload, order, kind); err != nil {
		return nil, "", err
	}

	// customer files are only accepted while the order sits in
	// RECEIVED; staff may attach processed files at any point
	if kind == domain.FileKindCustomer && !order.AcceptsUploads() {
		return nil, "", domain.ErrOrderClosedForUploads
	}

	now := time.Now()
	record := domain.FileRecord{
		ID:         uuid.New(),
		OrderID:    orderID,
		Kind:       kind,
		FileName:   fileName,
		FileSize:   fileSize,
		MimeType:   mimeType,
		StorageKey: domain.DeriveStorageKey(principal.ID, fileName, kind, now),
		Status:     domain.UploadStatusPending,
		UploadedBy: principal.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var uploadURL string
	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if err := uow.FileRepo().Create(ctx, record); err != nil {
			return err
		}

		var storeErr error
		uploadURL, storeErr = s.storage.IssueUploadURL(ctx, record.StorageKey, s.cfg.SignedURLTTL)
		return storeErr
	})
	if txErr != nil {
		return nil, "", fmt.Errorf("could not reserve upload slot: %w", txErr)
	}

	return &record, uploadURL, nil
}

package upload

import (
	"context"
	"fmt"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/LiamCoop/upload-prints/internal/core/policy"
	"github.com/google/uuid"
)

func (s *uploadService) Confirm(ctx context.Context, principal domain.Principal, orderID, fileID uuid.UUID, kind domain.FileKind) (*domain.FileRecord, error) {

	if !domain.ValidFileKind(kind) {
		return nil, fmt.Errorf("%w: unknown file kind %q", domain.ErrValidation, kind)
	}

	order, err := s.uow.OrderRepo().FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(principal, policy.ActionConfirmUpload, order, kind); err != nil {
		return nil, err
	}

	record, err := s.uow.FileRepo().FindByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if record.OrderID != orderID {
		return nil, domain.ErrOwnershipMismatch
	}
	if record.Kind != kind {
		return nil, fmt.Errorf("%w: file kind mismatch", domain.ErrValidation)
	}

	exists, err := s.storage.Exists(ctx, record.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("could not verify object in storage: %w", err)
	}

	if !exists {
		// The miss is captured as a durable FAILED transition, not
		// just an error response. MarkFailed never touches a record
		// already COMPLETED, so a stale retry cannot regress state.
		if markErr := s.uow.FileRepo().MarkFailed(ctx, record.ID); markErr != nil {
			return nil, markErr
		}
		return nil, domain.ErrObjectMissing
	}

	// Re-confirming a COMPLETED record is a no-op rewrite of the same
	// values; confirming a FAILED record after the client retried the
	// PUT recovers it. Both land on COMPLETED.
	if err := s.uow.FileRepo().MarkCompleted(ctx, record.ID, record.StorageKey); err != nil {
		return nil, err
	}

	alreadyCompleted := record.Status == domain.UploadStatusCompleted
	record.Status = domain.UploadStatusCompleted
	record.StorageURL = record.StorageKey

	if !alreadyCompleted {
		if err := s.publisher.PublishUploadConfirmed(ctx, *record); err != nil {
			s.logger.Warn("failed to publish upload confirmation", "fileID", record.ID, "error", err)
		}
	}

	return record, nil
}

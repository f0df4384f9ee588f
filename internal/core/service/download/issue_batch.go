package download

import (
	"context"
	"fmt"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/LiamCoop/upload-prints/internal/core/policy"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func (s *downloadService) IssueBatch(ctx context.Context, principal domain.Principal, orderID uuid.UUID, kind domain.FileKind) ([]domain.DownloadLink, error) {

	if !domain.ValidFileKind(kind) {
		return nil, fmt.Errorf("%w: unknown file kind %q", domain.ErrValidation, kind)
	}

	order, err := s.uow.OrderRepo().FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(principal, policy.ActionDownloadFiles, order, kind); err != nil {
		return nil, err
	}

	// only COMPLETED records are visible as part of the order's file
	// set; orphaned PENDING/FAILED reservations are excluded
	records, err := s.uow.FileRepo().ListByOrder(ctx, orderID, kind, true)
	if err != nil {
		return nil, err
	}

	// URL signing happens concurrently; results keep the listing order
	// (creation time ascending). Any single failure fails the batch.
	links := make([]domain.DownloadLink, len(records))
	g, gctx := errgroup.WithContext(ctx)
	for i, record := range records {
		g.Go(func() error {
			url, signErr := s.storage.IssueDownloadURL(gctx, record.StorageKey, s.cfg.SignedURLTTL)
			if signErr != nil {
				return fmt.Errorf("could not sign download url for file %s: %w", record.ID, signErr)
			}
			links[i] = domain.DownloadLink{
				FileID:   record.ID,
				FileName: record.FileName,
				URL:      url,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return links, nil
}

package download

import (
	"context"
	"fmt"
	"time"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/LiamCoop/upload-prints/internal/core/policy"
)

// StorageCheck exercises the live store configuration end to end:
// presign a throwaway key, then probe it for existence. The probe key
// is never written to, so Exists is expected to report false.
func (s *downloadService) StorageCheck(ctx context.Context, principal domain.Principal) (*domain.StorageCheckReport, error) {

	if err := policy.Authorize(principal, policy.ActionStorageDiagnostic, nil, domain.FileKindCustomer); err != nil {
		return nil, err
	}

	probeKey := domain.DeriveStorageKey("diagnostic", "probe.txt", domain.FileKindCustomer, time.Now())
	report := &domain.StorageCheckReport{ProbeKey: probeKey}

	if _, err := s.storage.IssueUploadURL(ctx, probeKey, s.cfg.DiagnosticURLTTL); err != nil {
		return nil, fmt.Errorf("could not presign diagnostic upload: %w", err)
	}
	report.UploadURLIssued = true

	exists, err := s.storage.Exists(ctx, probeKey)
	if err != nil {
		return nil, fmt.Errorf("could not probe diagnostic key: %w", err)
	}
	report.ProbeExists = exists

	return report, nil
}

package file

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LiamCoop/upload-prints/internal/auth"
	"github.com/LiamCoop/upload-prints/internal/core/domain"
)

// V1StorageCheckResponse is the response to the storage diagnostic
type V1StorageCheckResponse struct {
	ProbeKey        string `json:"probe_key"`
	UploadURLIssued bool   `json:"upload_url_issued"`
	ProbeExists     bool   `json:"probe_exists"`
}

// StorageCheckV1 is the function that handles the staff-only storage
// connectivity diagnostic
func (h *HandlerV1) StorageCheckV1(w http.ResponseWriter, r *http.Request) {

	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	report, err := h.downloadService.StorageCheck(r.Context(), principal)
	switch {
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	case err != nil:
		h.logger.Error("storage check failed", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := V1StorageCheckResponse{
			ProbeKey:        report.ProbeKey,
			UploadURLIssued: report.UploadURLIssued,
			ProbeExists:     report.ProbeExists,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

package file

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LiamCoop/upload-prints/internal/auth"
	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1ConfirmUploadRequest is the request to confirm an uploaded object
type V1ConfirmUploadRequest struct {
	Kind string `json:"kind"`
}

// V1ConfirmUploadResponse is the response to confirm an uploaded object
type V1ConfirmUploadResponse struct {
	FileID     uuid.UUID `json:"file_id"`
	Status     string    `json:"status"`
	StorageURL string    `json:"storage_url,omitempty"`
}

// ConfirmUploadV1 is the function that handles the second half of the
// upload handshake: it verifies the object landed in the store and
// settles the record's status.
func (h *HandlerV1) ConfirmUploadV1(w http.ResponseWriter, r *http.Request) {

	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	orderID, parseErr := uuid.Parse(chi.URLParam(r, "orderID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}
	fileID, parseErr := uuid.Parse(chi.URLParam(r, "fileID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	var req V1ConfirmUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding confirm upload request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.uploadService.Confirm(r.Context(), principal, orderID, fileID, domain.FileKind(req.Kind))
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrFileNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrOwnershipMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrObjectMissing):
		http.Error(w, "object not found in storage", http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error confirming upload", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := V1ConfirmUploadResponse{
			FileID:     record.ID,
			Status:     string(record.Status),
			StorageURL: record.StorageURL,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

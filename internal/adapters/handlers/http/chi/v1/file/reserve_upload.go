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

// V1ReserveUploadRequest is the request to reserve an upload slot
type V1ReserveUploadRequest struct {
	Kind     string `json:"kind"`
	FileName string `json:"filename"`
	FileSize int64  `json:"size_bytes"`
	MimeType string `json:"mime_type"`
}

// V1ReserveUploadResponse is the response to reserve an upload slot.
// The client PUTs the file bytes to UploadURL, then calls confirm.
type V1ReserveUploadResponse struct {
	FileID     uuid.UUID `json:"file_id"`
	StorageKey string    `json:"storage_key"`
	UploadURL  string    `json:"upload_url"`
	Status     string    `json:"status"`
}

// ReserveUploadV1 is the function that handles upload slot reservation
func (h *HandlerV1) ReserveUploadV1(w http.ResponseWriter, r *http.Request) {

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

	var req V1ReserveUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding reserve upload request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.FileName == "" || req.MimeType == "" || req.FileSize == 0 {
		http.Error(w, "missing param", http.StatusBadRequest)
		return
	}

	record, uploadURL, err := h.uploadService.Reserve(r.Context(), principal, orderID, domain.FileKind(req.Kind), req.FileName, req.FileSize, req.MimeType)
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrOrderClosedForUploads):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error reserving upload", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := V1ReserveUploadResponse{
			FileID:     record.ID,
			StorageKey: record.StorageKey,
			UploadURL:  uploadURL,
			Status:     string(record.Status),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

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

// V1DownloadLink is one signed link in a batch
type V1DownloadLink struct {
	FileID   uuid.UUID `json:"file_id"`
	FileName string    `json:"filename"`
	URL      string    `json:"url"`
}

// V1DownloadURLsResponse is the response to a batch download request
type V1DownloadURLsResponse struct {
	Links []V1DownloadLink `json:"links"`
}

// DownloadURLsV1 is the function that issues signed download links for
// every completed file of the given kind on an order
func (h *HandlerV1) DownloadURLsV1(w http.ResponseWriter, r *http.Request) {

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

	kind := domain.FileKind(r.URL.Query().Get("kind"))

	links, err := h.downloadService.IssueBatch(r.Context(), principal, orderID, kind)
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error issuing download urls", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := V1DownloadURLsResponse{Links: make([]V1DownloadLink, 0, len(links))}
		for _, link := range links {
			resp.Links = append(resp.Links, V1DownloadLink{
				FileID:   link.FileID,
				FileName: link.FileName,
				URL:      link.URL,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

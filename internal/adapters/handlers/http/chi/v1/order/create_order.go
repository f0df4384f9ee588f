package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LiamCoop/upload-prints/internal/auth"
	"github.com/LiamCoop/upload-prints/internal/core/domain"
)

// V1CreateOrderRequest is the request to create an order
type V1CreateOrderRequest struct {
	Description string `json:"description"`
}

// CreateOrderV1 is the function that handles order creation
func (h *HandlerV1) CreateOrderV1(w http.ResponseWriter, r *http.Request) {

	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req V1CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding create order request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.orderService.Create(r.Context(), principal, req.Description)
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error creating order", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := toV1Order(*created)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

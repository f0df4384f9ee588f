package order

import (
	"encoding/json"
	"net/http"

	"github.com/LiamCoop/upload-prints/internal/auth"
	"github.com/LiamCoop/upload-prints/internal/core/domain"
)

// V1ListOrdersResponse is the response to list orders
type V1ListOrdersResponse struct {
	Orders []V1Order `json:"orders"`
}

// ListOrdersV1 is the function that handles order listing, with an
// optional ?status= filter
func (h *HandlerV1) ListOrdersV1(w http.ResponseWriter, r *http.Request) {

	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var statusFilter *domain.OrderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.OrderStatus(raw)
		if !domain.ValidOrderStatus(status) {
			http.Error(w, "unknown status filter", http.StatusBadRequest)
			return
		}
		statusFilter = &status
	}

	orders, err := h.orderService.List(r.Context(), principal, statusFilter)
	if err != nil {
		h.logger.Error("error listing orders", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	resp := V1ListOrdersResponse{Orders: make([]V1Order, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toV1Order(o))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

package order

import (
	"log/slog"
	"time"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/LiamCoop/upload-prints/internal/core/port"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 order routes
type HandlerV1 struct {
	orderService port.OrderService
	logger       *slog.Logger
}

// NewOrderHandlerV1 creates HandlerV1
func NewOrderHandlerV1(service port.OrderService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		orderService: service,
		logger:       logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.CreateOrderV1)
	router.Get("/", h.ListOrdersV1)
	router.Get("/{orderID}", h.GetOrderV1)
	router.Patch("/{orderID}/status", h.UpdateOrderStatusV1)

	return router
}

// V1Order is the JSON view of an order
type V1Order struct {
	ID              uuid.UUID  `json:"id"`
	OrderNumber     string     `json:"order_number"`
	OwnerID         string     `json:"owner_id"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ReviewingAt     *time.Time `json:"reviewing_at,omitempty"`
	ReadyForPrintAt *time.Time `json:"ready_for_print_at,omitempty"`
	SentToPrinterAt *time.Time `json:"sent_to_printer_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func toV1Order(o domain.Order) V1Order {
	return V1Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		OwnerID:         o.OwnerID,
		Description:     o.Description,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		ReviewingAt:     o.ReviewingAt,
		ReadyForPrintAt: o.ReadyForPrintAt,
		SentToPrinterAt: o.SentToPrinterAt,
		CompletedAt:     o.CompletedAt,
	}
}

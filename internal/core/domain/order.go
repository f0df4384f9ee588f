package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	OrderStatusReceived      OrderStatus = "RECEIVED"
	OrderStatusReviewing     OrderStatus = "REVIEWING"
	OrderStatusReadyForPrint OrderStatus = "READY_FOR_PRINT"
	OrderStatusSentToPrinter OrderStatus = "SENT_TO_PRINTER"
	OrderStatusCompleted     OrderStatus = "COMPLETED"
)

// orderStatusRank orders the lifecycle; transitions move forward one
// step at a time and never backwards.
var orderStatusRank = map[OrderStatus]int{
	OrderStatusReceived:      0,
	OrderStatusReviewing:     1,
	OrderStatusReadyForPrint: 2,
	OrderStatusSentToPrinter: 3,
	OrderStatusCompleted:     4,
}

// ValidOrderStatus reports whether s names a known lifecycle status
func ValidOrderStatus(s OrderStatus) bool {
	_, ok := orderStatusRank[s]
	return ok
}

// CanTransition reports whether an order may move from one status to the next
func CanTransition(from, to OrderStatus) bool {
	fromRank, okFrom := orderStatusRank[from]
	toRank, okTo := orderStatusRank[to]
	if !okFrom || !okTo {
		return false
	}
	return toRank == fromRank+1
}

// Order represents a customer print order
type Order struct {
	ID          uuid.UUID
	OrderNumber string
	OwnerID     string
	Description string
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// one timestamp per status transition, set when the order enters
	// the corresponding state
	ReviewingAt     *time.Time
	ReadyForPrintAt *time.Time
	SentToPrinterAt *time.Time
	CompletedAt     *time.Time
}

// AcceptsUploads reports whether customer files may still be reserved
// against this order
func (o *Order) AcceptsUploads() bool {
	return o.Status == OrderStatusReceived
}

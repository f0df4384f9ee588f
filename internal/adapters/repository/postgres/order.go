package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/LiamCoop/upload-prints/internal/core/port"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlOrderRepository struct {
	db SQLQuerier
}

// NewSqlOrderRepository creates sqlOrderRepository that implements port.OrderRepository
func NewSqlOrderRepository(db SQLQuerier) port.OrderRepository {
	return &sqlOrderRepository{
		db: db,
	}
}

const orderColumns = `id, order_number, owner_id, description, status,
              created_at, updated_at, reviewing_at, ready_for_print_at,
              sent_to_printer_at, completed_at`

// Create inserts a new order. A unique violation on order_number maps
// to domain.ErrAlreadyExists so the caller can re-derive and retry.
func (s *sqlOrderRepository) Create(ctx context.Context, order domain.Order) error {
	query := `INSERT INTO orders (id, order_number, owner_id, description, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		order.ID, order.OrderNumber, order.OwnerID, order.Description,
		order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("error inserting order: %w", err)
	}
	return nil
}

// FindByID finds an order by id
func (s *sqlOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var dbOrder dbOrder
	err := s.db.QueryRowContext(ctx, query, id).Scan(dbOrder.fields()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("error querying order: %w", err)
	}

	return dbOrder.ToDomain(), nil
}

// FindByOwner lists a principal's own orders, newest first
func (s *sqlOrderRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying orders by owner: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// FindAll lists every order, optionally filtered by status, newest first
func (s *sqlOrderRepository) FindAll(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// MaxOrderSequence returns the highest sequence already issued for the
// given year, 0 when none exists yet
func (s *sqlOrderRepository) MaxOrderSequence(ctx context.Context, year int) (int, error) {
	query := `SELECT COALESCE(MAX(CAST(SUBSTRING(order_number FROM '[0-9]+$') AS INTEGER)), 0)
              FROM orders
              WHERE order_number LIKE $1 || '%'`

	var max int
	if err := s.db.QueryRowContext(ctx, query, domain.OrderNumberPrefix(year)).Scan(&max); err != nil {
		return 0, fmt.Errorf("error querying max order sequence: %w", err)
	}
	return max, nil
}

// UpdateStatus moves an order to the next lifecycle status and stamps
// the matching transition column
func (s *sqlOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, next domain.OrderStatus, at time.Time) error {
	var column string
	switch next {
	case domain.OrderStatusReviewing:
		column = "reviewing_at"
	case domain.OrderStatusReadyForPrint:
		column = "ready_for_print_at"
	case domain.OrderStatusSentToPrinter:
		column = "sent_to_printer_at"
	case domain.OrderStatusCompleted:
		column = "completed_at"
	}

	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`
	if column != "" {
		query = fmt.Sprintf(`UPDATE orders SET status = $1, updated_at = $2, %s = $2 WHERE id = $3`, column)
	}

	result, err := s.db.ExecContext(ctx, query, next, at, id)
	if err != nil {
		return fmt.Errorf("error updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

func scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var dbOrder dbOrder
		if err := rows.Scan(dbOrder.fields()...); err != nil {
			return nil, fmt.Errorf("error scanning order: %w", err)
		}
		orders = append(orders, *dbOrder.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}
	return orders, nil
}

// dbOrder represents an order row in DB
type dbOrder struct {
	ID              uuid.UUID
	OrderNumber     string
	OwnerID         string
	Description     string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ReviewingAt     sql.NullTime
	ReadyForPrintAt sql.NullTime
	SentToPrinterAt sql.NullTime
	CompletedAt     sql.NullTime
}

func (o *dbOrder) fields() []any {
	return []any{
		&o.ID, &o.OrderNumber, &o.OwnerID, &o.Description, &o.Status,
		&o.CreatedAt, &o.UpdatedAt, &o.ReviewingAt, &o.ReadyForPrintAt,
		&o.SentToPrinterAt, &o.CompletedAt,
	}
}

// ToDomain converts to domain.Order
func (o *dbOrder) ToDomain() *domain.Order {
	order := &domain.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		OwnerID:     o.OwnerID,
		Description: o.Description,
		Status:      domain.OrderStatus(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.ReviewingAt.Valid {
		order.ReviewingAt = &o.ReviewingAt.Time
	}
	if o.ReadyForPrintAt.Valid {
		order.ReadyForPrintAt = &o.ReadyForPrintAt.Time
	}
	if o.SentToPrinterAt.Valid {
		order.SentToPrinterAt = &o.SentToPrinterAt.Time
	}
	if o.CompletedAt.Valid {
		order.CompletedAt = &o.CompletedAt.Time
	}
	return order
}

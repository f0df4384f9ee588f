// Package nats publishes order and file milestones to JetStream for
// downstream collaborators (notifications, audit). Publishing is
// best-effort from the caller's point of view; business operations do
// not fail when the broker is down.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/LiamCoop/upload-prints/internal/config"
	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	SubjectOrderCreated       = "orders.created"
	SubjectOrderStatusChanged = "orders.status_changed"
	SubjectUploadConfirmed    = "files.upload_confirmed"
)

// Publisher is a struct to publish events to nats
type Publisher struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
	logger *slog.Logger
}

// NewPublisher connects to NATS and ensures the stream covering this
// service's subjects exists
func NewPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {

	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{"orders.>", "files.>"},
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ensure stream: %w", err)
	}

	return &Publisher{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger,
	}, nil
}

type orderEvent struct {
	OrderID        string `json:"order_id"`
	OrderNumber    string `json:"order_number"`
	OwnerID        string `json:"owner_id"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status,omitempty"`
}

type fileEvent struct {
	FileID   string `json:"file_id"`
	OrderID  string `json:"order_id"`
	Kind     string `json:"kind"`
	FileName string `json:"file_name"`
	Status   string `json:"status"`
}

// PublishOrderCreated publishes an order creation event
func (p *Publisher) PublishOrderCreated(ctx context.Context, order domain.Order) error {
	return p.publish(ctx, SubjectOrderCreated, orderEvent{
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		OwnerID:     order.OwnerID,
		Status:      string(order.Status),
	})
}

// PublishOrderStatusChanged publishes an order lifecycle transition
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, order domain.Order, previous domain.OrderStatus) error {
	return p.publish(ctx, SubjectOrderStatusChanged, orderEvent{
		OrderID:        order.ID.String(),
		OrderNumber:    order.OrderNumber,
		OwnerID:        order.OwnerID,
		Status:         string(order.Status),
		PreviousStatus: string(previous),
	})
}

// PublishUploadConfirmed publishes a confirmed upload
func (p *Publisher) PublishUploadConfirmed(ctx context.Context, record domain.FileRecord) error {
	return p.publish(ctx, SubjectUploadConfirmed, fileEvent{
		FileID:   record.ID.String(),
		OrderID:  record.OrderID.String(),
		Kind:     string(record.Kind),
		FileName: record.FileName,
		Status:   string(record.Status),
	})
}

func (p *Publisher) publish(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// Close graceful shutdown
func (p *Publisher) Close() error {
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// Package service defines domain-level contracts implemented by infrastructure.
package service

import (
	"context"
	"time"
)

// OrderCreatedEvent is published after an order is successfully placed, for
// async consumers (fulfillment dashboards, messaging). It carries only
// snapshot data; consumers never read back into the order tables.
type OrderCreatedEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string    `json:"order_id"`
	CustomerID    string    `json:"customer_id"`
	FinalAmount   float64   `json:"final_amount"`
	PaymentMethod string    `json:"payment_method"`
	ItemCount     int       `json:"item_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCreated publishes an order-created event for async processing
	PublishOrderCreated(ctx context.Context, event *OrderCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

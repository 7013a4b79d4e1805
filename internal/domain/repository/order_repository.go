package repository

import (
	"context"

	"vexor/internal/domain/entity"
	"vexor/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// SalesStats aggregates order figures for the admin dashboard.
type SalesStats struct {
	TotalRevenue  float64 // Sum of final amounts over completed payments.
	MonthlySales  float64 // Same sum restricted to the last 30 days.
	TotalOrders   int64   // Orders ever placed.
	PendingOrders int64   // Orders still in the pending stage.
}

// OrderRepository defines the interface for order-related database operations.
// Orders are written once; only their status is ever updated afterwards.
type OrderRepository interface {
	// CreateOrder persists a new order with its snapshot line items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByCustomer retrieves a customer's orders, newest first.
	FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ListOrders retrieves all orders, newest first, optionally filtered by status.
	ListOrders(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error)

	// FindOrdersByPaymentStatus retrieves orders with the given payment status.
	FindOrdersByPaymentStatus(ctx context.Context, status entity.PaymentStatus) ([]*entity.Order, error)

	// UpdateOrderStatus sets the fulfillment status of an order.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// SalesStats aggregates revenue and order counts for the dashboard.
	SalesStats(ctx context.Context) (*SalesStats, error)
}

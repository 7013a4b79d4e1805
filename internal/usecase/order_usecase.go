package usecase

import (
	"context"

	"vexor/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput carries everything checkout declares about a new order.
// The line items themselves come from the customer's persisted cart.
type PlaceOrderInput struct {
	AddressID     uuid.UUID `json:"address_id"`
	PaymentMethod string    `json:"payment_method"`
	CouponCode    string    `json:"coupon_code,omitempty"`
}

// OrderUsecase places orders and drives their fulfillment lifecycle.
type OrderUsecase interface {
	// PlaceOrder validates stock atomically, snapshots the cart into an
	// immutable order, applies an optional coupon, and persists the order in
	// the pending stage. No partial orders: any failing item rejects the whole
	// order. Placement is not idempotent; callers must not blindly retry.
	PlaceOrder(ctx context.Context, customerID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	// GetOrder returns one order. Customers can only read their own orders;
	// staff can read any.
	GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, requesterIsStaff bool) (*entity.Order, error)

	// ListCustomerOrders returns the customer's orders, newest first.
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ListOrders returns all orders, optionally filtered by status. Staff only.
	ListOrders(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error)

	// UpdateOrderStatus applies one fulfillment transition. Repeating the
	// current status is an idempotent no-op; any disallowed transition is
	// rejected and leaves the order unchanged.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error)
}

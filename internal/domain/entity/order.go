// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is an immutable snapshot of one purchased line. It carries
// everything needed to render and account for the line even if the product
// is later edited or deleted; in particular Price is the price charged at
// purchase time and is never recomputed from the catalog.
type OrderItem struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	VariantSize  string    `json:"variant_size"`
	VariantColor string    `json:"variant_color"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
}

// ShippingAddress is the address an order ships to. It is copied from the
// customer's address book at placement time, not referenced, so later
// address edits do not rewrite order history.
type ShippingAddress struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

// Order is the immutable record of a purchase. OrderStatus is the only
// field that changes after creation, and only through the transition rules
// on OrderStatus; every amount is frozen at placement time.
type Order struct {
	ID                uuid.UUID       // The Global Unique Identifier (GUID) for the order.
	CustomerID        uuid.UUID       // The customer who placed the order.
	Items             []OrderItem     // Snapshot line items.
	TotalAmount       float64         // Pre-discount subtotal.
	DiscountAmount    float64         // Coupon discount applied, 0 when none.
	FinalAmount       float64         // TotalAmount - DiscountAmount, floored at 0.
	CouponCode        string          // Normalized coupon code, empty when none was applied.
	PaymentMethod     PaymentMethod   // Declared payment method.
	PaymentStatus     PaymentStatus   // Settlement flag, not a processed transaction.
	RazorpayPaymentID string          // Gateway payment id for razorpay orders, empty otherwise.
	OrderStatus       OrderStatus     // Fulfillment stage, starts at OrderStatusPending.
	ShippingAddress   ShippingAddress // Copied delivery address.
	CreatedAt         time.Time       // Timestamp of when this order was placed.
	UpdatedAt         time.Time       // Timestamp of the last status change.
}

// PaymentMethod is the payment option declared at checkout.
type PaymentMethod string

const (
	// PaymentMethodCOD is cash on delivery.
	PaymentMethodCOD PaymentMethod = "cod"
	// PaymentMethodRazorpay is an online payment through the razorpay gateway.
	PaymentMethodRazorpay PaymentMethod = "razorpay"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodRazorpay:
		return true
	default:
		return false
	}
}

// PaymentStatus is the settlement flag of an order.
type PaymentStatus string

const (
	// PaymentStatusPending indicates payment has not been collected yet.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusCompleted indicates payment was confirmed at checkout.
	PaymentStatusCompleted PaymentStatus = "completed"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

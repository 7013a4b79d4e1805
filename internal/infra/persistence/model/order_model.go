package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Monetary totals and the shipping
// address are frozen at placement time.
type OrderModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID        uuid.UUID `gorm:"type:uuid;index;not null"`
	TotalAmount       float64   `gorm:"not null"`
	DiscountAmount    float64   `gorm:"not null;default:0"`
	FinalAmount       float64   `gorm:"not null"`
	CouponCode        string    `gorm:"type:varchar(50)"`
	PaymentMethod     string    `gorm:"type:varchar(20);not null"`
	PaymentStatus     string    `gorm:"type:varchar(20);index;not null"`
	RazorpayPaymentID string    `gorm:"type:varchar(100)"`
	OrderStatus       string    `gorm:"type:varchar(20);index;not null"`

	ShippingName         string `gorm:"type:varchar(100);not null"`
	ShippingPhone        string `gorm:"type:varchar(20);not null"`
	ShippingAddressLine1 string `gorm:"type:varchar(255);not null"`
	ShippingAddressLine2 string `gorm:"type:varchar(255)"`
	ShippingCity         string `gorm:"type:varchar(100);not null"`
	ShippingState        string `gorm:"type:varchar(100);not null"`
	ShippingPincode      string `gorm:"type:varchar(10);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Each row is an immutable
// snapshot of one cart line; later catalog edits never touch it.
type OrderItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID      uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null"`
	ProductName  string    `gorm:"type:varchar(255);not null"`
	ProductImage string    `gorm:"type:varchar(512)"`
	VariantSize  string    `gorm:"type:varchar(50);not null"`
	VariantColor string    `gorm:"type:varchar(50);not null"`
	Quantity     int       `gorm:"not null"`
	Price        float64   `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

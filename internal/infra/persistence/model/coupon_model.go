package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel mirrors the 'coupons' table. Codes are stored normalized
// (upper-case, trimmed) and enforced unique.
type CouponModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code               string    `gorm:"type:varchar(50);unique;not null"`
	DiscountPercentage float64   `gorm:"not null"`
	ExpiryDate         time.Time `gorm:"not null"`
	UsageLimit         int       `gorm:"not null"`
	UsedCount          int       `gorm:"not null;default:0"`
	IsActive           bool      `gorm:"not null;default:true"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}

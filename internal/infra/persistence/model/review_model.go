package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. The composite unique index
// enforces one review per customer per product.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_review_product_customer;index"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_review_product_customer"`
	CustomerName string    `gorm:"type:varchar(100);not null"`
	Rating       int       `gorm:"not null"`
	Comment      string    `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

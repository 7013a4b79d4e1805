package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Slug          string    `gorm:"type:varchar(255);unique;not null"`
	Description   string    `gorm:"type:text"`
	Category      string    `gorm:"type:varchar(100);index;not null"`
	Price         float64   `gorm:"not null"`
	DiscountPrice *float64
	CostPrice     *float64
	Images        []string `gorm:"serializer:json;type:jsonb"`
	Stock         int      `gorm:"not null;default:0"`
	Ratings       float64  `gorm:"not null;default:0"`
	TotalReviews  int      `gorm:"not null;default:0"`
	TotalSold     int      `gorm:"not null;default:0"`
	IsFeatured    bool     `gorm:"index;not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Variants []ProductVariantModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel mirrors the 'product_variants' table. A variant is one
// sellable (size, color) combination of a product; the pair is unique per product
// so that stock reservations address exactly one row.
type ProductVariantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_product_size_color"`
	Size      string    `gorm:"type:varchar(50);not null;uniqueIndex:uniq_product_size_color"`
	Color     string    `gorm:"type:varchar(50);not null;uniqueIndex:uniq_product_size_color"`
	SKU       string    `gorm:"type:varchar(100);not null"`
	Stock     int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

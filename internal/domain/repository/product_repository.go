// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"vexor/internal/domain/entity"
	"vexor/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a product has no variant for the requested size/color.
	ErrVariantNotFound = errors.New("variant not found")
	// ErrInsufficientStock is returned when a conditional stock decrement finds fewer
	// units than requested. The caller must re-fetch current stock before retrying.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductSort names the supported catalog sort orders.
type ProductSort string

const (
	ProductSortNewest    ProductSort = "newest"
	ProductSortPriceLow  ProductSort = "price_low"
	ProductSortPriceHigh ProductSort = "price_high"
	ProductSortPopular   ProductSort = "popular"
	ProductSortRating    ProductSort = "rating"
)

// ProductFilter narrows and orders a catalog listing.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	SortBy   ProductSort
	Page     int
	Limit    int
}

// ProductPage is one page of a catalog listing.
type ProductPage struct {
	Products   []*entity.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductRepository defines the interface for catalog database operations.
type ProductRepository interface {
	// CreateProduct persists a new product together with its variants.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID, variants included.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductByIDOrSlug retrieves a product by its ID or its URL slug.
	FindProductByIDOrSlug(ctx context.Context, idOrSlug string) (*entity.Product, error)

	// ListProducts retrieves one page of products matching the filter.
	ListProducts(ctx context.Context, filter ProductFilter) (*ProductPage, error)

	// ListFeaturedProducts retrieves up to limit featured products.
	ListFeaturedProducts(ctx context.Context, limit int) ([]*entity.Product, error)

	// ListCategories retrieves the distinct categories in the catalog.
	ListCategories(ctx context.Context) ([]string, error)

	// UpdateProduct updates an existing product and replaces its variant set.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product and its variants.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// ReserveVariantStock atomically decrements the stock of one variant by
	// quantity, guarded by a precondition that at least quantity units remain.
	// It also maintains the product's aggregate stock and total_sold counters.
	// Returns ErrInsufficientStock when the precondition fails and
	// ErrVariantNotFound when the variant does not exist. Never a read-then-write.
	ReserveVariantStock(ctx context.Context, key entity.VariantKey, quantity int) error

	// TopProductsBySold retrieves up to limit products ordered by units sold.
	TopProductsBySold(ctx context.Context, limit int) ([]*entity.Product, error)
}

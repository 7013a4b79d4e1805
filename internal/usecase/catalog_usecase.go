package usecase

import (
	"context"

	"vexor/internal/domain/entity"
	"vexor/internal/domain/repository"

	"github.com/google/uuid"
)

// VariantInput is one structurally validated {size, color, stock, sku}
// record. Malformed variant lists are rejected at the boundary, before any
// order logic can see them.
type VariantInput struct {
	Size  string `json:"size" validate:"required"`
	Color string `json:"color" validate:"required"`
	Stock int    `json:"stock" validate:"min=0"`
	SKU   string `json:"sku" validate:"required"`
}

// CreateProductInput carries the admin form for a new product.
type CreateProductInput struct {
	Name          string         `json:"name" validate:"required"`
	Description   string         `json:"description"`
	Category      string         `json:"category" validate:"required"`
	Price         float64        `json:"price" validate:"required,gt=0"`
	DiscountPrice *float64       `json:"discount_price,omitempty" validate:"omitempty,gt=0"`
	CostPrice     *float64       `json:"cost_price,omitempty" validate:"omitempty,min=0"`
	Images        []string       `json:"images"`
	Variants      []VariantInput `json:"variants" validate:"dive"`
	IsFeatured    bool           `json:"is_featured"`
}

// UpdateProductInput carries a partial product update; nil fields are left
// untouched. A non-nil Variants replaces the whole variant set.
type UpdateProductInput struct {
	Name          *string         `json:"name,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Category      *string         `json:"category,omitempty"`
	Price         *float64        `json:"price,omitempty" validate:"omitempty,gt=0"`
	DiscountPrice *float64        `json:"discount_price,omitempty" validate:"omitempty,gt=0"`
	CostPrice     *float64        `json:"cost_price,omitempty" validate:"omitempty,min=0"`
	Images        *[]string       `json:"images,omitempty"`
	Variants      *[]VariantInput `json:"variants,omitempty" validate:"omitempty,dive"`
	IsFeatured    *bool           `json:"is_featured,omitempty"`
}

// CatalogUsecase exposes the product catalog to the storefront and the
// admin surface.
type CatalogUsecase interface {
	// ListProducts returns one page of the catalog.
	ListProducts(ctx context.Context, filter repository.ProductFilter) (*repository.ProductPage, error)

	// GetProduct returns a product by its ID or URL slug.
	GetProduct(ctx context.Context, idOrSlug string) (*entity.Product, error)

	// FeaturedProducts returns the featured shelf.
	FeaturedProducts(ctx context.Context) ([]*entity.Product, error)

	// Categories returns the distinct catalog categories.
	Categories(ctx context.Context) ([]string, error)

	// CreateProduct creates a product with a generated slug. Staff only.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies a partial update. Staff only.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product. Staff only.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is the catalog entity customers browse and order from.
// Pricing fields are owned by the catalog and may change at any time;
// orders therefore never reference a Product directly, they snapshot it.
type Product struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the product.
	Name          string     // Display name of the product.
	Slug          string     // URL-friendly identifier, unique across the catalog.
	Description   string     // Free-text product description.
	Category      string     // Category the product is listed under.
	Price         float64    // Regular selling price. Always > 0.
	DiscountPrice *float64   // Optional promotional price. When set, it is < Price.
	CostPrice     *float64   // Optional purchase cost, used for profit reporting. Nil when unknown.
	Images        []string   // Image URLs, first one is the cover image.
	Variants      []Variant  // Size/color/SKU combinations, each with its own stock.
	Stock         int        // Aggregate stock across all variants.
	Ratings       float64    // Average review rating.
	TotalReviews  int        // Number of reviews behind Ratings.
	TotalSold     int        // Units sold, maintained on order placement.
	IsFeatured    bool       // Whether the product appears in the featured shelf.
	CreatedAt     time.Time  // Timestamp of when this product was created.
	UpdatedAt     time.Time  // Timestamp of the last modification.
}

// EffectivePrice returns the price a customer is charged right now:
// the discount price when one is set, the regular price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}

	return p.Price
}

// CoverImage returns the first product image, or an empty string when
// the product has no images yet.
func (p *Product) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

// FindVariant returns the variant matching the given size and color,
// or nil when the product has no such variant.
func (p *Product) FindVariant(size, color string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].Size == size && p.Variants[i].Color == color {
			return &p.Variants[i]
		}
	}

	return nil
}

// Variant is a specific size/color/SKU combination of a Product.
// Within a product, (Size, Color) is unique.
type Variant struct {
	Size  string // Size label, e.g. "M", "XL", "42".
	Color string // Color name, e.g. "Black".
	Stock int    // Units available for this combination. Never negative.
	SKU   string // Stock keeping unit code.
}

// Key returns the composite identity of this variant within its product.
func (v Variant) Key(productID uuid.UUID) VariantKey {
	return VariantKey{ProductID: productID, Size: v.Size, Color: v.Color}
}

// VariantKey is the (product id, size, color) tuple that uniquely identifies
// a variant and, by extension, a cart line item. It is a comparable value
// type so it can be used directly as a map key.
type VariantKey struct {
	ProductID uuid.UUID
	Size      string
	Color     string
}

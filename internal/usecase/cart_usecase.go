// Package usecase defines the application-facing interfaces of the core.
package usecase

import (
	"context"

	"vexor/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput identifies a variant to add and how many units of it.
type AddCartItemInput struct {
	ProductID uuid.UUID `json:"product_id"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	Quantity  int       `json:"quantity"`
}

// UpdateCartItemInput sets the quantity of an existing line directly.
// A quantity of zero or below removes the line.
type UpdateCartItemInput struct {
	ProductID uuid.UUID `json:"product_id"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	Quantity  int       `json:"quantity"`
}

// CartUsecase manages a customer's cart. Every mutation persists the full
// cart through the CartStore port before returning, so state survives
// process restarts.
type CartUsecase interface {
	// GetCart returns the customer's current cart, empty when none exists.
	GetCart(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error)

	// AddItem merges the given variant into the cart: an existing line with
	// the same (product, size, color) key has its quantity incremented.
	AddItem(ctx context.Context, customerID uuid.UUID, input *AddCartItemInput) (*entity.Cart, error)

	// UpdateQuantity sets a line's quantity directly; <= 0 removes the line.
	UpdateQuantity(ctx context.Context, customerID uuid.UUID, input *UpdateCartItemInput) (*entity.Cart, error)

	// RemoveItem deletes a line. Removing an absent key is a no-op.
	RemoveItem(ctx context.Context, customerID uuid.UUID, key entity.VariantKey) (*entity.Cart, error)

	// ClearCart empties the cart. Called by the checkout flow after a
	// successful order placement.
	ClearCart(ctx context.Context, customerID uuid.UUID) error
}

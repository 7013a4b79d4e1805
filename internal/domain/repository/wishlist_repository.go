package repository

import (
	"context"

	"vexor/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistRepository defines the interface for wishlist database operations.
// Adds and removes are idempotent; saving an already-saved product or
// removing an absent one is not an error.
type WishlistRepository interface {
	// AddToWishlist saves a product on the customer's wishlist.
	AddToWishlist(ctx context.Context, customerID, productID uuid.UUID) error

	// RemoveFromWishlist takes a product off the customer's wishlist.
	RemoveFromWishlist(ctx context.Context, customerID, productID uuid.UUID) error

	// ListWishlist retrieves the customer's saved products, most recently
	// saved first.
	ListWishlist(ctx context.Context, customerID uuid.UUID) ([]*entity.Product, error)
}

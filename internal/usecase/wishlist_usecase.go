package usecase

import (
	"context"

	"vexor/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase manages the products a customer has saved for later.
type WishlistUsecase interface {
	// AddToWishlist saves a product on the customer's wishlist. Saving a
	// product that is already on the list is a no-op.
	AddToWishlist(ctx context.Context, customerID, productID uuid.UUID) error

	// RemoveFromWishlist takes a product off the customer's wishlist.
	// Removing a product that is not on the list is a no-op.
	RemoveFromWishlist(ctx context.Context, customerID, productID uuid.UUID) error

	// ListWishlist returns the customer's saved products, most recently
	// saved first.
	ListWishlist(ctx context.Context, customerID uuid.UUID) ([]*entity.Product, error)
}

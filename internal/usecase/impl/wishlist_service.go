package impl

import (
	"context"
	"log/slog"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	"vexor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlist repository.WishlistRepository
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(
	wishlist repository.WishlistRepository,
	products repository.ProductRepository,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistService{
		wishlist: wishlist,
		products: products,
		logger:   logger,
	}
}

// AddToWishlist saves a product on the customer's wishlist.
func (srv *wishlistService) AddToWishlist(ctx context.Context, customerID, productID uuid.UUID) error {
	if _, err := srv.products.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return errors.Wrap(err, "failed to find product")
	}

	if err := srv.wishlist.AddToWishlist(ctx, customerID, productID); err != nil {
		return errors.Wrap(err, "failed to add to wishlist")
	}

	return nil
}

// RemoveFromWishlist takes a product off the customer's wishlist.
func (srv *wishlistService) RemoveFromWishlist(ctx context.Context, customerID, productID uuid.UUID) error {
	if err := srv.wishlist.RemoveFromWishlist(ctx, customerID, productID); err != nil {
		return errors.Wrap(err, "failed to remove from wishlist")
	}

	return nil
}

// ListWishlist returns the customer's saved products.
func (srv *wishlistService) ListWishlist(ctx context.Context, customerID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.wishlist.ListWishlist(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return products, nil
}

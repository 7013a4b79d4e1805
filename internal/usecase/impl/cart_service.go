// Package impl contains the application-specific business rules implementations.
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

// cartService implements the CartUsecase interface on top of the CartStore
// port. The cart is single-owner, single-writer per session, so there is no
// locking here; every mutation persists the full item list before returning.
type cartService struct {
	carts    repository.CartStore
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	carts repository.CartStore,
	products repository.ProductRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		carts:    carts,
		products: products,
		logger:   logger,
	}
}

// GetCart returns the customer's current cart.
func (srv *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.carts.Load(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// AddItem merges a variant into the cart, snapshotting the product's
// current name, image, and prices onto the line.
func (srv *cartService) AddItem(ctx context.Context, customerID uuid.UUID, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity.WrapMessage("quantity must be at least 1")
	}

	product, err := srv.products.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "cannot add unknown product")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	variant := product.FindVariant(input.Size, input.Color)
	if variant == nil {
		return nil, errors.Wrap(domainerrors.ErrVariantNotFound, "cannot add unknown variant")
	}

	cart, err := srv.carts.Load(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.Add(entity.CartItem{
		ProductID:     product.ID,
		ProductName:   product.Name,
		ProductImage:  product.CoverImage(),
		Size:          variant.Size,
		Color:         variant.Color,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		Quantity:      input.Quantity,
	})

	if err := srv.carts.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.logger.Debug("cart item added",
		"customerID", customerID,
		"productID", product.ID,
		"quantity", input.Quantity,
	)

	return cart, nil
}

// UpdateQuantity sets a line's quantity directly. A quantity of zero or
// below removes the line, so the cart never stores a non-positive quantity.
func (srv *cartService) UpdateQuantity(ctx context.Context, customerID uuid.UUID, input *usecase.UpdateCartItemInput) (*entity.Cart, error) {
	cart, err := srv.carts.Load(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	key := entity.VariantKey{ProductID: input.ProductID, Size: input.Size, Color: input.Color}
	cart.SetQuantity(key, input.Quantity)

	if err := srv.carts.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}

// RemoveItem deletes a line from the cart. An absent key is a no-op.
func (srv *cartService) RemoveItem(ctx context.Context, customerID uuid.UUID, key entity.VariantKey) (*entity.Cart, error) {
	cart, err := srv.carts.Load(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.Remove(key)

	if err := srv.carts.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}

// ClearCart empties the customer's persisted cart.
func (srv *cartService) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	if err := srv.carts.Clear(ctx, customerID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

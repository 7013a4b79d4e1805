package postgres

import (
	"context"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	"vexor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// wishlistRepository implements the domain.WishlistRepository interface using GORM.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// AddToWishlist saves a product on the customer's wishlist. Saving an
// already-saved product hits the composite primary key and is ignored.
func (repo *wishlistRepository) AddToWishlist(ctx context.Context, customerID, productID uuid.UUID) error {
	item := &model.WishlistItemModel{
		CustomerID: customerID,
		ProductID:  productID,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(item).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add to wishlist")
	}

	return nil
}

// RemoveFromWishlist takes a product off the customer's wishlist. Removing
// an absent product affects zero rows and is not an error.
func (repo *wishlistRepository) RemoveFromWishlist(ctx context.Context, customerID, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&model.WishlistItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove from wishlist")
	}

	return nil
}

// ListWishlist retrieves the customer's saved products, most recently
// saved first.
func (repo *wishlistRepository) ListWishlist(ctx context.Context, customerID uuid.UUID) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Variants").
		Joins("JOIN wishlist_items ON wishlist_items.product_id = products.id").
		Where("wishlist_items.customer_id = ?", customerID).
		Order("wishlist_items.created_at DESC").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return toProductDomains(productMs), nil
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"math"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	"vexor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// effectivePriceExpr is the price a customer is charged right now, used for
// price filters and price sorting so they match what the storefront shows.
const effectivePriceExpr = "COALESCE(discount_price, price)"

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// CreateProduct persists a new product together with its variant rows.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product slug already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a single product with its variants.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Variants").
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindProductByIDOrSlug retrieves a product addressed either way. Storefront
// URLs carry slugs, admin tooling carries IDs.
func (repo *productRepository) FindProductByIDOrSlug(ctx context.Context, idOrSlug string) (*entity.Product, error) {
	query := repo.db.WithContext(ctx).Preload("Variants")
	if id, err := uuid.Parse(idOrSlug); err == nil {
		query = query.Where("id = ?", id)
	} else {
		query = query.Where("slug = ?", idOrSlug)
	}

	var productM model.ProductModel
	if err := query.First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id or slug")
	}

	return toProductDomain(&productM), nil
}

// ListProducts retrieves one page of the catalog matching the filter.
func (repo *productRepository) ListProducts(ctx context.Context, filter repository.ProductFilter) (*repository.ProductPage, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where(effectivePriceExpr+" >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where(effectivePriceExpr+" <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	switch filter.SortBy {
	case repository.ProductSortPriceLow:
		query = query.Order(effectivePriceExpr + " ASC")
	case repository.ProductSortPriceHigh:
		query = query.Order(effectivePriceExpr + " DESC")
	case repository.ProductSortPopular:
		query = query.Order("total_sold DESC")
	case repository.ProductSortRating:
		query = query.Order("ratings DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var productMs []*model.ProductModel
	err := query.
		Preload("Variants").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &repository.ProductPage{
		Products:   toProductDomains(productMs),
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// ListFeaturedProducts retrieves up to limit featured products, newest first.
func (repo *productRepository) ListFeaturedProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Variants").
		Where("is_featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return toProductDomains(productMs), nil
}

// ListCategories retrieves the distinct categories present in the catalog.
func (repo *productRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// UpdateProduct updates the product row and replaces its variant set. The
// delete-and-insert runs inside one transaction so a concurrent reader never
// sees a half-replaced variant list.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit("Variants", "CreatedAt").Save(productM)
		if result.Error != nil {
			return result.Error
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&model.ProductVariantModel{}).Error; err != nil {
			return err
		}
		if len(productM.Variants) > 0 {
			if err := tx.Create(&productM.Variants).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// DeleteProduct removes a product and its variant rows.
func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductVariantModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.ProductModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrProductNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}

// ReserveVariantStock decrements one variant's stock with the availability
// check folded into the UPDATE itself. Zero rows affected means the guard
// failed, not that the statement errored, so the caller's transaction can
// still collect conflicts across multiple lines before rolling back.
func (repo *productRepository) ReserveVariantStock(ctx context.Context, key entity.VariantKey, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{}).
		Where("product_id = ? AND size = ? AND color = ? AND stock >= ?", key.ProductID, key.Size, key.Color, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to reserve variant stock")
	}

	if result.RowsAffected == 0 {
		var count int64
		err := repo.db.WithContext(ctx).
			Model(&model.ProductVariantModel{}).
			Where("product_id = ? AND size = ? AND color = ?", key.ProductID, key.Size, key.Color).
			Count(&count).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to check variant existence")
		}
		if count == 0 {
			return repository.ErrVariantNotFound
		}

		return repository.ErrInsufficientStock
	}

	// Keep the product-level aggregates in step with the variant row.
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", key.ProductID).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock - ?", quantity),
			"total_sold": gorm.Expr("total_sold + ?", quantity),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product aggregates")
	}

	return nil
}

// TopProductsBySold retrieves the catalog's best sellers.
func (repo *productRepository) TopProductsBySold(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("total_sold > 0").
		Order("total_sold DESC").
		Limit(limit).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top products")
	}

	return toProductDomains(productMs), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	variants := make([]entity.Variant, 0, len(data.Variants))
	for _, variant := range data.Variants {
		variants = append(variants, entity.Variant{
			Size:  variant.Size,
			Color: variant.Color,
			Stock: variant.Stock,
			SKU:   variant.SKU,
		})
	}

	return &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Slug:          data.Slug,
		Description:   data.Description,
		Category:      data.Category,
		Price:         data.Price,
		DiscountPrice: data.DiscountPrice,
		CostPrice:     data.CostPrice,
		Images:        data.Images,
		Variants:      variants,
		Stock:         data.Stock,
		Ratings:       data.Ratings,
		TotalReviews:  data.TotalReviews,
		TotalSold:     data.TotalSold,
		IsFeatured:    data.IsFeatured,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toProductDomains(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel for persistence.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	variants := make([]model.ProductVariantModel, 0, len(data.Variants))
	for _, variant := range data.Variants {
		variants = append(variants, model.ProductVariantModel{
			ProductID: data.ID,
			Size:      variant.Size,
			Color:     variant.Color,
			SKU:       variant.SKU,
			Stock:     variant.Stock,
		})
	}

	return &model.ProductModel{
		ID:            data.ID,
		Name:          data.Name,
		Slug:          data.Slug,
		Description:   data.Description,
		Category:      data.Category,
		Price:         data.Price,
		DiscountPrice: data.DiscountPrice,
		CostPrice:     data.CostPrice,
		Images:        data.Images,
		Stock:         data.Stock,
		Ratings:       data.Ratings,
		TotalReviews:  data.TotalReviews,
		TotalSold:     data.TotalSold,
		IsFeatured:    data.IsFeatured,
		Variants:      variants,
	}
}

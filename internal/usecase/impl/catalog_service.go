package impl

import (
	"context"
	"log/slog"
	"strings"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	"vexor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const featuredShelfSize = 8

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	products repository.ProductRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		products: products,
		logger:   logger,
	}
}

// ListProducts returns one page of the catalog.
func (srv *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) (*repository.ProductPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 12
	}
	if filter.SortBy == "" {
		filter.SortBy = repository.ProductSortNewest
	}

	page, err := srv.products.ListProducts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return page, nil
}

// GetProduct returns a product by its ID or URL slug.
func (srv *catalogService) GetProduct(ctx context.Context, idOrSlug string) (*entity.Product, error) {
	product, err := srv.products.FindProductByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// FeaturedProducts returns the featured shelf.
func (srv *catalogService) FeaturedProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.products.ListFeaturedProducts(ctx, featuredShelfSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return products, nil
}

// Categories returns the distinct catalog categories.
func (srv *catalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := srv.products.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateProduct creates a product with a generated slug.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.DiscountPrice != nil && *input.DiscountPrice >= input.Price {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("discount price must be below the regular price")
	}
	if err := validateVariantSet(input.Variants); err != nil {
		return nil, err
	}

	id := uuid.New()
	product := &entity.Product{
		ID:            id,
		Name:          input.Name,
		Slug:          makeSlug(input.Name, id),
		Description:   input.Description,
		Category:      input.Category,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		CostPrice:     input.CostPrice,
		Images:        input.Images,
		Variants:      toVariants(input.Variants),
		IsFeatured:    input.IsFeatured,
	}
	product.Stock = aggregateStock(product.Variants)

	if err := srv.products.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("product created", "productID", product.ID, "slug", product.Slug)

	return product, nil
}

// UpdateProduct applies a partial update; a supplied variant list replaces
// the existing set and refreshes the aggregate stock.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.products.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.DiscountPrice != nil {
		product.DiscountPrice = input.DiscountPrice
	}
	if input.CostPrice != nil {
		product.CostPrice = input.CostPrice
	}
	if input.Images != nil {
		product.Images = *input.Images
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.Variants != nil {
		if err := validateVariantSet(*input.Variants); err != nil {
			return nil, err
		}
		product.Variants = toVariants(*input.Variants)
		product.Stock = aggregateStock(product.Variants)
	}

	if product.DiscountPrice != nil && *product.DiscountPrice >= product.Price {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("discount price must be below the regular price")
	}

	if err := srv.products.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.products.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.Info("product deleted", "productID", id)

	return nil
}

// validateVariantSet rejects duplicate (size, color) records so variant
// identity stays unique within a product.
func validateVariantSet(variants []usecase.VariantInput) error {
	seen := make(map[[2]string]struct{}, len(variants))
	for _, v := range variants {
		key := [2]string{v.Size, v.Color}
		if _, dup := seen[key]; dup {
			return domainerrors.ErrValidationFailed.WithDetails(
				"duplicate variant " + v.Size + "/" + v.Color)
		}
		seen[key] = struct{}{}
	}

	return nil
}

func toVariants(inputs []usecase.VariantInput) []entity.Variant {
	variants := make([]entity.Variant, len(inputs))
	for i, v := range inputs {
		variants[i] = entity.Variant{Size: v.Size, Color: v.Color, Stock: v.Stock, SKU: v.SKU}
	}

	return variants
}

func aggregateStock(variants []entity.Variant) int {
	var total int
	for _, v := range variants {
		total += v.Stock
	}

	return total
}

// makeSlug builds a URL-friendly identifier from the product name plus a
// short id suffix for uniqueness.
func makeSlug(name string, id uuid.UUID) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")

	return slug + "-" + id.String()[:8]
}

package impl

import (
	"context"
	"testing"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	mockRepo "vexor/internal/mocks/repository"
	"vexor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogProduct(id uuid.UUID) *entity.Product {
	return &entity.Product{
		ID:            id,
		Name:          "Oxford Shirt",
		Price:         2000,
		DiscountPrice: floatPtr(1500),
		Images:        []string{"oxford-front.jpg"},
		Variants: []entity.Variant{
			{Size: "M", Color: "Blue", Stock: 10, SKU: "OXF-M-BLU"},
			{Size: "L", Color: "Blue", Stock: 4, SKU: "OXF-L-BLU"},
		},
	}
}

func TestCartService_AddItem_SnapshotsProduct(t *testing.T) {
	mockCarts := mockRepo.NewMockCartStore(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCarts, mockProducts, newDiscardLogger())

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()
	product := newCatalogProduct(productID)

	mockProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(product, nil)

	mockCarts.EXPECT().
		Load(ctx, customerID).
		Return(entity.NewCart(customerID), nil)

	mockCarts.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	cart, err := service.AddItem(ctx, customerID, &usecase.AddCartItemInput{
		ProductID: productID,
		Size:      "M",
		Color:     "Blue",
		Quantity:  2,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	line := cart.Items[0]
	assert.Equal(t, "Oxford Shirt", line.ProductName)
	assert.Equal(t, "oxford-front.jpg", line.ProductImage)
	assert.Equal(t, float64(2000), line.Price)
	require.NotNil(t, line.DiscountPrice)
	assert.Equal(t, float64(1500), *line.DiscountPrice)
	assert.Equal(t, 2, line.Quantity)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	mockCarts := mockRepo.NewMockCartStore(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCarts, mockProducts, newDiscardLogger())

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()
	product := newCatalogProduct(productID)

	existing := entity.NewCart(customerID)
	existing.Add(entity.CartItem{
		ProductID: productID,
		Size:      "M",
		Color:     "Blue",
		Price:     2000,
		Quantity:  1,
	})

	mockProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(product, nil)

	mockCarts.EXPECT().
		Load(ctx, customerID).
		Return(existing, nil)

	mockCarts.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	cart, err := service.AddItem(ctx, customerID, &usecase.AddCartItemInput{
		ProductID: productID,
		Size:      "M",
		Color:     "Blue",
		Quantity:  3,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	mockCarts := mockRepo.NewMockCartStore(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCarts, mockProducts, newDiscardLogger())

	_, err := service.AddItem(context.Background(), uuid.New(), &usecase.AddCartItemInput{
		ProductID: uuid.New(),
		Size:      "M",
		Color:     "Blue",
		Quantity:  0,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	mockCarts := mockRepo.NewMockCartStore(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCarts, mockProducts, newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	mockProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		ProductID: productID,
		Size:      "M",
		Color:     "Blue",
		Quantity:  1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_AddItem_UnknownVariant(t *testing.T) {
	mockCarts := mockRepo.NewMockCartStore(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCarts, mockProducts, newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	mockProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(newCatalogProduct(productID), nil)

	_, err := service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		ProductID: productID,
		Size:      "XXL",
		Color:     "Blue",
		Quantity:  1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVariantNotFound))
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	mockCarts := mockRepo.NewMockCartStore(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCarts, mockProducts, newDiscardLogger())

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()

	existing := entity.NewCart(customerID)
	existing.Add(entity.CartItem{ProductID: productID, Size: "M", Color: "Blue", Quantity: 2})

	mockCarts.EXPECT().
		Load(ctx, customerID).
		Return(existing, nil)

	mockCarts.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	cart, err := service.UpdateQuantity(ctx, customerID, &usecase.UpdateCartItemInput{
		ProductID: productID,
		Size:      "M",
		Color:     "Blue",
		Quantity:  0,
	})
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_RemoveItem_AbsentKeyIsNoOp(t *testing.T) {
	mockCarts := mockRepo.NewMockCartStore(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCarts, mockProducts, newDiscardLogger())

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()

	existing := entity.NewCart(customerID)
	existing.Add(entity.CartItem{ProductID: productID, Size: "M", Color: "Blue", Quantity: 2})

	mockCarts.EXPECT().
		Load(ctx, customerID).
		Return(existing, nil)

	mockCarts.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	cart, err := service.RemoveItem(ctx, customerID, entity.VariantKey{
		ProductID: uuid.New(),
		Size:      "M",
		Color:     "Blue",
	})
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_ClearCart(t *testing.T) {
	mockCarts := mockRepo.NewMockCartStore(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCarts, mockProducts, newDiscardLogger())

	ctx := context.Background()
	customerID := uuid.New()

	mockCarts.EXPECT().
		Clear(ctx, customerID).
		Return(nil)

	require.NoError(t, service.ClearCart(ctx, customerID))
}

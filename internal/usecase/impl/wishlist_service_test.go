package impl

import (
	"context"
	"testing"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	mockRepo "vexor/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_AddToWishlist(t *testing.T) {
	mockWishlist := mockRepo.NewMockWishlistRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewWishlistService(mockWishlist, mockProducts, newDiscardLogger())

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()

	mockProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	mockWishlist.EXPECT().AddToWishlist(ctx, customerID, productID).Return(nil)

	err := service.AddToWishlist(ctx, customerID, productID)
	require.NoError(t, err)
}

func TestWishlistService_AddToWishlist_UnknownProduct(t *testing.T) {
	mockWishlist := mockRepo.NewMockWishlistRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewWishlistService(mockWishlist, mockProducts, newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	mockProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	err := service.AddToWishlist(ctx, uuid.New(), productID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestWishlistService_RemoveFromWishlist(t *testing.T) {
	mockWishlist := mockRepo.NewMockWishlistRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewWishlistService(mockWishlist, mockProducts, newDiscardLogger())

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()

	mockWishlist.EXPECT().RemoveFromWishlist(ctx, customerID, productID).Return(nil)

	err := service.RemoveFromWishlist(ctx, customerID, productID)
	require.NoError(t, err)
}

func TestWishlistService_ListWishlist(t *testing.T) {
	mockWishlist := mockRepo.NewMockWishlistRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewWishlistService(mockWishlist, mockProducts, newDiscardLogger())

	ctx := context.Background()
	customerID := uuid.New()
	saved := []*entity.Product{
		{ID: uuid.New(), Name: "Oxford Shirt"},
		{ID: uuid.New(), Name: "Slim Jeans"},
	}

	mockWishlist.EXPECT().ListWishlist(ctx, customerID).Return(saved, nil)

	products, err := service.ListWishlist(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Oxford Shirt", products[0].Name)
}

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

func TestReviewService_CreateReview(t *testing.T) {
	mockReviews := mockRepo.NewMockReviewRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(mockReviews, mockProducts, newDiscardLogger())

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()

	mockProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Oxford Shirt"}, nil)
	mockReviews.EXPECT().
		CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)
	mockReviews.EXPECT().RecomputeProductRating(ctx, productID).Return(nil)

	review, err := service.CreateReview(ctx, customerID, "Asha Kumar", &usecase.CreateReviewInput{
		ProductID: productID,
		Rating:    4,
		Comment:   "Fits well",
	})
	require.NoError(t, err)
	assert.Equal(t, customerID, review.CustomerID)
	assert.Equal(t, productID, review.ProductID)
	assert.Equal(t, "Asha Kumar", review.CustomerName)
	assert.Equal(t, 4, review.Rating)
	assert.NotEqual(t, uuid.Nil, review.ID)
}

func TestReviewService_CreateReview_MissingNameFallsBackToAnonymous(t *testing.T) {
	mockReviews := mockRepo.NewMockReviewRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(mockReviews, mockProducts, newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	mockProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	mockReviews.EXPECT().
		CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)
	mockReviews.EXPECT().RecomputeProductRating(ctx, productID).Return(nil)

	review, err := service.CreateReview(ctx, uuid.New(), "", &usecase.CreateReviewInput{
		ProductID: productID,
		Rating:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", review.CustomerName)
}

func TestReviewService_CreateReview_RatingOutOfBounds(t *testing.T) {
	mockReviews := mockRepo.NewMockReviewRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(mockReviews, mockProducts, newDiscardLogger())

	ctx := context.Background()

	for _, rating := range []int{0, -1, 6} {
		_, err := service.CreateReview(ctx, uuid.New(), "Asha Kumar", &usecase.CreateReviewInput{
			ProductID: uuid.New(),
			Rating:    rating,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))
	}
}

func TestReviewService_CreateReview_UnknownProduct(t *testing.T) {
	mockReviews := mockRepo.NewMockReviewRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(mockReviews, mockProducts, newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	mockProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.CreateReview(ctx, uuid.New(), "Asha Kumar", &usecase.CreateReviewInput{
		ProductID: productID,
		Rating:    3,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestReviewService_CreateReview_DuplicateRejected(t *testing.T) {
	mockReviews := mockRepo.NewMockReviewRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(mockReviews, mockProducts, newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	mockProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	mockReviews.EXPECT().
		CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
		Return(repository.ErrReviewAlreadyExists)

	_, err := service.CreateReview(ctx, uuid.New(), "Asha Kumar", &usecase.CreateReviewInput{
		ProductID: productID,
		Rating:    4,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewAlreadyExists))
}

func TestReviewService_ListProductReviews(t *testing.T) {
	mockReviews := mockRepo.NewMockReviewRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(mockReviews, mockProducts, newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()
	stored := []*entity.Review{
		{ID: uuid.New(), ProductID: productID, Rating: 5},
		{ID: uuid.New(), ProductID: productID, Rating: 3},
	}

	mockReviews.EXPECT().ListReviewsByProduct(ctx, productID).Return(stored, nil)

	reviews, err := service.ListProductReviews(ctx, productID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestReviewService_DeleteReview_AuthorCanDelete(t *testing.T) {
	mockReviews := mockRepo.NewMockReviewRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(mockReviews, mockProducts, newDiscardLogger())

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()
	reviewID := uuid.New()

	mockReviews.EXPECT().
		FindReviewByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, ProductID: productID, CustomerID: customerID}, nil)
	mockReviews.EXPECT().DeleteReview(ctx, reviewID).Return(nil)
	mockReviews.EXPECT().RecomputeProductRating(ctx, productID).Return(nil)

	err := service.DeleteReview(ctx, reviewID, customerID, false)
	require.NoError(t, err)
}

func TestReviewService_DeleteReview_ForeignCustomerForbidden(t *testing.T) {
	mockReviews := mockRepo.NewMockReviewRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(mockReviews, mockProducts, newDiscardLogger())

	ctx := context.Background()
	reviewID := uuid.New()

	mockReviews.EXPECT().
		FindReviewByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, ProductID: uuid.New(), CustomerID: uuid.New()}, nil)

	err := service.DeleteReview(ctx, reviewID, uuid.New(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_DeleteReview_StaffCanDeleteAny(t *testing.T) {
	mockReviews := mockRepo.NewMockReviewRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(mockReviews, mockProducts, newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()
	reviewID := uuid.New()

	mockReviews.EXPECT().
		FindReviewByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, ProductID: productID, CustomerID: uuid.New()}, nil)
	mockReviews.EXPECT().DeleteReview(ctx, reviewID).Return(nil)
	mockReviews.EXPECT().RecomputeProductRating(ctx, productID).Return(nil)

	err := service.DeleteReview(ctx, reviewID, uuid.New(), true)
	require.NoError(t, err)
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	mockReviews := mockRepo.NewMockReviewRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(mockReviews, mockProducts, newDiscardLogger())

	ctx := context.Background()
	reviewID := uuid.New()

	mockReviews.EXPECT().
		FindReviewByID(ctx, reviewID).
		Return(nil, repository.ErrReviewNotFound)

	err := service.DeleteReview(ctx, reviewID, uuid.New(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

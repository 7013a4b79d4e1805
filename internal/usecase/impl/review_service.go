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

// anonymousReviewer is shown when the token carries no display name.
const anonymousReviewer = "Anonymous"

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviews repository.ReviewRepository,
	products repository.ProductRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviews:  reviews,
		products: products,
		logger:   logger,
	}
}

// CreateReview adds the customer's review of a product and refreshes the
// product's rating aggregates.
func (srv *reviewService) CreateReview(ctx context.Context, customerID uuid.UUID, reviewerName string, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if !entity.IsValidRating(input.Rating) {
		return nil, errors.Wrap(domainerrors.ErrInvalidRating, "rating out of bounds")
	}

	if _, err := srv.products.FindProductByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if reviewerName == "" {
		reviewerName = anonymousReviewer
	}

	review := &entity.Review{
		ID:           uuid.New(),
		ProductID:    input.ProductID,
		CustomerID:   customerID,
		CustomerName: reviewerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
	}

	if err := srv.reviews.CreateReview(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrReviewAlreadyExists, "duplicate review")
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	if err := srv.reviews.RecomputeProductRating(ctx, input.ProductID); err != nil {
		return nil, errors.Wrap(err, "failed to refresh product rating")
	}

	return review, nil
}

// ListProductReviews returns a product's reviews, newest first.
func (srv *reviewService) ListProductReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviews.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// DeleteReview removes a review and refreshes the product's rating
// aggregates. Only the review's author or staff may delete it.
func (srv *reviewService) DeleteReview(ctx context.Context, reviewID, requesterID uuid.UUID, requesterIsStaff bool) error {
	review, err := srv.reviews.FindReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
		}

		return errors.Wrap(err, "failed to find review")
	}

	if review.CustomerID != requesterID && !requesterIsStaff {
		return errors.Wrap(domainerrors.ErrForbidden, "review belongs to another customer")
	}

	if err := srv.reviews.DeleteReview(ctx, reviewID); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	if err := srv.reviews.RecomputeProductRating(ctx, review.ProductID); err != nil {
		return errors.Wrap(err, "failed to refresh product rating")
	}

	return nil
}

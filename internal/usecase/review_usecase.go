package usecase

import (
	"context"

	"vexor/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput carries the customer form for a new product review.
type CreateReviewInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment"`
}

// ReviewUsecase manages product reviews. Writing a review also refreshes the
// product's average rating and review count, so the catalog's rating sort
// stays consistent with what customers actually submitted.
type ReviewUsecase interface {
	// CreateReview adds the customer's review of a product. Each customer
	// may review a product at most once.
	CreateReview(ctx context.Context, customerID uuid.UUID, reviewerName string, input *CreateReviewInput) (*entity.Review, error)

	// ListProductReviews returns a product's reviews, newest first.
	ListProductReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// DeleteReview removes a review. Only its author or staff may delete it.
	DeleteReview(ctx context.Context, reviewID, requesterID uuid.UUID, requesterIsStaff bool) error
}

package repository

import (
	"context"

	"vexor/internal/domain/entity"
	"vexor/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")

	// ErrReviewAlreadyExists is returned when the customer has already
	// reviewed the product.
	ErrReviewAlreadyExists = errors.New("review already exists")
)

// ReviewRepository defines the interface for product-review database operations.
type ReviewRepository interface {
	// CreateReview persists a new review. Returns ErrReviewAlreadyExists when
	// the customer has already reviewed the product.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewByID retrieves a review by its unique ID.
	FindReviewByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListReviewsByProduct retrieves a product's reviews, newest first.
	ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// DeleteReview removes a review by its ID.
	DeleteReview(ctx context.Context, id uuid.UUID) error

	// RecomputeProductRating refreshes the product's average rating and
	// review count from its current review set.
	RecomputeProductRating(ctx context.Context, productID uuid.UUID) error
}

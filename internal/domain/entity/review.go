package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for a product review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is one customer's rating of a product. A customer may review a
// product at most once; the product's Ratings/TotalReviews aggregates are
// recomputed from the full review set on every write.
type Review struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the review.
	ProductID    uuid.UUID // Product being reviewed.
	CustomerID   uuid.UUID // Customer who wrote the review.
	CustomerName string    // Display name shown next to the review.
	Rating       int       // Star rating, MinRating..MaxRating inclusive.
	Comment      string    // Free-text review body.
	CreatedAt    time.Time // Timestamp of when this review was created.
}

// IsValidRating reports whether the rating falls inside the allowed bounds.
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

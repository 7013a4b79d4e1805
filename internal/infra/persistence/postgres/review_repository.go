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
)

// reviewRepository implements the domain.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateReview persists a new review. The unique (product, customer) index
// turns a duplicate submission into ErrReviewAlreadyExists.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrReviewAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindReviewByID retrieves a review by its unique ID.
func (repo *reviewRepository) FindReviewByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// ListReviewsByProduct retrieves a product's reviews, newest first.
func (repo *reviewRepository) ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviewMs []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviewMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return toReviewDomains(reviewMs), nil
}

// DeleteReview removes a review by its ID.
func (repo *reviewRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// RecomputeProductRating refreshes the product's rating aggregates from its
// current review set. With no reviews left both aggregates go back to zero.
func (repo *reviewRepository) RecomputeProductRating(ctx context.Context, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Exec(`
		UPDATE products SET
			ratings = COALESCE((SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews WHERE product_id = ?), 0),
			total_reviews = (SELECT COUNT(*) FROM reviews WHERE product_id = ?)
		WHERE id = ?`,
		productID, productID, productID,
	).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to recompute product rating")
	}

	return nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:           data.ID,
		ProductID:    data.ProductID,
		CustomerID:   data.CustomerID,
		CustomerName: data.CustomerName,
		Rating:       data.Rating,
		Comment:      data.Comment,
		CreatedAt:    data.CreatedAt,
	}
}

func toReviewDomains(data []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(data))
	for _, reviewM := range data {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel for persistence.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:           data.ID,
		ProductID:    data.ProductID,
		CustomerID:   data.CustomerID,
		CustomerName: data.CustomerName,
		Rating:       data.Rating,
		Comment:      data.Comment,
	}
}

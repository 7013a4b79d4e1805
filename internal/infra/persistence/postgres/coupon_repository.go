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

// couponRepository implements the domain.CouponRepository interface using GORM.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

// CreateCoupon persists a new coupon. The unique index on code surfaces
// duplicates as ErrCouponCodeTaken.
func (repo *couponRepository) CreateCoupon(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCouponCodeTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt

	return nil
}

// FindCouponByCode retrieves an active coupon by its normalized code.
// Inactive coupons are invisible here on purpose.
func (repo *couponRepository) FindCouponByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel
	err := repo.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&couponM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// ListCoupons retrieves all coupons, newest first.
func (repo *couponRepository) ListCoupons(ctx context.Context) ([]*entity.Coupon, error) {
	var couponMs []*model.CouponModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&couponMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(couponMs))
	for _, couponM := range couponMs {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, nil
}

// DeleteCoupon removes a coupon by its ID.
func (repo *couponRepository) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CouponModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// RedeemCoupon spends one use of the coupon with the budget check folded
// into the UPDATE itself, mirroring the stock reservation discipline. Zero
// rows affected means another checkout took the last use first.
func (repo *couponRepository) RedeemCoupon(ctx context.Context, code string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("code = ? AND is_active = ? AND used_count < usage_limit", code, true).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to redeem coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponExhausted
	}

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:                 data.ID,
		Code:               data.Code,
		DiscountPercentage: data.DiscountPercentage,
		ExpiryDate:         data.ExpiryDate,
		UsageLimit:         data.UsageLimit,
		UsedCount:          data.UsedCount,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel for persistence.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:                 data.ID,
		Code:               data.Code,
		DiscountPercentage: data.DiscountPercentage,
		ExpiryDate:         data.ExpiryDate,
		UsageLimit:         data.UsageLimit,
		UsedCount:          data.UsedCount,
		IsActive:           data.IsActive,
	}
}

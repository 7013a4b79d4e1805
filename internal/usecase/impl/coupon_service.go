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

// couponService implements the CouponUsecase interface (admin surface).
type couponService struct {
	coupons repository.CouponRepository
	logger  *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(
	coupons repository.CouponRepository,
	logger *slog.Logger,
) usecase.CouponUsecase {
	return &couponService{
		coupons: coupons,
		logger:  logger,
	}
}

// CreateCoupon creates a coupon with a normalized, unique code.
func (srv *couponService) CreateCoupon(ctx context.Context, input *usecase.CreateCouponInput) (*entity.Coupon, error) {
	coupon := &entity.Coupon{
		ID:                 uuid.New(),
		Code:               entity.NormalizeCouponCode(input.Code),
		DiscountPercentage: input.DiscountPercentage,
		ExpiryDate:         input.ExpiryDate,
		UsageLimit:         input.UsageLimit,
		IsActive:           true,
	}

	if err := srv.coupons.CreateCoupon(ctx, coupon); err != nil {
		if errors.Is(err, repository.ErrCouponCodeTaken) {
			return nil, errors.Wrap(domainerrors.ErrCouponAlreadyExists, "code already in use")
		}

		return nil, errors.Wrap(err, "failed to create coupon")
	}

	srv.logger.Info("coupon created", "code", coupon.Code, "usageLimit", coupon.UsageLimit)

	return coupon, nil
}

// ListCoupons returns all coupons.
func (srv *couponService) ListCoupons(ctx context.Context) ([]*entity.Coupon, error) {
	coupons, err := srv.coupons.ListCoupons(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return coupons, nil
}

// DeleteCoupon removes a coupon by its ID.
func (srv *couponService) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	if err := srv.coupons.DeleteCoupon(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "coupon not found")
		}

		return errors.Wrap(err, "failed to delete coupon")
	}

	return nil
}

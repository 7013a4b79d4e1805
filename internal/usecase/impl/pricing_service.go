package impl

import (
	"context"
	"log/slog"
	"time"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	"vexor/internal/usecase"

	"github.com/pkg/errors"
)

// pricingService implements the PricingUsecase interface. Subtotal and
// total are pure arithmetic; coupon validation delegates to the coupon
// store and never applies a discount for a code it cannot validate.
type pricingService struct {
	coupons repository.CouponRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewPricingService is the constructor for pricingService.
func NewPricingService(
	coupons repository.CouponRepository,
	logger *slog.Logger,
) usecase.PricingUsecase {
	return &pricingService{
		coupons: coupons,
		logger:  logger,
		now:     time.Now,
	}
}

// ComputeSubtotal returns the sum of effective unit price times quantity.
func (srv *pricingService) ComputeSubtotal(items []entity.CartItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice() * float64(item.Quantity)
	}

	return subtotal
}

// ValidateCoupon checks a code and quotes its discount against a subtotal.
func (srv *pricingService) ValidateCoupon(ctx context.Context, code string, subtotal float64) (*usecase.CouponQuote, error) {
	normalized := entity.NormalizeCouponCode(code)

	coupon, err := srv.coupons.FindCouponByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCoupon, "unknown or inactive coupon")
		}

		return nil, errors.Wrap(err, "failed to look up coupon")
	}

	if coupon.IsExpired(srv.now()) {
		return nil, errors.Wrap(domainerrors.ErrCouponExpired, "coupon past expiry date")
	}
	if coupon.IsExhausted() {
		return nil, errors.Wrap(domainerrors.ErrCouponExhausted, "coupon usage limit reached")
	}

	// DiscountFor clamps to the subtotal, so the quote can never go negative.
	discount := coupon.DiscountFor(subtotal)

	srv.logger.Debug("coupon validated",
		"code", normalized,
		"subtotal", subtotal,
		"discount", discount,
	)

	return &usecase.CouponQuote{
		Code:           normalized,
		DiscountAmount: discount,
		FinalAmount:    srv.ComputeTotal(subtotal, discount),
	}, nil
}

// ComputeTotal returns max(0, subtotal - discount).
func (srv *pricingService) ComputeTotal(subtotal, discount float64) float64 {
	total := subtotal - discount
	if total < 0 {
		return 0
	}

	return total
}

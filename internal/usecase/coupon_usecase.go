package usecase

import (
	"context"
	"time"

	"vexor/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCouponInput carries the admin form for a new coupon.
type CreateCouponInput struct {
	Code               string    `json:"code" validate:"required"`
	DiscountPercentage float64   `json:"discount_percentage" validate:"required,gt=0,lte=100"`
	ExpiryDate         time.Time `json:"expiry_date" validate:"required"`
	UsageLimit         int       `json:"usage_limit" validate:"required,gt=0"`
}

// CouponUsecase manages coupon codes. Validation against a cart total lives
// on PricingUsecase; this interface is the admin surface.
type CouponUsecase interface {
	// CreateCoupon creates a coupon with a normalized, unique code.
	CreateCoupon(ctx context.Context, input *CreateCouponInput) (*entity.Coupon, error)

	// ListCoupons returns all coupons.
	ListCoupons(ctx context.Context) ([]*entity.Coupon, error)

	// DeleteCoupon removes a coupon by its ID.
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
}

package usecase

import (
	"context"

	"vexor/internal/domain/entity"
)

// CouponQuote is the result of validating a coupon against a cart total.
type CouponQuote struct {
	Code           string  `json:"code"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
}

// PricingUsecase is the pricing engine: pure cart arithmetic plus coupon
// validation against the coupon collaborator.
type PricingUsecase interface {
	// ComputeSubtotal returns the sum of effective unit price times quantity
	// over the given items. Deterministic, pure function of its input.
	ComputeSubtotal(items []entity.CartItem) float64

	// ValidateCoupon checks a code against the coupon store and quotes the
	// discount for the given subtotal. The discount is clamped so it never
	// exceeds the subtotal.
	ValidateCoupon(ctx context.Context, code string, subtotal float64) (*CouponQuote, error)

	// ComputeTotal returns max(0, subtotal - discount).
	ComputeTotal(subtotal, discount float64) float64
}

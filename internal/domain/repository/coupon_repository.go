package repository

import (
	"context"

	"vexor/internal/domain/entity"
	"vexor/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when no active coupon matches a code.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrCouponExhausted is returned when a guarded redemption finds the usage
	// budget already spent.
	ErrCouponExhausted = errors.New("coupon usage limit reached")
	// ErrCouponCodeTaken is returned when creating a coupon with an existing code.
	ErrCouponCodeTaken = errors.New("coupon code already exists")
)

// CouponRepository defines the interface for coupon-related database operations.
type CouponRepository interface {
	// CreateCoupon persists a new coupon. The code must be unique.
	CreateCoupon(ctx context.Context, coupon *entity.Coupon) error

	// FindCouponByCode retrieves an active coupon by its normalized code.
	FindCouponByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// ListCoupons retrieves all coupons.
	ListCoupons(ctx context.Context) ([]*entity.Coupon, error)

	// DeleteCoupon removes a coupon by its ID.
	DeleteCoupon(ctx context.Context, id uuid.UUID) error

	// RedeemCoupon atomically increments used_count, guarded by a precondition
	// that the usage limit has not been reached. Returns ErrCouponExhausted
	// when the guard fails. Same atomic-counter discipline as variant stock.
	RedeemCoupon(ctx context.Context, code string) error
}

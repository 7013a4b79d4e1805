package impl

import (
	"context"
	"testing"
	"time"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	mockRepo "vexor/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingService_ComputeSubtotal(t *testing.T) {
	mockCoupons := mockRepo.NewMockCouponRepository(t)
	service := NewPricingService(mockCoupons, newDiscardLogger())

	items := []entity.CartItem{
		{ProductID: uuid.New(), Price: 1000, Quantity: 2},
		{ProductID: uuid.New(), Price: 800, DiscountPrice: floatPtr(500), Quantity: 1},
	}

	// The discounted line counts at its discount price.
	assert.Equal(t, float64(2500), service.ComputeSubtotal(items))
	assert.Equal(t, float64(0), service.ComputeSubtotal(nil))
}

func TestPricingService_ComputeTotal_FlooredAtZero(t *testing.T) {
	mockCoupons := mockRepo.NewMockCouponRepository(t)
	service := NewPricingService(mockCoupons, newDiscardLogger())

	assert.Equal(t, float64(2250), service.ComputeTotal(2500, 250))
	assert.Equal(t, float64(0), service.ComputeTotal(100, 150))
}

func TestPricingService_ValidateCoupon_QuotesDiscount(t *testing.T) {
	mockCoupons := mockRepo.NewMockCouponRepository(t)
	service := NewPricingService(mockCoupons, newDiscardLogger())

	ctx := context.Background()
	coupon := &entity.Coupon{
		ID:                 uuid.New(),
		Code:               "SAVE250",
		DiscountPercentage: 10,
		ExpiryDate:         time.Now().Add(24 * time.Hour),
		UsageLimit:         100,
		UsedCount:          5,
		IsActive:           true,
	}

	// Lookup happens with the normalized code.
	mockCoupons.EXPECT().
		FindCouponByCode(ctx, "SAVE250").
		Return(coupon, nil)

	quote, err := service.ValidateCoupon(ctx, "  save250 ", 2500)
	require.NoError(t, err)
	assert.Equal(t, "SAVE250", quote.Code)
	assert.Equal(t, float64(250), quote.DiscountAmount)
	assert.Equal(t, float64(2250), quote.FinalAmount)
}

func TestPricingService_ValidateCoupon_UnknownCode(t *testing.T) {
	mockCoupons := mockRepo.NewMockCouponRepository(t)
	service := NewPricingService(mockCoupons, newDiscardLogger())

	ctx := context.Background()

	mockCoupons.EXPECT().
		FindCouponByCode(ctx, "NOPE").
		Return(nil, repository.ErrCouponNotFound)

	_, err := service.ValidateCoupon(ctx, "nope", 2500)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoupon))
}

func TestPricingService_ValidateCoupon_Expired(t *testing.T) {
	mockCoupons := mockRepo.NewMockCouponRepository(t)
	service := NewPricingService(mockCoupons, newDiscardLogger())

	ctx := context.Background()
	coupon := &entity.Coupon{
		Code:               "OLD10",
		DiscountPercentage: 10,
		ExpiryDate:         time.Now().Add(-time.Hour),
		UsageLimit:         100,
		IsActive:           true,
	}

	mockCoupons.EXPECT().
		FindCouponByCode(ctx, "OLD10").
		Return(coupon, nil)

	_, err := service.ValidateCoupon(ctx, "OLD10", 2500)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponExpired))
}

func TestPricingService_ValidateCoupon_Exhausted(t *testing.T) {
	mockCoupons := mockRepo.NewMockCouponRepository(t)
	service := NewPricingService(mockCoupons, newDiscardLogger())

	ctx := context.Background()
	coupon := &entity.Coupon{
		Code:               "SPENT",
		DiscountPercentage: 10,
		ExpiryDate:         time.Now().Add(24 * time.Hour),
		UsageLimit:         10,
		UsedCount:          10,
		IsActive:           true,
	}

	mockCoupons.EXPECT().
		FindCouponByCode(ctx, "SPENT").
		Return(coupon, nil)

	_, err := service.ValidateCoupon(ctx, "SPENT", 2500)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponExhausted))
}

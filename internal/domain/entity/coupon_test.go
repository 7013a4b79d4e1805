package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "SAVE250", NormalizeCouponCode("save250"))
	assert.Equal(t, "SAVE250", NormalizeCouponCode("  Save250 "))
	assert.Equal(t, "SAVE250", NormalizeCouponCode("SAVE250"))
	assert.Equal(t, "", NormalizeCouponCode("   "))
}

func TestCoupon_DiscountFor(t *testing.T) {
	coupon := &Coupon{Code: "SAVE250", DiscountPercentage: 10}

	assert.Equal(t, float64(250), coupon.DiscountFor(2500))
	assert.Equal(t, float64(0), coupon.DiscountFor(0))
}

func TestCoupon_DiscountFor_RoundsToWholePaise(t *testing.T) {
	coupon := &Coupon{DiscountPercentage: 15}

	// 15% of 333.33 is 49.9995; rounded to 50.00.
	assert.InDelta(t, 50.00, coupon.DiscountFor(333.33), 1e-9)
}

func TestCoupon_DiscountFor_ClampsToTotal(t *testing.T) {
	coupon := &Coupon{DiscountPercentage: 100}

	assert.Equal(t, float64(500), coupon.DiscountFor(500))
}

func TestCoupon_IsExpired(t *testing.T) {
	now := time.Now()
	coupon := &Coupon{ExpiryDate: now.Add(24 * time.Hour)}

	assert.False(t, coupon.IsExpired(now))
	assert.True(t, coupon.IsExpired(now.Add(48*time.Hour)))
}

func TestCoupon_IsExhausted(t *testing.T) {
	coupon := &Coupon{UsageLimit: 3, UsedCount: 2}
	assert.False(t, coupon.IsExhausted())

	coupon.UsedCount = 3
	assert.True(t, coupon.IsExhausted())

	coupon.UsedCount = 4
	assert.True(t, coupon.IsExhausted())
}

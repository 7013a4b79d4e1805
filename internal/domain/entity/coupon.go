// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Coupon is a percentage discount code with an expiry and a usage budget.
// Codes are stored normalized to upper case; lookups normalize the same way
// so customers can type codes in any case.
type Coupon struct {
	ID                 uuid.UUID // The Global Unique Identifier (GUID) for the coupon.
	Code               string    // Normalized (upper-case) coupon code, unique.
	DiscountPercentage float64   // Discount as a percentage of the cart total.
	ExpiryDate         time.Time // Moment after which the coupon is no longer valid.
	UsageLimit         int       // Maximum number of redemptions.
	UsedCount          int       // Redemptions so far. Incremented atomically at order time.
	IsActive           bool      // Inactive coupons never validate.
	CreatedAt          time.Time // Timestamp of when this coupon was created.
}

// NormalizeCouponCode canonicalizes a customer-entered code for lookup.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsExpired reports whether the coupon's expiry has passed at the given moment.
func (c *Coupon) IsExpired(now time.Time) bool {
	return c.ExpiryDate.Before(now)
}

// IsExhausted reports whether the usage budget is spent.
func (c *Coupon) IsExhausted() bool {
	return c.UsedCount >= c.UsageLimit
}

// DiscountFor computes the discount this coupon grants against a cart total,
// rounded to whole paise and clamped so it never exceeds the total.
func (c *Coupon) DiscountFor(cartTotal float64) float64 {
	discount := math.Round(cartTotal*c.DiscountPercentage) / 100

	return math.Min(discount, cartTotal)
}

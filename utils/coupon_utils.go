package utils

import (
	"math"
	"time"

	"github.com/TrungLe-99/ShopViet/models"
)

// Coupon rejection reasons, surfaced to the caller alongside IsValid=false
const (
	CouponReasonNotFound     = "coupon not found"
	CouponReasonDisabled     = "coupon is disabled"
	CouponReasonNotStarted   = "coupon has not started yet"
	CouponReasonExpired      = "coupon has expired"
	CouponReasonExhausted    = "coupon usage limit reached"
	CouponReasonBelowMinimum = "cart total is below the coupon minimum"
)

// CouponValidation is the outcome of validating a coupon against a cart total
type CouponValidation struct {
	IsValid        bool    `json:"is_valid"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalTotal     float64 `json:"final_total"`
	Reason         string  `json:"reason,omitempty"`
}

// ValidateCoupon checks a coupon against a cart total at the given instant.
// Checks run in a fixed order and the first failure wins. A nil coupon means
// the code did not resolve.
func ValidateCoupon(coupon *models.Coupon, cartTotal float64, now time.Time) CouponValidation {
	fail := func(reason string) CouponValidation {
		return CouponValidation{IsValid: false, DiscountAmount: 0, FinalTotal: cartTotal, Reason: reason}
	}

	if coupon == nil {
		return fail(CouponReasonNotFound)
	}
	if !coupon.Active {
		return fail(CouponReasonDisabled)
	}
	if now.Before(coupon.StartsAt) {
		return fail(CouponReasonNotStarted)
	}
	if coupon.ExpiresAt != nil && !now.Before(*coupon.ExpiresAt) {
		return fail(CouponReasonExpired)
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return fail(CouponReasonExhausted)
	}
	if coupon.MinimumAmount > 0 && cartTotal < coupon.MinimumAmount {
		return fail(CouponReasonBelowMinimum)
	}

	discount := ComputeCouponDiscount(coupon, cartTotal)
	return CouponValidation{
		IsValid:        true,
		DiscountAmount: discount,
		FinalTotal:     math.Max(0, cartTotal-discount),
	}
}

// ComputeCouponDiscount returns the discount a coupon grants on a cart
// total, assuming the coupon already passed validation. Percentage discounts
// are capped at MaxDiscount when set; fixed discounts never exceed the total.
func ComputeCouponDiscount(coupon *models.Coupon, cartTotal float64) float64 {
	var discount float64
	switch coupon.Type {
	case models.CouponTypePercentage:
		discount = cartTotal * coupon.Value / 100
		if coupon.MaxDiscount > 0 && discount > coupon.MaxDiscount {
			discount = coupon.MaxDiscount
		}
	case models.CouponTypeFixedAmount:
		discount = math.Min(coupon.Value, cartTotal)
	}
	if discount < 0 {
		discount = 0
	}
	return math.Round(discount*100) / 100
}

package utils

import (
	"testing"
	"time"

	"github.com/TrungLe-99/ShopViet/models"
	"github.com/stretchr/testify/assert"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
}

func sale10() *models.Coupon {
	return &models.Coupon{
		Code:          "SALE10",
		Type:          models.CouponTypePercentage,
		Value:         10,
		MaxDiscount:   50000,
		MinimumAmount: 100000,
		Active:        true,
		StartsAt:      fixedNow().AddDate(0, -1, 0),
	}
}

func TestValidateCouponPercentageWithinCap(t *testing.T) {
	result := ValidateCoupon(sale10(), 300000, fixedNow())

	assert.True(t, result.IsValid)
	assert.Equal(t, 30000.0, result.DiscountAmount)
	assert.Equal(t, 270000.0, result.FinalTotal)
	assert.Empty(t, result.Reason)
}

func TestValidateCouponPercentageCapApplies(t *testing.T) {
	// 10% of 900000 is 90000, capped at 50000
	result := ValidateCoupon(sale10(), 900000, fixedNow())

	assert.True(t, result.IsValid)
	assert.Equal(t, 50000.0, result.DiscountAmount)
	assert.Equal(t, 850000.0, result.FinalTotal)
}

func TestValidateCouponBelowMinimum(t *testing.T) {
	result := ValidateCoupon(sale10(), 50000, fixedNow())

	assert.False(t, result.IsValid)
	assert.Equal(t, 0.0, result.DiscountAmount)
	assert.Equal(t, 50000.0, result.FinalTotal)
	assert.Equal(t, CouponReasonBelowMinimum, result.Reason)
}

func TestValidateCouponFixedAmountNeverNegative(t *testing.T) {
	coupon := &models.Coupon{
		Code:     "FLAT100K",
		Type:     models.CouponTypeFixedAmount,
		Value:    100000,
		Active:   true,
		StartsAt: fixedNow().AddDate(0, -1, 0),
	}

	result := ValidateCoupon(coupon, 60000, fixedNow())

	assert.True(t, result.IsValid)
	assert.Equal(t, 60000.0, result.DiscountAmount)
	assert.Equal(t, 0.0, result.FinalTotal)
}

func TestValidateCouponNilMeansNotFound(t *testing.T) {
	result := ValidateCoupon(nil, 200000, fixedNow())

	assert.False(t, result.IsValid)
	assert.Equal(t, CouponReasonNotFound, result.Reason)
}

func TestValidateCouponChecksRunInOrder(t *testing.T) {
	expired := fixedNow().AddDate(0, 0, -1)

	// disabled AND expired AND exhausted AND below minimum: disabled wins
	coupon := sale10()
	coupon.Active = false
	coupon.ExpiresAt = &expired
	coupon.UsageLimit = 1
	coupon.UsedCount = 1

	result := ValidateCoupon(coupon, 50000, fixedNow())
	assert.Equal(t, CouponReasonDisabled, result.Reason)

	// active again: expiry is the next check to fire
	coupon.Active = true
	result = ValidateCoupon(coupon, 50000, fixedNow())
	assert.Equal(t, CouponReasonExpired, result.Reason)

	// unexpired: exhaustion fires before the minimum check
	coupon.ExpiresAt = nil
	result = ValidateCoupon(coupon, 50000, fixedNow())
	assert.Equal(t, CouponReasonExhausted, result.Reason)

	coupon.UsageLimit = 0
	result = ValidateCoupon(coupon, 50000, fixedNow())
	assert.Equal(t, CouponReasonBelowMinimum, result.Reason)
}

func TestValidateCouponNotStarted(t *testing.T) {
	coupon := sale10()
	coupon.StartsAt = fixedNow().AddDate(0, 0, 7)

	result := ValidateCoupon(coupon, 300000, fixedNow())

	assert.False(t, result.IsValid)
	assert.Equal(t, CouponReasonNotStarted, result.Reason)
}

func TestValidateCouponZeroUsageLimitIsUnlimited(t *testing.T) {
	coupon := sale10()
	coupon.UsageLimit = 0
	coupon.UsedCount = 1000000

	result := ValidateCoupon(coupon, 300000, fixedNow())
	assert.True(t, result.IsValid)
}

func TestComputeCouponDiscountRounding(t *testing.T) {
	coupon := &models.Coupon{Type: models.CouponTypePercentage, Value: 33}

	// 33% of 99999 is 32999.67
	discount := ComputeCouponDiscount(coupon, 99999)
	assert.Equal(t, 32999.67, discount)
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon types
const (
	CouponTypePercentage  = "percentage"
	CouponTypeFixedAmount = "fixed_amount"
)

type Coupon struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Code          string         `gorm:"uniqueIndex:idx_coupons_code_lower" json:"code"`
	Type          string         `json:"type"` // "percentage" or "fixed_amount"
	Value         float64        `json:"value"`
	MinimumAmount float64        `json:"minimum_amount"`
	MaxDiscount   float64        `json:"max_discount"`
	UsageLimit    int            `json:"usage_limit"` // 0 means unlimited
	UsedCount     int            `json:"used_count"`
	StartsAt      time.Time      `json:"starts_at"`
	ExpiresAt     *time.Time     `json:"expires_at,omitempty"`
	Active        bool           `json:"active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// UserCoupon records a redemption, one row per user per coupon
type UserCoupon struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `json:"user_id"`
	CouponID uint      `json:"coupon_id"`
	OrderID  uint      `json:"order_id"`
	UsedAt   time.Time `json:"used_at"`
}

// UserActiveCoupon tracks the coupon currently applied to a user's cart.
// Only the application is stored; the discount is recomputed against the
// live subtotal on every read.
type UserActiveCoupon struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex"`
	CouponID  uint      `json:"coupon_id"`
	Code      string    `json:"code"`
	AppliedAt time.Time `json:"applied_at"`
}

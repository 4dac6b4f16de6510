package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
)

// CartLine pairs a product with the quantity selected in the cart
type CartLine struct {
	Product  models.Product
	Quantity int
}

// CartDetails is the computed cart summary. Shipping stays zero here; the
// real zone-based cost is computed at checkout once an address is known.
type CartDetails struct {
	Items            []models.OrderItem
	Subtotal         float64
	DiscountAmount   float64
	ShippingAmount   float64
	Total            float64
	TotalWeight      float64
	CouponCode       string
	CouponApplicable bool
	CouponReason     string
}

// ComputeCartTotals derives the cart summary from its lines and the coupon
// currently applied, if any. Inactive or out-of-stock products contribute
// nothing to the totals but stay in the stored cart. The coupon is
// re-validated against the current subtotal: a coupon that no longer
// qualifies yields a zero discount and a reason, never an error.
func ComputeCartTotals(lines []CartLine, coupon *models.Coupon, now time.Time) CartDetails {
	var details CartDetails

	for _, line := range lines {
		if !line.Product.IsActive || line.Product.Stock < line.Quantity {
			continue
		}

		lineTotal := line.Product.Price * float64(line.Quantity)
		details.Items = append(details.Items, models.OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			ProductSKU:  line.Product.SKU,
			UnitPrice:   line.Product.Price,
			Quantity:    line.Quantity,
			TotalPrice:  lineTotal,
		})
		details.Subtotal += lineTotal
		details.TotalWeight += line.Product.Weight * float64(line.Quantity)
	}

	if coupon != nil {
		details.CouponCode = coupon.Code
		validation := ValidateCoupon(coupon, details.Subtotal, now)
		details.CouponApplicable = validation.IsValid
		details.DiscountAmount = validation.DiscountAmount
		details.CouponReason = validation.Reason
	}

	details.Total = math.Max(0, details.Subtotal-details.DiscountAmount+details.ShippingAmount)
	details.Total = math.Round(details.Total*100) / 100
	details.Subtotal = math.Round(details.Subtotal*100) / 100

	return details
}

// GetCartDetails loads a user's cart and applied coupon and computes totals
func GetCartDetails(userID uint) (*CartDetails, error) {
	db := config.DB

	var cartItems []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %v", err)
	}

	lines := make([]CartLine, 0, len(cartItems))
	for _, item := range cartItems {
		lines = append(lines, CartLine{Product: item.Product, Quantity: item.Quantity})
	}

	var coupon *models.Coupon
	var active models.UserActiveCoupon
	if err := db.Where("user_id = ?", userID).First(&active).Error; err == nil {
		var c models.Coupon
		if err := db.Where("id = ?", active.CouponID).First(&c).Error; err == nil {
			coupon = &c
		}
	}

	details := ComputeCartTotals(lines, coupon, time.Now())
	return &details, nil
}

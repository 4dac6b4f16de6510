package controllers

import (
	"fmt"
	"time"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const ordersCacheKey = "admin:orders"

// GetCheckoutSummary prices the cart for a chosen address: live coupon
// re-validation plus real zone-based shipping
func GetCheckoutSummary(c *gin.Context) {
	utils.LogInfo("GetCheckoutSummary called")

	user := c.MustGet("user").(models.User)

	details, err := utils.GetCartDetails(user.ID)
	if err != nil {
		utils.LogError("Failed to get cart details for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to get cart details", err.Error())
		return
	}
	if len(details.Items) == 0 {
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}

	// default address unless one is passed explicitly
	var address models.Address
	addressQuery := config.DB.Where("user_id = ?", user.ID)
	if id := c.Query("address_id"); id != "" {
		addressQuery = addressQuery.Where("id = ?", id)
	} else {
		addressQuery = addressQuery.Where("is_default = ?", true)
	}

	shippingAmount := 0.0
	shippingAvailable := false
	var shippingOptions []utils.ShippingQuote
	if err := addressQuery.First(&address).Error; err == nil {
		orderValue := details.Subtotal - details.DiscountAmount
		quotes, err := utils.GetShippingQuotes(&address, details.TotalWeight, orderValue)
		if err == nil && len(quotes) > 0 {
			shippingAvailable = true
			shippingOptions = quotes
			shippingAmount = quotes[0].Cost
		}
	}

	total := details.Subtotal - details.DiscountAmount + shippingAmount
	if total < 0 {
		total = 0
	}

	response := gin.H{
		"can_checkout":       shippingAvailable,
		"items":              details.Items,
		"subtotal":           details.Subtotal,
		"discount_amount":    details.DiscountAmount,
		"shipping_amount":    shippingAmount,
		"shipping_options":   shippingOptions,
		"shipping_available": shippingAvailable,
		"total":              total,
	}
	if details.CouponCode != "" {
		response["coupon_code"] = details.CouponCode
		response["coupon_applicable"] = details.CouponApplicable
		if !details.CouponApplicable {
			response["coupon_warning"] = "Coupon is no longer applicable: " + details.CouponReason
		}
	}

	utils.Success(c, "Checkout summary retrieved successfully", response)
}

// PlaceOrderRequest represents the checkout payload
type PlaceOrderRequest struct {
	AddressID     uint   `json:"address_id" binding:"required"`
	RateID        uint   `json:"rate_id"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// PlaceOrder snapshots the cart into an immutable order. Line items are
// copied by value; later product edits never change a placed order.
func PlaceOrder(c *gin.Context) {
	utils.LogInfo("PlaceOrder called")

	user := c.MustGet("user").(models.User)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !models.IsValidPaymentMethod(req.PaymentMethod) {
		utils.BadRequest(c, "Invalid payment method. Must be one of: cod, bank_transfer, vnpay, momo", nil)
		return
	}

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", req.AddressID, user.ID).First(&address).Error; err != nil {
		utils.NotFound(c, "Address not found")
		return
	}

	details, err := utils.GetCartDetails(user.ID)
	if err != nil {
		utils.LogError("Failed to get cart details for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to get cart details", err.Error())
		return
	}
	if len(details.Items) == 0 {
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}

	orderValue := details.Subtotal - details.DiscountAmount
	quotes, err := utils.GetShippingQuotes(&address, details.TotalWeight, orderValue)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.BadRequest(c, "Delivery not available for this address", nil)
			return
		}
		utils.InternalServerError(c, "Failed to compute shipping", nil)
		return
	}

	// a zone can match the address yet carry no active rates
	if len(quotes) == 0 {
		utils.BadRequest(c, "Delivery not available for this address", nil)
		return
	}

	quote := quotes[0]
	if req.RateID != 0 {
		found := false
		for _, q := range quotes {
			if q.RateID == req.RateID {
				quote = q
				found = true
				break
			}
		}
		if !found {
			utils.BadRequest(c, "Selected shipping rate does not serve this address", nil)
			return
		}
	}

	now := time.Now()
	total := details.Subtotal - details.DiscountAmount + quote.Cost
	if total < 0 {
		total = 0
	}

	order := models.Order{
		OrderNumber:     utils.GenerateOrderNumber(now),
		UserID:          user.ID,
		Subtotal:        details.Subtotal,
		DiscountAmount:  details.DiscountAmount,
		ShippingAmount:  quote.Cost,
		TaxAmount:       0,
		TotalAmount:     total,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.OrderPaymentPending,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: utils.FormatAddressSnapshot(&address),
		BillingAddress:  utils.FormatAddressSnapshot(&address),
		ShippingZoneID:  &quote.ZoneID,
	}
	if details.CouponApplicable {
		order.CouponCode = details.CouponCode
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create order for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create order", nil)
		return
	}

	for i := range details.Items {
		item := details.Items[i]
		item.OrderID = order.ID
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to create order item for order %d: %v", order.ID, err)
			utils.InternalServerError(c, "Failed to create order items", nil)
			return
		}

		// decrement stock inside the same transaction
		result := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
			Update("stock", gorm.Expr("stock - ?", item.Quantity))
		if result.Error != nil {
			tx.Rollback()
			utils.InternalServerError(c, "Failed to reserve stock", nil)
			return
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			utils.BadRequest(c, fmt.Sprintf("Insufficient stock for %s", item.ProductName), nil)
			return
		}
	}

	if order.CouponCode != "" {
		var coupon models.Coupon
		if err := tx.Where("code = ?", order.CouponCode).First(&coupon).Error; err == nil {
			if err := tx.Model(&coupon).Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
				tx.Rollback()
				utils.InternalServerError(c, "Failed to record coupon usage", nil)
				return
			}
			redemption := models.UserCoupon{UserID: user.ID, CouponID: coupon.ID, OrderID: order.ID, UsedAt: now}
			if err := tx.Create(&redemption).Error; err != nil {
				tx.Rollback()
				utils.InternalServerError(c, "Failed to record coupon usage", nil)
				return
			}
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserActiveCoupon{}).Error; err != nil {
			tx.Rollback()
			utils.InternalServerError(c, "Failed to clear applied coupon", nil)
			return
		}
	}

	if err := tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to clear cart for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to clear cart", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.InvalidateCache(ordersCacheKey)

	// best effort, never blocks order placement
	if err := utils.SendOrderConfirmation(user.Email, &order); err != nil {
		utils.LogError("Failed to send confirmation email for order %s: %v", order.OrderNumber, err)
	}

	utils.LogInfo("Placed order %s for user ID %d, total %.2f", order.OrderNumber, user.ID, order.TotalAmount)
	utils.Created(c, "Order placed successfully", gin.H{
		"order_id":        order.ID,
		"order_number":    order.OrderNumber,
		"subtotal":        order.Subtotal,
		"discount_amount": order.DiscountAmount,
		"shipping_amount": order.ShippingAmount,
		"total_amount":    order.TotalAmount,
		"status":          order.Status,
		"payment_status":  order.PaymentStatus,
		"payment_method":  order.PaymentMethod,
	})
}

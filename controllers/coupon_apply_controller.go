package controllers

import (
	"strings"
	"time"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
)

// ApplyCouponRequest represents the request body for applying a coupon
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyCoupon applies a coupon to the user's cart. The discount is
// recomputed against the live subtotal on every later read; only the
// application itself is stored.
func ApplyCoupon(c *gin.Context) {
	utils.LogInfo("ApplyCoupon called")

	user := c.MustGet("user").(models.User)

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	utils.LogInfo("Applying coupon %s for user ID %d", code, user.ID)

	var coupon models.Coupon
	if err := config.DB.Where("LOWER(code) = LOWER(?)", code).First(&coupon).Error; err != nil {
		utils.LogError("Coupon %s not found for user ID %d", code, user.ID)
		utils.NotFound(c, "Coupon not found")
		return
	}

	// one redemption per user per coupon
	var used models.UserCoupon
	if err := config.DB.Where("user_id = ? AND coupon_id = ?", user.ID, coupon.ID).First(&used).Error; err == nil {
		utils.BadRequest(c, "You have already used this coupon", nil)
		return
	}

	details, err := utils.GetCartDetails(user.ID)
	if err != nil {
		utils.LogError("Failed to get cart details for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}

	validation := utils.ValidateCoupon(&coupon, details.Subtotal, time.Now())
	if !validation.IsValid {
		utils.LogError("Coupon %s rejected for user ID %d: %s", code, user.ID, validation.Reason)
		utils.BadRequest(c, "Coupon cannot be applied: "+validation.Reason, gin.H{"reason": validation.Reason})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserActiveCoupon{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to clear previous coupon for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to apply coupon", nil)
		return
	}

	active := models.UserActiveCoupon{
		UserID:    user.ID,
		CouponID:  coupon.ID,
		Code:      coupon.Code,
		AppliedAt: time.Now(),
	}
	if err := tx.Create(&active).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to save active coupon for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to apply coupon", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.LogInfo("Applied coupon %s for user ID %d, discount %.2f", code, user.ID, validation.DiscountAmount)
	utils.Success(c, "Coupon applied successfully", gin.H{
		"coupon_code":     coupon.Code,
		"subtotal":        details.Subtotal,
		"discount_amount": validation.DiscountAmount,
		"final_total":     validation.FinalTotal,
	})
}

// RemoveCoupon removes the applied coupon from the user's cart
func RemoveCoupon(c *gin.Context) {
	utils.LogInfo("RemoveCoupon called")

	user := c.MustGet("user").(models.User)

	if err := config.DB.Where("user_id = ?", user.ID).Delete(&models.UserActiveCoupon{}).Error; err != nil {
		utils.LogError("Failed to remove coupon for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to remove coupon", nil)
		return
	}

	details, err := utils.GetCartDetails(user.ID)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}

	utils.LogInfo("Removed coupon for user ID %d", user.ID)
	utils.Success(c, "Coupon removed successfully", gin.H{
		"subtotal":        details.Subtotal,
		"discount_amount": 0,
		"total":           details.Total,
	})
}

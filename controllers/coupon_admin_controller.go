package controllers

import (
	"strings"
	"time"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
)

// CreateCouponRequest represents the request body for creating a new coupon
type CreateCouponRequest struct {
	Code          string     `json:"code" binding:"required"`
	Type          string     `json:"type" binding:"required,oneof=percentage fixed_amount"`
	Value         float64    `json:"value" binding:"required,gt=0"`
	MinimumAmount float64    `json:"minimum_amount"`
	MaxDiscount   float64    `json:"max_discount"`
	UsageLimit    int        `json:"usage_limit"`
	StartsAt      time.Time  `json:"starts_at" binding:"required"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

// CreateCoupon creates a new coupon
func CreateCoupon(c *gin.Context) {
	utils.LogInfo("CreateCoupon called")

	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Type == models.CouponTypePercentage && req.Value > 100 {
		utils.BadRequest(c, "Percentage value cannot exceed 100", nil)
		return
	}
	if req.ExpiresAt != nil && !req.ExpiresAt.After(req.StartsAt) {
		utils.BadRequest(c, "Expiry must be after the start date", nil)
		return
	}

	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))

	var existing models.Coupon
	if err := config.DB.Where("LOWER(code) = LOWER(?)", req.Code).First(&existing).Error; err == nil {
		utils.LogError("Coupon code already exists: %s", req.Code)
		utils.Conflict(c, "Coupon code already exists", nil)
		return
	}

	coupon := models.Coupon{
		Code:          req.Code,
		Type:          req.Type,
		Value:         req.Value,
		MinimumAmount: req.MinimumAmount,
		MaxDiscount:   req.MaxDiscount,
		UsageLimit:    req.UsageLimit,
		StartsAt:      req.StartsAt,
		ExpiresAt:     req.ExpiresAt,
		Active:        true,
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		utils.LogError("Failed to create coupon: %v", err)
		utils.InternalServerError(c, "Failed to create coupon", err.Error())
		return
	}

	utils.LogInfo("Created coupon %s, ID: %d", coupon.Code, coupon.ID)
	utils.Created(c, "Coupon created successfully", coupon)
}

// UpdateCouponRequest carries the mutable coupon fields
type UpdateCouponRequest struct {
	Value         *float64   `json:"value"`
	MinimumAmount *float64   `json:"minimum_amount"`
	MaxDiscount   *float64   `json:"max_discount"`
	UsageLimit    *int       `json:"usage_limit"`
	ExpiresAt     *time.Time `json:"expires_at"`
	Active        *bool      `json:"active"`
}

// UpdateCoupon mutates an existing coupon
func UpdateCoupon(c *gin.Context) {
	utils.LogInfo("UpdateCoupon called")

	var coupon models.Coupon
	if err := config.DB.First(&coupon, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Coupon not found")
		return
	}

	var req UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Value != nil {
		if coupon.Type == models.CouponTypePercentage && *req.Value > 100 {
			utils.BadRequest(c, "Percentage value cannot exceed 100", nil)
			return
		}
		updates["value"] = *req.Value
	}
	if req.MinimumAmount != nil {
		updates["minimum_amount"] = *req.MinimumAmount
	}
	if req.MaxDiscount != nil {
		updates["max_discount"] = *req.MaxDiscount
	}
	if req.UsageLimit != nil {
		if *req.UsageLimit > 0 && *req.UsageLimit < coupon.UsedCount {
			utils.BadRequest(c, "Usage limit cannot be below the current used count", nil)
			return
		}
		updates["usage_limit"] = *req.UsageLimit
	}
	if req.ExpiresAt != nil {
		updates["expires_at"] = *req.ExpiresAt
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if err := config.DB.Model(&coupon).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update coupon %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to update coupon", nil)
		return
	}

	utils.LogInfo("Updated coupon %d", coupon.ID)
	utils.Success(c, "Coupon updated successfully", coupon)
}

// DeleteCoupon soft-deletes a coupon
func DeleteCoupon(c *gin.Context) {
	utils.LogInfo("DeleteCoupon called")

	var coupon models.Coupon
	if err := config.DB.First(&coupon, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Coupon not found")
		return
	}

	if err := config.DB.Delete(&coupon).Error; err != nil {
		utils.LogError("Failed to delete coupon %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to delete coupon", nil)
		return
	}

	utils.LogInfo("Deleted coupon %d", coupon.ID)
	utils.Success(c, "Coupon deleted successfully", nil)
}

// ListCoupons returns coupons for the back office with pagination and search
func ListCoupons(c *gin.Context) {
	utils.LogInfo("ListCoupons called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Coupon{})

	if search := c.Query("search"); search != "" {
		query = query.Where("code ILIKE ?", "%"+search+"%")
	}
	if active := c.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count coupons", nil)
		return
	}
	pagination.SetTotal(total)

	var coupons []models.Coupon
	if err := query.Order("created_at DESC").Offset(pagination.Offset).Limit(pagination.Limit).Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", nil)
		return
	}

	now := time.Now()
	var items []gin.H
	for _, coupon := range coupons {
		items = append(items, gin.H{
			"id":             coupon.ID,
			"code":           coupon.Code,
			"type":           coupon.Type,
			"value":          coupon.Value,
			"minimum_amount": coupon.MinimumAmount,
			"max_discount":   coupon.MaxDiscount,
			"usage_limit":    coupon.UsageLimit,
			"used_count":     coupon.UsedCount,
			"active":         coupon.Active,
			"starts_at":      coupon.StartsAt.Format("2006-01-02"),
			"is_expired":     coupon.ExpiresAt != nil && now.After(*coupon.ExpiresAt),
		})
	}

	utils.SuccessWithPagination(c, "Coupons retrieved successfully", items, total, pagination.Page, pagination.Limit)
}

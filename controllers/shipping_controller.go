package controllers

import (
	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
)

const shippingZonesCacheKey = "shipping:zones"

// CreateShippingZoneRequest represents the zone creation payload
type CreateShippingZoneRequest struct {
	Name      string   `json:"name" binding:"required"`
	Countries []string `json:"countries" binding:"required,min=1"`
	States    []string `json:"states"`
	Cities    []string `json:"cities"`
}

// CreateShippingZone creates a shipping zone
func CreateShippingZone(c *gin.Context) {
	utils.LogInfo("CreateShippingZone called")

	var req CreateShippingZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	zone := models.ShippingZone{
		Name:      req.Name,
		Countries: req.Countries,
		States:    req.States,
		Cities:    req.Cities,
		IsActive:  true,
	}
	if err := config.DB.Create(&zone).Error; err != nil {
		utils.LogError("Failed to create shipping zone: %v", err)
		utils.InternalServerError(c, "Failed to create shipping zone", nil)
		return
	}

	utils.InvalidateCache(shippingZonesCacheKey)
	utils.LogInfo("Created shipping zone %d", zone.ID)
	utils.Created(c, "Shipping zone created successfully", zone)
}

// UpdateShippingZone mutates a zone's coverage or active flag
func UpdateShippingZone(c *gin.Context) {
	utils.LogInfo("UpdateShippingZone called")

	var zone models.ShippingZone
	if err := config.DB.First(&zone, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Shipping zone not found")
		return
	}

	var req struct {
		Name      *string   `json:"name"`
		Countries []string  `json:"countries"`
		States    *[]string `json:"states"`
		Cities    *[]string `json:"cities"`
		IsActive  *bool     `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Countries != nil {
		zone.Countries = req.Countries
	}
	if req.States != nil {
		zone.States = *req.States
	}
	if req.Cities != nil {
		zone.Cities = *req.Cities
	}
	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&zone).Error; err != nil {
		utils.LogError("Failed to update shipping zone %d: %v", zone.ID, err)
		utils.InternalServerError(c, "Failed to update shipping zone", nil)
		return
	}

	utils.InvalidateCache(shippingZonesCacheKey)
	utils.Success(c, "Shipping zone updated successfully", zone)
}

// DeleteShippingZone removes a zone and its rates
func DeleteShippingZone(c *gin.Context) {
	utils.LogInfo("DeleteShippingZone called")

	var zone models.ShippingZone
	if err := config.DB.First(&zone, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Shipping zone not found")
		return
	}

	tx := config.DB.Begin()
	if err := tx.Where("zone_id = ?", zone.ID).Delete(&models.ShippingRate{}).Error; err != nil {
		tx.Rollback()
		utils.InternalServerError(c, "Failed to delete shipping rates", nil)
		return
	}
	if err := tx.Delete(&zone).Error; err != nil {
		tx.Rollback()
		utils.InternalServerError(c, "Failed to delete shipping zone", nil)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.InvalidateCache(shippingZonesCacheKey)
	utils.Success(c, "Shipping zone deleted successfully", nil)
}

// ListShippingZones returns all zones with their rates, cached for 15 minutes
func ListShippingZones(c *gin.Context) {
	utils.LogInfo("ListShippingZones called")

	var zones []models.ShippingZone
	if !utils.CacheGetJSON(shippingZonesCacheKey, &zones) {
		if err := config.DB.Preload("Rates").Find(&zones).Error; err != nil {
			utils.LogError("Failed to fetch shipping zones: %v", err)
			utils.InternalServerError(c, "Failed to fetch shipping zones", nil)
			return
		}
		utils.CacheSetJSON(shippingZonesCacheKey, zones, utils.CacheTTLShipping)
	}

	utils.Success(c, "Shipping zones retrieved successfully", zones)
}

// CreateShippingRateRequest represents the rate creation payload
type CreateShippingRateRequest struct {
	Name                  string   `json:"name" binding:"required"`
	Cost                  float64  `json:"cost" binding:"min=0"`
	FreeShippingThreshold *float64 `json:"free_shipping_threshold"`
	EstimatedDaysMin      int      `json:"estimated_days_min" binding:"min=0"`
	EstimatedDaysMax      int      `json:"estimated_days_max" binding:"min=0"`
	WeightBased           bool     `json:"weight_based"`
	WeightRate            float64  `json:"weight_rate"`
}

// CreateShippingRate adds a rate to a zone
func CreateShippingRate(c *gin.Context) {
	utils.LogInfo("CreateShippingRate called")

	var zone models.ShippingZone
	if err := config.DB.First(&zone, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Shipping zone not found")
		return
	}

	var req CreateShippingRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.EstimatedDaysMax < req.EstimatedDaysMin {
		utils.BadRequest(c, "estimated_days_max must be at least estimated_days_min", nil)
		return
	}

	rate := models.ShippingRate{
		ZoneID:                zone.ID,
		Name:                  req.Name,
		Cost:                  req.Cost,
		FreeShippingThreshold: req.FreeShippingThreshold,
		EstimatedDaysMin:      req.EstimatedDaysMin,
		EstimatedDaysMax:      req.EstimatedDaysMax,
		WeightBased:           req.WeightBased,
		WeightRate:            req.WeightRate,
		IsActive:              true,
	}
	if err := config.DB.Create(&rate).Error; err != nil {
		utils.LogError("Failed to create shipping rate: %v", err)
		utils.InternalServerError(c, "Failed to create shipping rate", nil)
		return
	}

	utils.InvalidateCache(shippingZonesCacheKey)
	utils.Created(c, "Shipping rate created successfully", rate)
}

// DeleteShippingRate removes one rate
func DeleteShippingRate(c *gin.Context) {
	utils.LogInfo("DeleteShippingRate called")

	result := config.DB.Delete(&models.ShippingRate{}, c.Param("rateId"))
	if result.Error != nil {
		utils.InternalServerError(c, "Failed to delete shipping rate", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Shipping rate not found")
		return
	}

	utils.InvalidateCache(shippingZonesCacheKey)
	utils.Success(c, "Shipping rate deleted successfully", nil)
}

// GetShippingQuote prices shipping options for one of the user's addresses
// against the current cart
func GetShippingQuote(c *gin.Context) {
	utils.LogInfo("GetShippingQuote called")

	user := c.MustGet("user").(models.User)

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", c.Query("address_id"), user.ID).First(&address).Error; err != nil {
		utils.NotFound(c, "Address not found")
		return
	}

	details, err := utils.GetCartDetails(user.ID)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}

	orderValue := details.Subtotal - details.DiscountAmount
	quotes, err := utils.GetShippingQuotes(&address, details.TotalWeight, orderValue)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "No shipping zone covers this address")
			return
		}
		utils.LogError("Failed to compute shipping quotes for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to compute shipping quotes", nil)
		return
	}

	utils.Success(c, "Shipping quotes retrieved successfully", gin.H{
		"weight":      details.TotalWeight,
		"order_value": orderValue,
		"quotes":      quotes,
	})
}

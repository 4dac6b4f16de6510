package controllers

import (
	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
)

// AddressRequest represents the address create/update payload
type AddressRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	Country    string `json:"country" binding:"required"`
	PostalCode string `json:"postal_code"`
	IsDefault  bool   `json:"is_default"`
}

// ListAddresses returns the user's saved addresses
func ListAddresses(c *gin.Context) {
	utils.LogInfo("ListAddresses called")

	user := c.MustGet("user").(models.User)

	var addresses []models.Address
	if err := config.DB.Where("user_id = ?", user.ID).
		Order("is_default DESC, created_at DESC").Find(&addresses).Error; err != nil {
		utils.LogError("Failed to fetch addresses for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch addresses", nil)
		return
	}

	utils.Success(c, "Addresses retrieved successfully", gin.H{"addresses": addresses})
}

// CreateAddress saves a new address for the user
func CreateAddress(c *gin.Context) {
	utils.LogInfo("CreateAddress called")

	user := c.MustGet("user").(models.User)

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.ValidatePhone(req.Phone); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	var count int64
	config.DB.Model(&models.Address{}).Where("user_id = ?", user.ID).Count(&count)

	address := models.Address{
		UserID:     user.ID,
		FullName:   utils.SanitizeString(req.FullName),
		Phone:      req.Phone,
		Line1:      utils.SanitizeString(req.Line1),
		Line2:      utils.SanitizeString(req.Line2),
		City:       utils.SanitizeString(req.City),
		State:      utils.SanitizeString(req.State),
		Country:    utils.SanitizeString(req.Country),
		PostalCode: req.PostalCode,
		IsDefault:  req.IsDefault || count == 0, // first address becomes the default
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if address.IsDefault {
		if err := tx.Model(&models.Address{}).Where("user_id = ?", user.ID).
			Update("is_default", false).Error; err != nil {
			tx.Rollback()
			utils.InternalServerError(c, "Failed to update default address", nil)
			return
		}
	}

	if err := tx.Create(&address).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create address for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create address", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.Created(c, "Address created successfully", gin.H{"address": address})
}

// UpdateAddress edits one of the user's addresses
func UpdateAddress(c *gin.Context) {
	utils.LogInfo("UpdateAddress called")

	user := c.MustGet("user").(models.User)

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&address).Error; err != nil {
		utils.NotFound(c, "Address not found")
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.ValidatePhone(req.Phone); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if req.IsDefault && !address.IsDefault {
		if err := tx.Model(&models.Address{}).Where("user_id = ?", user.ID).
			Update("is_default", false).Error; err != nil {
			tx.Rollback()
			utils.InternalServerError(c, "Failed to update default address", nil)
			return
		}
	}

	updates := map[string]interface{}{
		"full_name":   utils.SanitizeString(req.FullName),
		"phone":       req.Phone,
		"line1":       utils.SanitizeString(req.Line1),
		"line2":       utils.SanitizeString(req.Line2),
		"city":        utils.SanitizeString(req.City),
		"state":       utils.SanitizeString(req.State),
		"country":     utils.SanitizeString(req.Country),
		"postal_code": req.PostalCode,
		"is_default":  req.IsDefault || address.IsDefault,
	}
	if err := tx.Model(&address).Updates(updates).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update address %d: %v", address.ID, err)
		utils.InternalServerError(c, "Failed to update address", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.Success(c, "Address updated successfully", gin.H{"address": address})
}

// DeleteAddress removes one of the user's addresses
func DeleteAddress(c *gin.Context) {
	utils.LogInfo("DeleteAddress called")

	user := c.MustGet("user").(models.User)

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&address).Error; err != nil {
		utils.NotFound(c, "Address not found")
		return
	}

	if err := config.DB.Delete(&address).Error; err != nil {
		utils.LogError("Failed to delete address %d: %v", address.ID, err)
		utils.InternalServerError(c, "Failed to delete address", nil)
		return
	}

	// promote the most recent remaining address when the default was removed
	if address.IsDefault {
		var next models.Address
		if err := config.DB.Where("user_id = ?", user.ID).
			Order("created_at DESC").First(&next).Error; err == nil {
			config.DB.Model(&next).Update("is_default", true)
		}
	}

	utils.Success(c, "Address deleted successfully", nil)
}

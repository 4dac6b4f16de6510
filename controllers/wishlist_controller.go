package controllers

import (
	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
)

// AddToWishlist saves a product to the user's wishlist
func AddToWishlist(c *gin.Context) {
	utils.LogInfo("AddToWishlist called")

	user := c.MustGet("user").(models.User)

	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.Where("is_active = ?", true).First(&product, req.ProductID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var existing models.Wishlist
	if err := config.DB.Where("user_id = ? AND product_id = ?", user.ID, req.ProductID).
		First(&existing).Error; err == nil {
		utils.Conflict(c, "Product is already in your wishlist", nil)
		return
	}

	entry := models.Wishlist{UserID: user.ID, ProductID: req.ProductID}
	if err := config.DB.Create(&entry).Error; err != nil {
		utils.LogError("Failed to add product %d to wishlist for user ID %d: %v", req.ProductID, user.ID, err)
		utils.InternalServerError(c, "Failed to add to wishlist", nil)
		return
	}

	utils.Created(c, "Product added to wishlist", gin.H{"wishlist_id": entry.ID})
}

// GetWishlist lists the user's saved products
func GetWishlist(c *gin.Context) {
	utils.LogInfo("GetWishlist called")

	user := c.MustGet("user").(models.User)

	var entries []models.Wishlist
	if err := config.DB.Preload("Product").Where("user_id = ?", user.ID).
		Order("created_at DESC").Find(&entries).Error; err != nil {
		utils.LogError("Failed to fetch wishlist for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch wishlist", nil)
		return
	}

	items := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		items = append(items, gin.H{
			"id":         entry.ID,
			"product_id": entry.ProductID,
			"name":       entry.Product.Name,
			"price":      entry.Product.Price,
			"image_url":  entry.Product.ImageURL,
			"in_stock":   entry.Product.Stock > 0,
			"is_active":  entry.Product.IsActive,
			"added_at":   entry.CreatedAt,
		})
	}

	utils.Success(c, "Wishlist retrieved successfully", gin.H{"wishlist": items})
}

// RemoveFromWishlist removes a product from the user's wishlist
func RemoveFromWishlist(c *gin.Context) {
	utils.LogInfo("RemoveFromWishlist called")

	user := c.MustGet("user").(models.User)

	result := config.DB.Where("user_id = ? AND product_id = ?", user.ID, c.Param("productId")).
		Delete(&models.Wishlist{})
	if result.Error != nil {
		utils.LogError("Failed to remove wishlist entry for user ID %d: %v", user.ID, result.Error)
		utils.InternalServerError(c, "Failed to remove from wishlist", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Product not found in wishlist")
		return
	}

	utils.Success(c, "Product removed from wishlist", nil)
}

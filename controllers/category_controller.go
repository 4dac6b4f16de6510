package controllers

import (
	"strings"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
)

const categoryListCacheKey = "catalog:categories"

// ListCategories lists unblocked categories with product counts, cached
func ListCategories(c *gin.Context) {
	utils.LogInfo("ListCategories called")

	var cached []gin.H
	if utils.CacheGetJSON(categoryListCacheKey, &cached) {
		utils.Success(c, "Categories retrieved successfully", gin.H{"categories": cached})
		return
	}

	var categories []models.Category
	if err := config.DB.Where("blocked = ?", false).Order("name ASC").Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", nil)
		return
	}

	items := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		var productCount int64
		config.DB.Model(&models.Product{}).
			Where("category_id = ? AND is_active = ?", category.ID, true).Count(&productCount)
		items = append(items, gin.H{
			"id":            category.ID,
			"name":          category.Name,
			"description":   category.Description,
			"image_url":     category.ImageURL,
			"product_count": productCount,
		})
	}

	utils.CacheSetJSON(categoryListCacheKey, items, utils.CacheTTLCategories)
	utils.Success(c, "Categories retrieved successfully", gin.H{"categories": items})
}

// CategoryRequest represents the admin category payload
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CreateCategory creates a category (admin)
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	name := utils.SanitizeString(strings.TrimSpace(req.Name))
	if name == "" {
		utils.BadRequest(c, "Category name is required", nil)
		return
	}

	var existing models.Category
	if err := config.DB.Where("LOWER(name) = LOWER(?)", name).First(&existing).Error; err == nil {
		utils.Conflict(c, "A category with this name already exists", nil)
		return
	}

	category := models.Category{
		Name:        name,
		Description: utils.SanitizeString(req.Description),
		ImageURL:    req.ImageURL,
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category: %v", err)
		utils.InternalServerError(c, "Failed to create category", nil)
		return
	}

	utils.InvalidateCache(categoryListCacheKey)
	utils.Created(c, "Category created successfully", gin.H{"category": category})
}

// UpdateCategory updates a category (admin)
func UpdateCategory(c *gin.Context) {
	utils.LogInfo("UpdateCategory called")

	var category models.Category
	if err := config.DB.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var duplicate models.Category
	if err := config.DB.Where("LOWER(name) = LOWER(?) AND id != ?", req.Name, category.ID).
		First(&duplicate).Error; err == nil {
		utils.Conflict(c, "A category with this name already exists", nil)
		return
	}

	updates := map[string]interface{}{
		"name":        utils.SanitizeString(req.Name),
		"description": utils.SanitizeString(req.Description),
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}

	if err := config.DB.Model(&category).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update category %d: %v", category.ID, err)
		utils.InternalServerError(c, "Failed to update category", nil)
		return
	}

	utils.InvalidateCache(categoryListCacheKey, productListCacheKey)
	utils.Success(c, "Category updated successfully", gin.H{"category": category})
}

// BlockCategory toggles a category's blocked flag (admin). Blocking hides
// the category from the storefront listing; its products stay purchasable.
func BlockCategory(c *gin.Context) {
	utils.LogInfo("BlockCategory called")

	var category models.Category
	if err := config.DB.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	if err := config.DB.Model(&category).Update("blocked", !category.Blocked).Error; err != nil {
		utils.InternalServerError(c, "Failed to update category", nil)
		return
	}

	utils.InvalidateCache(categoryListCacheKey)
	state := "blocked"
	if category.Blocked {
		state = "unblocked"
	}
	utils.Success(c, "Category "+state+" successfully", gin.H{"category_id": category.ID})
}

// DeleteCategory soft-deletes an empty category (admin)
func DeleteCategory(c *gin.Context) {
	utils.LogInfo("DeleteCategory called")

	var category models.Category
	if err := config.DB.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	var productCount int64
	config.DB.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&productCount)
	if productCount > 0 {
		utils.Conflict(c, "Category still has products. Reassign them first", gin.H{"product_count": productCount})
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		utils.LogError("Failed to delete category %d: %v", category.ID, err)
		utils.InternalServerError(c, "Failed to delete category", nil)
		return
	}

	utils.InvalidateCache(categoryListCacheKey)
	utils.Success(c, "Category deleted successfully", nil)
}

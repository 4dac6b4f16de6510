package controllers

import (
	"fmt"
	"strings"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const productListCacheKey = "catalog:products"

// ListProducts lists active products with search, sort and pagination.
// The first page of the unfiltered listing is served from cache.
func ListProducts(c *gin.Context) {
	utils.LogInfo("ListProducts called")

	pagination := utils.NewPagination(c)
	search := utils.SanitizeString(c.Query("search"))
	sortBy := c.DefaultQuery("sort", "newest")
	categoryID := c.Query("category_id")

	cacheable := search == "" && categoryID == "" && sortBy == "newest" && pagination.Page == 1
	if cacheable {
		var cached gin.H
		if utils.CacheGetJSON(productListCacheKey, &cached) {
			utils.Success(c, "Products retrieved successfully", cached)
			return
		}
	}

	query := config.DB.Model(&models.Product{}).Where("is_active = ?", true)
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(sku) LIKE ?",
			pattern, pattern, pattern)
	}
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	switch sortBy {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "name":
		query = query.Order("name ASC")
	case "popular":
		query = query.Order("views DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count products", nil)
		return
	}

	var products []models.Product
	if err := query.Preload("Category").Preload("Images").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", nil)
		return
	}

	items := make([]gin.H, 0, len(products))
	for _, product := range products {
		items = append(items, productSummary(&product))
	}

	if cacheable {
		payload := gin.H{
			"products": items,
			"pagination": gin.H{
				"total":        total,
				"current_page": pagination.Page,
				"per_page":     pagination.Limit,
			},
		}
		utils.CacheSetJSON(productListCacheKey, payload, utils.CacheTTLProducts)
	}

	utils.SuccessWithPagination(c, "Products retrieved successfully", items, total, pagination.Page, pagination.Limit)
}

func productSummary(product *models.Product) gin.H {
	return gin.H{
		"id":          product.ID,
		"name":        product.Name,
		"sku":         product.SKU,
		"price":       product.Price,
		"stock":       product.Stock,
		"weight":      product.Weight,
		"category":    product.Category.Name,
		"image_url":   product.ImageURL,
		"is_featured": product.IsFeatured,
		"in_stock":    product.Stock > 0,
	}
}

// GetProductDetails returns one product with its gallery and approved reviews
func GetProductDetails(c *gin.Context) {
	utils.LogInfo("GetProductDetails called")

	var product models.Product
	if err := config.DB.Preload("Category").Preload("Images").
		Where("is_active = ?", true).First(&product, "id = ?", c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	config.DB.Model(&product).UpdateColumn("views", gorm.Expr("views + 1"))

	var ratingStats struct {
		Average float64
		Count   int64
	}
	config.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ? AND is_approved = ?", product.ID, true).
		Scan(&ratingStats)

	data := productSummary(&product)
	data["description"] = product.Description
	data["images"] = product.Images
	data["rating_average"] = ratingStats.Average
	data["rating_count"] = ratingStats.Count

	utils.Success(c, "Product retrieved successfully", gin.H{"product": data})
}

// CreateProductRequest represents the admin product creation payload
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	SKU         string  `json:"sku" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Weight      float64 `json:"weight" binding:"gte=0"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	ImageURL    string  `json:"image_url"`
	IsFeatured  bool    `json:"is_featured"`
}

// CreateProduct creates a product (admin)
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	req.SKU = strings.ToUpper(strings.TrimSpace(req.SKU))
	if err := utils.ValidateSKU(req.SKU); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.BadRequest(c, "Category not found", nil)
		return
	}
	if category.Blocked {
		utils.BadRequest(c, "Category is blocked", nil)
		return
	}

	var existing models.Product
	if err := config.DB.Unscoped().Where("sku = ?", req.SKU).First(&existing).Error; err == nil {
		utils.Conflict(c, "A product with this SKU already exists", nil)
		return
	}

	product := models.Product{
		Name:        utils.SanitizeString(req.Name),
		SKU:         req.SKU,
		Description: utils.SanitizeString(req.Description),
		Price:       req.Price,
		Stock:       req.Stock,
		Weight:      req.Weight,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		IsActive:    true,
		IsFeatured:  req.IsFeatured,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", nil)
		return
	}

	utils.InvalidateCache(productListCacheKey)
	utils.LogInfo("Created product %d (%s)", product.ID, product.SKU)
	utils.Created(c, "Product created successfully", gin.H{"product": product})
}

// UpdateProductRequest represents the admin product update payload
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Weight      *float64 `json:"weight"`
	CategoryID  *uint    `json:"category_id"`
	ImageURL    *string  `json:"image_url"`
	IsActive    *bool    `json:"is_active"`
	IsFeatured  *bool    `json:"is_featured"`
}

// UpdateProduct updates product fields (admin)
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	var product models.Product
	if err := config.DB.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = utils.SanitizeString(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = utils.SanitizeString(*req.Description)
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			utils.BadRequest(c, "Price must be greater than zero", nil)
			return
		}
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			utils.BadRequest(c, "Stock cannot be negative", nil)
			return
		}
		updates["stock"] = *req.Stock
	}
	if req.Weight != nil {
		if *req.Weight < 0 {
			utils.BadRequest(c, "Weight cannot be negative", nil)
			return
		}
		updates["weight"] = *req.Weight
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := config.DB.First(&category, *req.CategoryID).Error; err != nil {
			utils.BadRequest(c, "Category not found", nil)
			return
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}

	if len(updates) == 0 {
		utils.BadRequest(c, "No fields to update", nil)
		return
	}

	if err := config.DB.Model(&product).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}

	utils.InvalidateCache(productListCacheKey)
	utils.Success(c, "Product updated successfully", gin.H{"product": product})
}

// DeleteProduct soft-deletes a product. force=true also removes it from
// every cart that holds it.
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	var product models.Product
	if err := config.DB.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	force := c.Query("force") == "true"

	var cartCount int64
	config.DB.Model(&models.CartItem{}).Where("product_id = ?", product.ID).Count(&cartCount)
	if cartCount > 0 && !force {
		utils.Conflict(c, fmt.Sprintf("Product is in %d carts. Use force=true to remove it anyway", cartCount), nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if force {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.CartItem{}).Error; err != nil {
			tx.Rollback()
			utils.InternalServerError(c, "Failed to remove product from carts", nil)
			return
		}
	}

	if err := tx.Delete(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.InvalidateCache(productListCacheKey)
	utils.LogInfo("Deleted product %d (removed from %d carts)", product.ID, cartCount)
	utils.Success(c, "Product deleted successfully", nil)
}

// UploadProductImages stores gallery images for a product
func UploadProductImages(c *gin.Context) {
	utils.LogInfo("UploadProductImages called")

	var product models.Product
	if err := config.DB.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequest(c, "Invalid multipart form", err.Error())
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequest(c, "No images provided", nil)
		return
	}

	var saved []models.ProductImage
	for i, file := range files {
		if err := utils.ValidateImageFile(file); err != nil {
			utils.BadRequest(c, err.Error(), gin.H{"file": file.Filename})
			return
		}

		path, err := utils.SaveUploadedFile(file, "uploads/products")
		if err != nil {
			utils.LogError("Failed to save image %s: %v", file.Filename, err)
			utils.InternalServerError(c, "Failed to save image", nil)
			return
		}
		image := models.ProductImage{ProductID: product.ID, URL: "/" + path, SortOrder: i}
		if err := config.DB.Create(&image).Error; err != nil {
			utils.InternalServerError(c, "Failed to record image", nil)
			return
		}
		saved = append(saved, image)
	}

	// first gallery image doubles as the cover when none is set
	if product.ImageURL == "" && len(saved) > 0 {
		config.DB.Model(&product).Update("image_url", saved[0].URL)
	}

	utils.InvalidateCache(productListCacheKey)
	utils.Created(c, "Images uploaded successfully", gin.H{"images": saved})
}

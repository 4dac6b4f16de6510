package controllers

import (
	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateReviewRequest represents the review creation payload
type CreateReviewRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Title     string `json:"title"`
	Comment   string `json:"comment" binding:"required"`
}

// CreateReview creates a product review. One review per user and product;
// the review is marked verified when the user has a delivered order
// containing the product.
func CreateReview(c *gin.Context) {
	utils.LogInfo("CreateReview called")

	user := c.MustGet("user").(models.User)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid review request from user ID %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.ValidateRating(req.Rating); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var existing models.Review
	if err := config.DB.Where("user_id = ? AND product_id = ?", user.ID, req.ProductID).
		First(&existing).Error; err == nil {
		utils.Conflict(c, "You have already reviewed this product", nil)
		return
	}

	review := models.Review{
		ProductID: req.ProductID,
		UserID:    user.ID,
		Rating:    req.Rating,
		Title:     utils.SanitizeString(req.Title),
		Comment:   utils.SanitizeString(req.Comment),
	}

	// verified purchase: a delivered order of this user containing the product
	var deliveredItem struct {
		OrderID uint
	}
	err := config.DB.Table("order_items").
		Select("order_items.order_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.status = ? AND order_items.product_id = ?",
			user.ID, models.OrderStatusDelivered, req.ProductID).
		Limit(1).Scan(&deliveredItem).Error
	if err == nil && deliveredItem.OrderID != 0 {
		review.IsVerified = true
		review.OrderID = &deliveredItem.OrderID
	}

	if err := config.DB.Create(&review).Error; err != nil {
		utils.LogError("Failed to create review for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create review", nil)
		return
	}

	utils.LogInfo("User %d reviewed product %d (verified=%t)", user.ID, req.ProductID, review.IsVerified)
	utils.Created(c, "Review submitted and pending approval", gin.H{
		"review": gin.H{
			"id":          review.ID,
			"product_id":  review.ProductID,
			"rating":      review.Rating,
			"title":       review.Title,
			"comment":     review.Comment,
			"is_verified": review.IsVerified,
			"is_approved": review.IsApproved,
		},
	})
}

// UpdateReviewRequest represents the review edit payload
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Title   *string `json:"title"`
	Comment *string `json:"comment"`
}

// UpdateReview lets the author edit their review. Edits reset approval.
func UpdateReview(c *gin.Context) {
	utils.LogInfo("UpdateReview called")

	user := c.MustGet("user").(models.User)

	var review models.Review
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&review).Error; err != nil {
		utils.NotFound(c, "Review not found")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	updates := map[string]interface{}{"is_approved": false}
	if req.Rating != nil {
		if err := utils.ValidateRating(*req.Rating); err != nil {
			utils.BadRequest(c, err.Error(), nil)
			return
		}
		updates["rating"] = *req.Rating
	}
	if req.Title != nil {
		updates["title"] = utils.SanitizeString(*req.Title)
	}
	if req.Comment != nil {
		updates["comment"] = utils.SanitizeString(*req.Comment)
	}

	if err := config.DB.Model(&review).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update review %d: %v", review.ID, err)
		utils.InternalServerError(c, "Failed to update review", nil)
		return
	}

	utils.Success(c, "Review updated and pending approval", gin.H{"review_id": review.ID})
}

// GetProductReviews lists approved reviews for a product
func GetProductReviews(c *gin.Context) {
	utils.LogInfo("GetProductReviews called")

	pagination := utils.NewPagination(c)

	var reviews []models.Review
	query := config.DB.Model(&models.Review{}).
		Where("product_id = ? AND is_approved = ?", c.Param("id"), true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count reviews", nil)
		return
	}

	if err := query.Preload("User").Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&reviews).Error; err != nil {
		utils.LogError("Failed to fetch reviews: %v", err)
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}

	items := make([]gin.H, 0, len(reviews))
	var ratingSum int
	for _, review := range reviews {
		ratingSum += review.Rating
		items = append(items, gin.H{
			"id":            review.ID,
			"rating":        review.Rating,
			"title":         review.Title,
			"comment":       review.Comment,
			"is_verified":   review.IsVerified,
			"helpful_count": review.HelpfulCount,
			"username":      review.User.Username,
			"created_at":    review.CreatedAt,
		})
	}

	utils.SuccessWithPagination(c, "Reviews retrieved successfully", items, total, pagination.Page, pagination.Limit)
}

// MarkReviewHelpful increments the helpful counter on an approved review
func MarkReviewHelpful(c *gin.Context) {
	utils.LogInfo("MarkReviewHelpful called")

	result := config.DB.Model(&models.Review{}).
		Where("id = ? AND is_approved = ?", c.Param("id"), true).
		Update("helpful_count", gorm.Expr("helpful_count + 1"))
	if result.Error != nil {
		utils.LogError("Failed to mark review helpful: %v", result.Error)
		utils.InternalServerError(c, "Failed to update review", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Review not found")
		return
	}

	utils.Success(c, "Marked as helpful", nil)
}

package controllers

import (
	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
)

// ListPendingReviews lists reviews awaiting moderation
func ListPendingReviews(c *gin.Context) {
	utils.LogInfo("ListPendingReviews called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Review{}).Where("is_approved = ?", false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count reviews", nil)
		return
	}

	var reviews []models.Review
	if err := query.Preload("User").Order("created_at ASC").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&reviews).Error; err != nil {
		utils.LogError("Failed to fetch pending reviews: %v", err)
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}

	items := make([]gin.H, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, gin.H{
			"id":          review.ID,
			"product_id":  review.ProductID,
			"user_id":     review.UserID,
			"username":    review.User.Username,
			"rating":      review.Rating,
			"title":       review.Title,
			"comment":     review.Comment,
			"is_verified": review.IsVerified,
			"created_at":  review.CreatedAt,
		})
	}

	utils.SuccessWithPagination(c, "Pending reviews retrieved successfully", items, total, pagination.Page, pagination.Limit)
}

// ApproveReview publishes a review
func ApproveReview(c *gin.Context) {
	utils.LogInfo("ApproveReview called")

	if err := moderateReview(c.Param("id"), true); err != nil {
		respondModerationError(c, err)
		return
	}

	utils.Success(c, "Review approved successfully", nil)
}

// RejectReview removes a review permanently
func RejectReview(c *gin.Context) {
	utils.LogInfo("RejectReview called")

	if err := moderateReview(c.Param("id"), false); err != nil {
		respondModerationError(c, err)
		return
	}

	utils.Success(c, "Review rejected and removed", nil)
}

// moderateReview approves or hard-deletes a single review
func moderateReview(id interface{}, approve bool) error {
	var review models.Review
	if err := config.DB.First(&review, "id = ?", id).Error; err != nil {
		return utils.NewNotFoundError("review not found", err)
	}

	if approve {
		if err := config.DB.Model(&review).Update("is_approved", true).Error; err != nil {
			return utils.NewTransientError("failed to approve review", err)
		}
		return nil
	}

	// rejection is permanent
	if err := config.DB.Unscoped().Delete(&review).Error; err != nil {
		return utils.NewTransientError("failed to delete review", err)
	}
	return nil
}

func respondModerationError(c *gin.Context, err error) {
	if utils.IsNotFoundError(err) {
		utils.NotFound(c, "Review not found")
		return
	}
	utils.LogError("Review moderation failed: %v", err)
	utils.InternalServerError(c, "Failed to moderate review", nil)
}

// BulkModerateRequest represents the bulk moderation payload
type BulkModerateRequest struct {
	ReviewIDs []uint `json:"review_ids" binding:"required,min=1"`
	Action    string `json:"action" binding:"required"`
}

// BulkModerateReviews approves or rejects a batch of reviews, continuing
// past per-item failures and reporting each outcome.
func BulkModerateReviews(c *gin.Context) {
	utils.LogInfo("BulkModerateReviews called")

	var req BulkModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Action != "approve" && req.Action != "reject" {
		utils.BadRequest(c, "Action must be approve or reject", nil)
		return
	}

	var result utils.BulkResult
	for _, id := range req.ReviewIDs {
		err := utils.RetryTransient(func() error {
			return moderateReview(id, req.Action == "approve")
		})
		if err != nil {
			result.Fail(id, err.Error())
			continue
		}
		result.Succeed(id)
	}

	utils.LogInfo("Bulk review moderation: %d updated, %d failed", len(result.Updated), len(result.Failed))
	utils.Success(c, "Bulk moderation completed", gin.H{
		"updated": result.Updated,
		"failed":  result.Failed,
	})
}

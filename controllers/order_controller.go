package controllers

import (
	"time"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListMyOrders returns the authenticated user's orders
func ListMyOrders(c *gin.Context) {
	utils.LogInfo("ListMyOrders called")

	user := c.MustGet("user").(models.User)
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{}).Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count orders", nil)
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := query.Preload("OrderItems").Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	utils.SuccessWithPagination(c, "Orders retrieved successfully", orders, total, pagination.Page, pagination.Limit)
}

// GetOrderDetails returns one of the user's orders with its snapshot lines
// and payment attempts
func GetOrderDetails(c *gin.Context) {
	utils.LogInfo("GetOrderDetails called")

	user := c.MustGet("user").(models.User)

	var order models.Order
	if err := config.DB.Preload("OrderItems").
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("order_id = ?", order.ID).Order("created_at ASC").Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments for order %d: %v", order.ID, err)
	}

	utils.Success(c, "Order retrieved successfully", gin.H{
		"order":    order,
		"payments": payments,
	})
}

// CancelOrder lets a customer cancel an order that has not started
// processing; cancelled lines are restocked
func CancelOrder(c *gin.Context) {
	utils.LogInfo("CancelOrder called")

	user := c.MustGet("user").(models.User)

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	var order models.Order
	if err := tx.Preload("OrderItems").
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&order).Error; err != nil {
		tx.Rollback()
		utils.NotFound(c, "Order not found")
		return
	}

	if order.Status != models.OrderStatusPending && order.Status != models.OrderStatusConfirmed {
		tx.Rollback()
		utils.LogError("User %d attempted to cancel order %d in status %s", user.ID, order.ID, order.Status)
		utils.BadRequest(c, "Order can no longer be cancelled", gin.H{"status": order.Status})
		return
	}

	for _, item := range order.OrderItems {
		if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
			Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
			tx.Rollback()
			utils.InternalServerError(c, "Failed to restock items", nil)
			return
		}
	}

	updates := map[string]interface{}{
		"status":        models.OrderStatusCancelled,
		"cancel_reason": utils.SanitizeString(req.Reason),
		"updated_at":    time.Now(),
	}
	if err := tx.Model(&order).Updates(updates).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to cancel order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to cancel order", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.InvalidateCache(ordersCacheKey)
	utils.LogInfo("Cancelled order %d for user ID %d", order.ID, user.ID)
	utils.Success(c, "Order cancelled successfully", gin.H{"order_id": order.ID, "status": models.OrderStatusCancelled})
}

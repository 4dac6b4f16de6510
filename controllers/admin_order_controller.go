package controllers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminListOrders returns orders for the back office with filters,
// cached for 30 seconds
func AdminListOrders(c *gin.Context) {
	utils.LogInfo("AdminListOrders called")

	pagination := utils.NewPagination(c)
	status := c.Query("status")
	paymentStatus := c.Query("payment_status")
	search := c.Query("search")

	// only the unfiltered first page is cached so a single key invalidates it
	cacheable := status == "" && paymentStatus == "" && search == "" && pagination.Page == 1

	var cached struct {
		Orders []models.Order `json:"orders"`
		Total  int64          `json:"total"`
	}
	if cacheable && utils.CacheGetJSON(ordersCacheKey, &cached) {
		utils.SuccessWithPagination(c, "Orders retrieved successfully", cached.Orders, cached.Total, pagination.Page, pagination.Limit)
		return
	}

	query := config.DB.Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}
	if search != "" {
		query = query.Where("order_number ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count orders", nil)
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := query.Preload("OrderItems").Preload("User").Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	if cacheable {
		cached.Orders = orders
		cached.Total = total
		utils.CacheSetJSON(ordersCacheKey, cached, utils.CacheTTLOrders)
	}

	utils.SuccessWithPagination(c, "Orders retrieved successfully", orders, total, pagination.Page, pagination.Limit)
}

// updateOrderStatusTx applies one status change with its side effects.
// Shared by the single and bulk endpoints.
func updateOrderStatusTx(tx *gorm.DB, orderID uint, newStatus string) error {
	var order models.Order
	if err := tx.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		return utils.NewNotFoundError(fmt.Sprintf("order %d not found", orderID), err)
	}

	newStatus = strings.ToLower(newStatus)
	if !models.CanTransitionOrderStatus(order.Status, newStatus) {
		return utils.NewValidationError(
			fmt.Sprintf("cannot move order %d from %s to %s", orderID, order.Status, newStatus), nil)
	}

	// cancelling before shipment returns stock
	if newStatus == models.OrderStatusCancelled {
		for _, item := range order.OrderItems {
			if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return utils.NewTransientError("failed to restock items", err)
			}
		}
	}

	updates := map[string]interface{}{"status": newStatus, "updated_at": time.Now()}
	if newStatus == models.OrderStatusRefunded {
		updates["payment_status"] = models.OrderPaymentRefunded
	}
	if err := tx.Model(&order).Updates(updates).Error; err != nil {
		return utils.NewTransientError("failed to update order status", err)
	}
	return nil
}

// AdminUpdateOrderStatus updates the status of one order
func AdminUpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("AdminUpdateOrderStatus called")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Status is required", nil)
		return
	}

	if !models.IsValidOrderStatus(req.Status) {
		utils.BadRequest(c, "Invalid status", gin.H{"valid_statuses": models.ValidOrderStatuses})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to begin transaction", nil)
		return
	}

	if err := updateOrderStatusTx(tx, uint(orderID), req.Status); err != nil {
		tx.Rollback()
		if appErr := utils.GetAppError(err); appErr != nil {
			utils.LogError("Status update rejected for order %d: %v", orderID, err)
			utils.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		utils.InternalServerError(c, "Failed to update order status", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.InvalidateCache(ordersCacheKey)
	utils.LogInfo("Updated order %d to status %s", orderID, req.Status)
	utils.Success(c, "Order status updated successfully", gin.H{"order_id": orderID, "status": strings.ToLower(req.Status)})
}

// BulkUpdateOrderStatusRequest represents the bulk status payload
type BulkUpdateOrderStatusRequest struct {
	OrderIDs []uint `json:"order_ids" binding:"required,min=1"`
	Status   string `json:"status" binding:"required"`
}

// AdminBulkUpdateOrderStatus updates many orders independently. Each order
// gets its own transaction; per-item failures are collected, never aborting
// the batch.
func AdminBulkUpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("AdminBulkUpdateOrderStatus called")

	var req BulkUpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !models.IsValidOrderStatus(req.Status) {
		utils.BadRequest(c, "Invalid status", gin.H{"valid_statuses": models.ValidOrderStatuses})
		return
	}

	var result utils.BulkResult
	for _, orderID := range req.OrderIDs {
		err := utils.RetryTransient(func() error {
			tx := config.DB.Begin()
			if tx.Error != nil {
				return utils.NewTransientError("failed to begin transaction", tx.Error)
			}
			if err := updateOrderStatusTx(tx, orderID, req.Status); err != nil {
				tx.Rollback()
				return err
			}
			return tx.Commit().Error
		})
		if err != nil {
			utils.LogError("Bulk status update failed for order %d: %v", orderID, err)
			result.Fail(orderID, err.Error())
			continue
		}
		result.Succeed(orderID)
	}

	utils.InvalidateCache(ordersCacheKey)
	utils.LogInfo("Bulk status update: %d updated, %d failed", len(result.Updated), len(result.Failed))
	utils.Success(c, "Bulk status update processed", result)
}

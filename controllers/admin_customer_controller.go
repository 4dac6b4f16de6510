package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
)

// AdminListCustomers lists customers with search and pagination
func AdminListCustomers(c *gin.Context) {
	utils.LogInfo("AdminListCustomers called")

	pagination := utils.NewPagination(c)
	search := utils.SanitizeString(c.Query("search"))

	query := config.DB.Model(&models.User{}).Where("is_admin = ?", false)
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			pattern, pattern, "%"+search+"%")
	}
	if blocked := c.Query("blocked"); blocked != "" {
		query = query.Where("is_blocked = ?", blocked == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count customers", nil)
		return
	}

	var users []models.User
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch customers: %v", err)
		utils.InternalServerError(c, "Failed to fetch customers", nil)
		return
	}

	items := make([]gin.H, 0, len(users))
	for _, user := range users {
		var orderCount int64
		config.DB.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&orderCount)
		items = append(items, gin.H{
			"id":          user.ID,
			"username":    user.Username,
			"email":       user.Email,
			"phone":       user.Phone,
			"is_blocked":  user.IsBlocked,
			"order_count": orderCount,
			"created_at":  user.CreatedAt,
		})
	}

	utils.SuccessWithPagination(c, "Customers retrieved successfully", items, total, pagination.Page, pagination.Limit)
}

// BlockCustomer toggles a customer's blocked flag. Blocked customers keep
// their data but fail authentication on the next request.
func BlockCustomer(c *gin.Context) {
	utils.LogInfo("BlockCustomer called")

	var user models.User
	if err := config.DB.Where("id = ? AND is_admin = ?", c.Param("id"), false).First(&user).Error; err != nil {
		utils.NotFound(c, "Customer not found")
		return
	}

	if err := config.DB.Model(&user).Update("is_blocked", !user.IsBlocked).Error; err != nil {
		utils.LogError("Failed to update customer %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update customer", nil)
		return
	}

	state := "blocked"
	if user.IsBlocked {
		state = "unblocked"
	}
	utils.LogInfo("Customer %d %s", user.ID, state)
	utils.Success(c, "Customer "+state+" successfully", gin.H{"customer_id": user.ID})
}

// ExportCustomersCSV streams all customers as a BOM-prefixed CSV download
func ExportCustomersCSV(c *gin.Context) {
	utils.LogInfo("ExportCustomersCSV called")

	var users []models.User
	if err := config.DB.Where("is_admin = ?", false).Order("id ASC").Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch customers for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch customers", nil)
		return
	}

	headers := []string{"ID", "Username", "Email", "Phone", "Blocked", "Registered At"}
	rows := make([][]string, 0, len(users))
	for _, user := range users {
		rows = append(rows, []string{
			fmt.Sprintf("%d", user.ID),
			user.Username,
			user.Email,
			user.Phone,
			fmt.Sprintf("%t", user.IsBlocked),
			user.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	data, err := utils.BuildCSV(headers, rows)
	if err != nil {
		utils.LogError("Failed to build customers CSV: %v", err)
		utils.InternalServerError(c, "Failed to build export", nil)
		return
	}

	utils.SendCSV(c, utils.ExportFilename("customers", time.Now()), data)
}

package controllers

import (
	"fmt"
	"time"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// paymentsCSVHeaders is the fixed column order of the payments export
var paymentsCSVHeaders = []string{
	"Payment ID", "Order Number", "Method", "Amount", "Currency",
	"Status", "Transaction ID", "Gateway Ref", "Created At",
}

// ExportPaymentsCSV streams payments as a BOM-prefixed CSV download.
// Optional from/to date filters (YYYY-MM-DD) bound the range.
func ExportPaymentsCSV(c *gin.Context) {
	utils.LogInfo("ExportPaymentsCSV called")

	query := config.DB.Model(&models.Payment{})
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.BadRequest(c, "Invalid from date. Use YYYY-MM-DD", nil)
			return
		}
		query = query.Where("created_at >= ?", from)
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.BadRequest(c, "Invalid to date. Use YYYY-MM-DD", nil)
			return
		}
		query = query.Where("created_at < ?", to.Add(24*time.Hour))
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var payments []models.Payment
	if err := query.Order("created_at ASC").Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", nil)
		return
	}

	orderNumbers := map[uint]string{}
	if len(payments) > 0 {
		ids := make([]uint, 0, len(payments))
		for _, p := range payments {
			ids = append(ids, p.OrderID)
		}
		var orders []models.Order
		config.DB.Select("id, order_number").Where("id IN ?", ids).Find(&orders)
		for _, o := range orders {
			orderNumbers[o.ID] = o.OrderNumber
		}
	}

	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			orderNumbers[p.OrderID],
			p.PaymentMethod,
			fmt.Sprintf("%.2f", p.Amount),
			p.Currency,
			p.Status,
			p.TransactionID,
			p.GatewayRef,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	data, err := utils.BuildCSV(paymentsCSVHeaders, rows)
	if err != nil {
		utils.LogError("Failed to build payments CSV: %v", err)
		utils.InternalServerError(c, "Failed to build export", nil)
		return
	}

	utils.LogInfo("Exported %d payments to CSV", len(payments))
	utils.SendCSV(c, utils.ExportFilename("payments", time.Now()), data)
}

// DownloadSalesReportExcel builds an xlsx sales report over a date range.
// Defaults to the last 30 days.
func DownloadSalesReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadSalesReportExcel called")

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.BadRequest(c, "Invalid from date. Use YYYY-MM-DD", nil)
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.BadRequest(c, "Invalid to date. Use YYYY-MM-DD", nil)
			return
		}
		to = parsed.Add(24 * time.Hour)
	}

	var orders []models.Order
	if err := config.DB.Where("created_at >= ? AND created_at < ? AND status != ?",
		from, to, models.OrderStatusCancelled).Order("created_at ASC").Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for report: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales")
	if err != nil {
		utils.InternalServerError(c, "Failed to build report", nil)
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"Order Number", "Date", "Status", "Payment Status",
		"Subtotal", "Discount", "Shipping", "Total"} {
		cell := header.AddCell()
		cell.Value = title
	}

	var totalSales, totalDiscount float64
	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().Value = order.OrderNumber
		row.AddCell().Value = order.CreatedAt.Format("2006-01-02 15:04")
		row.AddCell().Value = order.Status
		row.AddCell().Value = order.PaymentStatus
		row.AddCell().SetFloat(order.Subtotal)
		row.AddCell().SetFloat(order.DiscountAmount)
		row.AddCell().SetFloat(order.ShippingAmount)
		row.AddCell().SetFloat(order.TotalAmount)
		totalSales += order.TotalAmount
		totalDiscount += order.DiscountAmount
	}

	summary := sheet.AddRow()
	summary.AddCell().Value = "TOTAL"
	summary.AddCell().Value = fmt.Sprintf("%d orders", len(orders))
	summary.AddCell()
	summary.AddCell()
	summary.AddCell()
	summary.AddCell().SetFloat(totalDiscount)
	summary.AddCell()
	summary.AddCell().SetFloat(totalSales)

	filename := fmt.Sprintf("sales-report-%s.xlsx", time.Now().Format("2006-01-02-1504"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write sales report: %v", err)
	}
}

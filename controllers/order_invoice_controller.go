package controllers

import (
	"bytes"
	"fmt"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadInvoice renders a PDF invoice from the order snapshot
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")

	user := c.MustGet("user").(models.User)

	var order models.Order
	if err := config.DB.Preload("OrderItems").
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "ShopViet - Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, "Order number: "+order.OrderNumber)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+order.CreatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Ship to: "+order.ShippingAddress)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 8, "Product", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "SKU", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Unit price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range order.OrderItems {
		pdf.CellFormat(70, 8, item.ProductName, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 8, item.ProductSKU, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.0f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.0f", item.TotalPrice), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	rows := []struct {
		label string
		value float64
	}{
		{"Subtotal", order.Subtotal},
		{"Discount", -order.DiscountAmount},
		{"Shipping", order.ShippingAmount},
		{"Total (VND)", order.TotalAmount},
	}
	for _, row := range rows {
		pdf.CellFormat(150, 7, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.0f", row.value), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render invoice for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate invoice", nil)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=invoice-"+order.OrderNumber+".pdf")
	c.Data(200, "application/pdf", buf.Bytes())
}

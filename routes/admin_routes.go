package routes

import (
	"github.com/TrungLe-99/ShopViet/controllers"
	"github.com/TrungLe-99/ShopViet/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all back office routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		// Catalog management
		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
		admin.POST("/products/:id/images", controllers.UploadProductImages)

		admin.POST("/categories", controllers.CreateCategory)
		admin.PUT("/categories/:id", controllers.UpdateCategory)
		admin.PATCH("/categories/:id/block", controllers.BlockCategory)
		admin.DELETE("/categories/:id", controllers.DeleteCategory)

		// Coupons
		admin.POST("/coupons", controllers.CreateCoupon)
		admin.PUT("/coupons/:id", controllers.UpdateCoupon)
		admin.DELETE("/coupons/:id", controllers.DeleteCoupon)
		admin.GET("/coupons", controllers.ListCoupons)

		// Shipping zones and rates
		admin.GET("/shipping/zones", controllers.ListShippingZones)
		admin.POST("/shipping/zones", controllers.CreateShippingZone)
		admin.PUT("/shipping/zones/:id", controllers.UpdateShippingZone)
		admin.DELETE("/shipping/zones/:id", controllers.DeleteShippingZone)
		admin.POST("/shipping/zones/:id/rates", controllers.CreateShippingRate)
		admin.DELETE("/shipping/zones/:id/rates/:rateId", controllers.DeleteShippingRate)

		// Orders
		admin.GET("/orders", controllers.AdminListOrders)
		admin.PATCH("/orders/:id/status", controllers.AdminUpdateOrderStatus)
		admin.PATCH("/orders/bulk-status", controllers.AdminBulkUpdateOrderStatus)

		// Payments
		admin.GET("/payments/reconcile", controllers.ReconcilePayments)
		admin.GET("/payments/export", controllers.ExportPaymentsCSV)
		admin.GET("/reports/sales", controllers.DownloadSalesReportExcel)

		// Reviews
		admin.GET("/reviews/pending", controllers.ListPendingReviews)
		admin.PATCH("/reviews/:id/approve", controllers.ApproveReview)
		admin.DELETE("/reviews/:id", controllers.RejectReview)
		admin.PATCH("/reviews/bulk", controllers.BulkModerateReviews)

		// Customers
		admin.GET("/customers", controllers.AdminListCustomers)
		admin.PATCH("/customers/:id/block", controllers.BlockCustomer)
		admin.GET("/customers/export", controllers.ExportCustomersCSV)
	}
}

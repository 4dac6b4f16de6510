package routes

import (
	"github.com/TrungLe-99/ShopViet/controllers"
	"github.com/TrungLe-99/ShopViet/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all storefront routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)

	// Catalog
	router.GET("/products", controllers.ListProducts)
	router.GET("/products/:id", controllers.GetProductDetails)
	router.GET("/products/:id/reviews", controllers.GetProductReviews)
	router.GET("/categories", controllers.ListCategories)

	// Gateway callbacks arrive unauthenticated
	router.GET("/payments/vnpay/return", controllers.VNPayReturn)
	router.POST("/payments/momo/ipn", controllers.MoMoIPN)

	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		// Profile
		protected.GET("/profile", controllers.GetProfile)
		protected.PUT("/profile", controllers.UpdateProfile)
		protected.PUT("/profile/password", controllers.ChangePassword)

		// Addresses
		protected.GET("/addresses", controllers.ListAddresses)
		protected.POST("/addresses", controllers.CreateAddress)
		protected.PUT("/addresses/:id", controllers.UpdateAddress)
		protected.DELETE("/addresses/:id", controllers.DeleteAddress)

		// Cart operations
		protected.POST("/cart/add", controllers.AddToCart)
		protected.GET("/cart", controllers.GetCart)
		protected.PUT("/cart/update", controllers.UpdateCartItem)
		protected.DELETE("/cart/remove", controllers.RemoveFromCart)
		protected.DELETE("/cart/clear", controllers.ClearCart)

		// Coupons
		protected.POST("/coupons/apply", controllers.ApplyCoupon)
		protected.DELETE("/coupons/remove", controllers.RemoveCoupon)

		// Wishlist operations
		protected.POST("/wishlist/add", controllers.AddToWishlist)
		protected.GET("/wishlist", controllers.GetWishlist)
		protected.DELETE("/wishlist/remove/:productId", controllers.RemoveFromWishlist)

		// Checkout
		protected.GET("/checkout", controllers.GetCheckoutSummary)
		protected.POST("/checkout", controllers.PlaceOrder)
		protected.GET("/shipping/quote", controllers.GetShippingQuote)

		// Orders
		protected.GET("/orders", controllers.ListMyOrders)
		protected.GET("/orders/:id", controllers.GetOrderDetails)
		protected.POST("/orders/:id/cancel", controllers.CancelOrder)
		protected.GET("/orders/:id/invoice", controllers.DownloadInvoice)
		protected.GET("/orders/:id/payments", controllers.ListOrderPayments)

		// Payments
		protected.POST("/payments", controllers.CreatePayment)

		// Reviews
		protected.POST("/reviews", controllers.CreateReview)
		protected.PUT("/reviews/:id", controllers.UpdateReview)
		protected.POST("/reviews/:id/helpful", controllers.MarkReviewHelpful)
	}
}

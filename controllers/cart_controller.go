package controllers

import (
	"fmt"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
)

// AddToCartRequest represents the add-to-cart payload
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// AddToCart adds a product to the user's cart, merging quantities when the
// product is already present
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")

	user := c.MustGet("user").(models.User)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		utils.LogError("Product %d not found for user ID %d", req.ProductID, user.ID)
		utils.NotFound(c, "Product not found")
		return
	}

	if !product.IsActive {
		utils.BadRequest(c, "Product is not available", nil)
		return
	}

	var item models.CartItem
	if err := config.DB.Where("user_id = ? AND product_id = ?", user.ID, req.ProductID).First(&item).Error; err == nil {
		item.Quantity += req.Quantity
		if item.Quantity > product.Stock {
			utils.BadRequest(c, fmt.Sprintf("Only %d units available", product.Stock), nil)
			return
		}
		if err := config.DB.Save(&item).Error; err != nil {
			utils.LogError("Failed to update cart item for user ID %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to update cart", nil)
			return
		}
	} else {
		if req.Quantity > product.Stock {
			utils.BadRequest(c, fmt.Sprintf("Only %d units available", product.Stock), nil)
			return
		}
		item = models.CartItem{UserID: user.ID, ProductID: req.ProductID, Quantity: req.Quantity}
		if err := config.DB.Create(&item).Error; err != nil {
			utils.LogError("Failed to add cart item for user ID %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to add to cart", nil)
			return
		}
	}

	utils.LogInfo("Cart updated for user ID %d, product %d", user.ID, req.ProductID)
	utils.Success(c, "Added to cart", gin.H{"product_id": req.ProductID, "quantity": item.Quantity})
}

// GetCart returns the cart contents with computed totals. Inactive or
// out-of-stock products are listed but excluded from the totals.
func GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")

	user := c.MustGet("user").(models.User)

	var cartItems []models.CartItem
	if err := config.DB.Preload("Product").Where("user_id = ?", user.ID).Find(&cartItems).Error; err != nil {
		utils.LogError("Failed to fetch cart for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}

	details, err := utils.GetCartDetails(user.ID)
	if err != nil {
		utils.LogError("Failed to compute cart totals for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to compute cart totals", nil)
		return
	}

	var items []gin.H
	for _, item := range cartItems {
		items = append(items, gin.H{
			"product_id": item.ProductID,
			"name":       item.Product.Name,
			"sku":        item.Product.SKU,
			"unit_price": item.Product.Price,
			"quantity":   item.Quantity,
			"in_stock":   item.Product.IsActive && item.Product.Stock >= item.Quantity,
			"image_url":  item.Product.ImageURL,
		})
	}

	response := gin.H{
		"items":           items,
		"subtotal":        details.Subtotal,
		"discount_amount": details.DiscountAmount,
		"shipping_amount": details.ShippingAmount,
		"total":           details.Total,
	}
	if details.CouponCode != "" {
		response["coupon_code"] = details.CouponCode
		response["coupon_applicable"] = details.CouponApplicable
		if !details.CouponApplicable {
			response["coupon_warning"] = "Coupon is no longer applicable: " + details.CouponReason
		}
	}

	utils.Success(c, "Cart retrieved successfully", response)
}

// UpdateCartRequest represents a quantity change
type UpdateCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItem sets the quantity of a cart line
func UpdateCartItem(c *gin.Context) {
	utils.LogInfo("UpdateCartItem called")

	user := c.MustGet("user").(models.User)

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var item models.CartItem
	if err := config.DB.Preload("Product").Where("user_id = ? AND product_id = ?", user.ID, req.ProductID).First(&item).Error; err != nil {
		utils.NotFound(c, "Cart item not found")
		return
	}

	if req.Quantity > item.Product.Stock {
		utils.BadRequest(c, fmt.Sprintf("Only %d units available", item.Product.Stock), nil)
		return
	}

	item.Quantity = req.Quantity
	if err := config.DB.Save(&item).Error; err != nil {
		utils.LogError("Failed to update cart item for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}

	utils.Success(c, "Cart updated", gin.H{"product_id": req.ProductID, "quantity": item.Quantity})
}

// RemoveFromCart deletes one cart line
func RemoveFromCart(c *gin.Context) {
	utils.LogInfo("RemoveFromCart called")

	user := c.MustGet("user").(models.User)

	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	result := config.DB.Where("user_id = ? AND product_id = ?", user.ID, req.ProductID).Delete(&models.CartItem{})
	if result.Error != nil {
		utils.LogError("Failed to remove cart item for user ID %d: %v", user.ID, result.Error)
		utils.InternalServerError(c, "Failed to remove from cart", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Cart item not found")
		return
	}

	utils.Success(c, "Removed from cart", nil)
}

// ClearCart empties the user's cart
func ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")

	user := c.MustGet("user").(models.User)

	if err := config.DB.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
		utils.LogError("Failed to clear cart for user ID %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to clear cart", nil)
		return
	}

	utils.Success(c, "Cart cleared", nil)
}

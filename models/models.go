package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a customer account
type User struct {
	gorm.Model
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	ProfileImage string    `json:"profile_image"`
	IsBlocked    bool      `json:"is_blocked"`
	IsVerified   bool      `json:"is_verified" gorm:"default:false"`
	IsAdmin      bool      `json:"is_admin" gorm:"default:false"`
	LastLoginAt  time.Time `json:"last_login_at"`
	GoogleID     string    `gorm:"unique;default:null" json:"google_id"`

	Addresses []Address `json:"addresses" gorm:"foreignKey:UserID"`
}

// Category represents a product category
type Category struct {
	gorm.Model
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Products    []Product `json:"products,omitempty"`
	Blocked     bool      `json:"blocked" gorm:"default:false"`
}

// Product represents an item for sale
type Product struct {
	gorm.Model
	Name        string         `json:"name"`
	SKU         string         `json:"sku" gorm:"uniqueIndex"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Stock       int            `json:"stock"`
	Weight      float64        `json:"weight"` // kilograms, used for shipping
	CategoryID  uint           `json:"category_id"`
	Category    Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ImageURL    string         `json:"image_url"`
	Images      []ProductImage `json:"images" gorm:"foreignKey:ProductID"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	IsFeatured  bool           `json:"is_featured" gorm:"default:false"`
	Views       int            `json:"views" gorm:"default:0"`
	Reviews     []Review       `json:"reviews,omitempty"`
}

// ProductImage holds an additional gallery image for a product
type ProductImage struct {
	gorm.Model
	ProductID uint   `json:"product_id"`
	URL       string `json:"url"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
}

// Review represents a customer product review
type Review struct {
	gorm.Model
	ProductID    uint   `json:"product_id"`
	UserID       uint   `json:"user_id"`
	User         User   `json:"user"`
	OrderID      *uint  `json:"order_id,omitempty"`
	Rating       int    `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Title        string `json:"title"`
	Comment      string `json:"comment"`
	IsVerified   bool   `json:"is_verified" gorm:"default:false"`
	IsApproved   bool   `json:"is_approved" gorm:"default:false"`
	HelpfulCount int    `json:"helpful_count" gorm:"default:0"`
}

// CartItem holds one product selection in a user's cart.
// Unique per (user, product); quantity is the only mutable field.
type CartItem struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"uniqueIndex:idx_cart_user_product"`
	User      User    `gorm:"foreignKey:UserID" json:"user"`
	ProductID uint    `json:"product_id" gorm:"uniqueIndex:idx_cart_user_product"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `json:"quantity"`
}

// Wishlist holds a saved product for a user
type Wishlist struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"uniqueIndex:idx_wishlist_user_product"`
	ProductID uint    `json:"product_id" gorm:"uniqueIndex:idx_wishlist_user_product"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
}

package models

import (
	"strings"
	"time"
)

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// Payment status constants tracked on the order itself
const (
	OrderPaymentPending  = "pending"
	OrderPaymentAwaiting = "awaiting_confirmation"
	OrderPaymentPaid     = "completed"
	OrderPaymentFailed   = "failed"
	OrderPaymentRefunded = "refunded"
)

// orderStatusRank orders the forward statuses for transition checks
var orderStatusRank = map[string]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

// ValidOrderStatuses lists every status an admin may set
var ValidOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusRefunded,
}

// IsValidOrderStatus reports whether s is a known order status
func IsValidOrderStatus(s string) bool {
	for _, v := range ValidOrderStatuses {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// CanTransitionOrderStatus reports whether an admin move from one status to
// another is allowed. Forward moves and refunds stay permissive; the only
// hard block is cancelling an order that already left the warehouse.
func CanTransitionOrderStatus(from, to string) bool {
	from = strings.ToLower(from)
	to = strings.ToLower(to)
	if !IsValidOrderStatus(to) {
		return false
	}
	if from == to {
		return false
	}
	if from == OrderStatusCancelled || from == OrderStatusRefunded {
		return false
	}
	if to == OrderStatusCancelled {
		return from != OrderStatusShipped && from != OrderStatusDelivered
	}
	return true
}

// Order is the immutable snapshot created at checkout. Amount and line item
// fields are copied by value and never re-read from live product data.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderNumber     string      `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID          uint        `json:"user_id"`
	User            User        `json:"user" gorm:"foreignKey:UserID"`
	Subtotal        float64     `json:"subtotal"`
	DiscountAmount  float64     `json:"discount_amount"`
	ShippingAmount  float64     `json:"shipping_amount"`
	TaxAmount       float64     `json:"tax_amount"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	PaymentMethod   string      `json:"payment_method"`
	CouponCode      string      `json:"coupon_code,omitempty"`
	ShippingAddress string      `json:"shipping_address"`
	BillingAddress  string      `json:"billing_address"`
	ShippingZoneID  *uint       `json:"shipping_zone_id,omitempty"`
	CancelReason    string      `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	OrderItems      []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem is the denormalized per-line snapshot. Product name, SKU and
// unit price are frozen at purchase time.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `json:"order_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	ProductSKU  string  `json:"product_sku"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

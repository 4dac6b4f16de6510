package models

import (
	"time"
)

// Payment methods
const (
	PaymentMethodCOD          = "cod"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodVNPay        = "vnpay"
	PaymentMethodMoMo         = "momo"
)

// Payment status constants. A gateway payment moves
// pending -> awaiting_confirmation -> completed|failed.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusAwaiting = "awaiting_confirmation"
	PaymentStatusComplete = "completed"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// Payment is one payment attempt against an order. An order may carry
// several attempts; the latest non-failed one is authoritative.
type Payment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OrderID       uint      `json:"order_id"`
	PaymentMethod string    `json:"payment_method"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency" gorm:"default:'VND'"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	GatewayRef    string    `json:"gateway_ref,omitempty"` // gateway-side order reference
	RedirectURL   string    `json:"redirect_url,omitempty" gorm:"-"`
	FailureReason string    `json:"failure_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsSettled reports whether the payment reached a terminal state
func (p *Payment) IsSettled() bool {
	return p.Status == PaymentStatusComplete || p.Status == PaymentStatusFailed || p.Status == PaymentStatusRefunded
}

// IsValidPaymentMethod reports whether m is a supported method
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodBankTransfer, PaymentMethodVNPay, PaymentMethodMoMo:
		return true
	}
	return false
}

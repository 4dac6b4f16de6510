package utils

import (
	"fmt"
	"math"
	"sort"

	"github.com/TrungLe-99/ShopViet/models"
)

// Reconciliation issue categories
const (
	ReconAmountMismatch   = "amount_mismatch"
	ReconStatusMismatch   = "status_mismatch"
	ReconMissingPayment   = "missing_payment"
	ReconDuplicatePayment = "duplicate_payment"
	ReconOrphanPayment    = "orphan_payment"
)

// Issue severities
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// ReconIssue is one mismatch found between payments and their orders
type ReconIssue struct {
	Category  string  `json:"category"`
	Severity  string  `json:"severity"`
	OrderID   uint    `json:"order_id,omitempty"`
	PaymentID uint    `json:"payment_id,omitempty"`
	Detail    string  `json:"detail"`
	Expected  float64 `json:"expected,omitempty"`
	Actual    float64 `json:"actual,omitempty"`
	Fixable   bool    `json:"fixable"`
}

// ReconcilePayments cross-checks stored payments against their orders and
// flags every mismatch by category and severity. The scan is pure: callers
// load the day's payments and orders, fixes happen elsewhere. Payments may
// arrive in any order; attempts are compared by creation time and the latest
// non-failed one stays authoritative.
func ReconcilePayments(payments []models.Payment, orders []models.Order) []ReconIssue {
	var issues []ReconIssue

	if !sort.SliceIsSorted(payments, func(i, j int) bool {
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	}) {
		sorted := make([]models.Payment, len(payments))
		copy(sorted, payments)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
		payments = sorted
	}

	orderByID := make(map[uint]*models.Order, len(orders))
	for i := range orders {
		orderByID[orders[i].ID] = &orders[i]
	}

	// group non-failed attempts per order to spot duplicates
	activeByOrder := make(map[uint][]*models.Payment)
	for i := range payments {
		p := &payments[i]

		order, ok := orderByID[p.OrderID]
		if !ok {
			issues = append(issues, ReconIssue{
				Category:  ReconOrphanPayment,
				Severity:  SeverityHigh,
				PaymentID: p.ID,
				Detail:    fmt.Sprintf("payment %d references missing order %d", p.ID, p.OrderID),
			})
			continue
		}

		if p.Status != models.PaymentStatusFailed {
			activeByOrder[p.OrderID] = append(activeByOrder[p.OrderID], p)
		}

		if math.Abs(p.Amount-order.TotalAmount) > 0.01 {
			issues = append(issues, ReconIssue{
				Category:  ReconAmountMismatch,
				Severity:  SeverityHigh,
				OrderID:   order.ID,
				PaymentID: p.ID,
				Detail:    fmt.Sprintf("payment %d amount differs from order total", p.ID),
				Expected:  order.TotalAmount,
				Actual:    p.Amount,
			})
		}

		if p.Status == models.PaymentStatusComplete && order.PaymentStatus != models.OrderPaymentPaid {
			issues = append(issues, ReconIssue{
				Category:  ReconStatusMismatch,
				Severity:  SeverityMedium,
				OrderID:   order.ID,
				PaymentID: p.ID,
				Detail:    fmt.Sprintf("payment %d is completed but order payment status is %q", p.ID, order.PaymentStatus),
				Fixable:   true,
			})
		}
	}

	for orderID, attempts := range activeByOrder {
		if len(attempts) > 1 {
			// every non-authoritative pending attempt beyond the latest is a duplicate
			for _, p := range attempts[:len(attempts)-1] {
				fixable := p.Status == models.PaymentStatusPending || p.Status == models.PaymentStatusAwaiting
				issues = append(issues, ReconIssue{
					Category:  ReconDuplicatePayment,
					Severity:  SeverityMedium,
					OrderID:   orderID,
					PaymentID: p.ID,
					Detail:    fmt.Sprintf("order %d has %d non-failed payment attempts", orderID, len(attempts)),
					Fixable:   fixable,
				})
			}
		}
	}

	for i := range orders {
		order := &orders[i]
		if order.PaymentStatus == models.OrderPaymentPaid && len(activeByOrder[order.ID]) == 0 {
			issues = append(issues, ReconIssue{
				Category: ReconMissingPayment,
				Severity: SeverityHigh,
				OrderID:  order.ID,
				Detail:   fmt.Sprintf("order %d is marked paid but has no non-failed payment", order.ID),
			})
		}
	}

	return issues
}

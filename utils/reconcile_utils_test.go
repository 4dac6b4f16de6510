package utils

import (
	"testing"
	"time"

	"github.com/TrungLe-99/ShopViet/models"
	"github.com/stretchr/testify/assert"
)

func issueCategories(issues []ReconIssue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Category)
	}
	return out
}

func TestReconcileCleanDataYieldsNoIssues(t *testing.T) {
	orders := []models.Order{
		{ID: 1, TotalAmount: 150000, PaymentStatus: models.OrderPaymentPaid},
	}
	payments := []models.Payment{
		{ID: 10, OrderID: 1, Amount: 150000, Status: models.PaymentStatusComplete},
	}

	assert.Empty(t, ReconcilePayments(payments, orders))
}

func TestReconcileOrphanPayment(t *testing.T) {
	payments := []models.Payment{
		{ID: 10, OrderID: 99, Amount: 150000, Status: models.PaymentStatusComplete},
	}

	issues := ReconcilePayments(payments, nil)
	assert.Len(t, issues, 1)
	assert.Equal(t, ReconOrphanPayment, issues[0].Category)
	assert.Equal(t, SeverityHigh, issues[0].Severity)
	assert.False(t, issues[0].Fixable)
}

func TestReconcileAmountMismatch(t *testing.T) {
	orders := []models.Order{{ID: 1, TotalAmount: 150000, PaymentStatus: models.OrderPaymentPaid}}
	payments := []models.Payment{{ID: 10, OrderID: 1, Amount: 140000, Status: models.PaymentStatusComplete}}

	issues := ReconcilePayments(payments, orders)
	assert.Contains(t, issueCategories(issues), ReconAmountMismatch)

	for _, issue := range issues {
		if issue.Category == ReconAmountMismatch {
			assert.Equal(t, 150000.0, issue.Expected)
			assert.Equal(t, 140000.0, issue.Actual)
		}
	}
}

func TestReconcileAmountToleratesRounding(t *testing.T) {
	orders := []models.Order{{ID: 1, TotalAmount: 150000.004, PaymentStatus: models.OrderPaymentPaid}}
	payments := []models.Payment{{ID: 10, OrderID: 1, Amount: 150000, Status: models.PaymentStatusComplete}}

	assert.Empty(t, ReconcilePayments(payments, orders))
}

func TestReconcileStatusMismatchIsFixable(t *testing.T) {
	orders := []models.Order{{ID: 1, TotalAmount: 150000, PaymentStatus: models.OrderPaymentPending}}
	payments := []models.Payment{{ID: 10, OrderID: 1, Amount: 150000, Status: models.PaymentStatusComplete}}

	issues := ReconcilePayments(payments, orders)
	assert.Len(t, issues, 1)
	assert.Equal(t, ReconStatusMismatch, issues[0].Category)
	assert.True(t, issues[0].Fixable)
}

func TestReconcileDuplicateAttempts(t *testing.T) {
	orders := []models.Order{{ID: 1, TotalAmount: 150000, PaymentStatus: models.OrderPaymentPaid}}
	payments := []models.Payment{
		{ID: 10, OrderID: 1, Amount: 150000, Status: models.PaymentStatusPending},
		{ID: 11, OrderID: 1, Amount: 150000, Status: models.PaymentStatusComplete},
	}

	issues := ReconcilePayments(payments, orders)
	assert.Len(t, issues, 1)
	assert.Equal(t, ReconDuplicatePayment, issues[0].Category)
	assert.Equal(t, uint(10), issues[0].PaymentID) // the latest attempt stays authoritative
	assert.True(t, issues[0].Fixable)              // pending duplicates may be failed out
}

func TestReconcileDuplicateAttemptsIgnoreInputOrder(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	orders := []models.Order{{ID: 1, TotalAmount: 150000, PaymentStatus: models.OrderPaymentPaid}}
	// newest first: the completed attempt was created after the pending one
	payments := []models.Payment{
		{ID: 11, OrderID: 1, Amount: 150000, Status: models.PaymentStatusComplete, CreatedAt: base.Add(time.Hour)},
		{ID: 10, OrderID: 1, Amount: 150000, Status: models.PaymentStatusPending, CreatedAt: base},
	}

	issues := ReconcilePayments(payments, orders)
	assert.Len(t, issues, 1)
	assert.Equal(t, ReconDuplicatePayment, issues[0].Category)
	assert.Equal(t, uint(10), issues[0].PaymentID)
	// the caller's slice is left as passed
	assert.Equal(t, uint(11), payments[0].ID)
}

func TestReconcileFailedAttemptsAreNotDuplicates(t *testing.T) {
	orders := []models.Order{{ID: 1, TotalAmount: 150000, PaymentStatus: models.OrderPaymentPaid}}
	payments := []models.Payment{
		{ID: 10, OrderID: 1, Amount: 150000, Status: models.PaymentStatusFailed},
		{ID: 11, OrderID: 1, Amount: 150000, Status: models.PaymentStatusComplete},
	}

	assert.Empty(t, ReconcilePayments(payments, orders))
}

func TestReconcileMissingPayment(t *testing.T) {
	orders := []models.Order{{ID: 1, TotalAmount: 150000, PaymentStatus: models.OrderPaymentPaid}}

	issues := ReconcilePayments(nil, orders)
	assert.Len(t, issues, 1)
	assert.Equal(t, ReconMissingPayment, issues[0].Category)
	assert.Equal(t, SeverityHigh, issues[0].Severity)
}

func TestReconcilePaidOrderWithOnlyFailedPayments(t *testing.T) {
	orders := []models.Order{{ID: 1, TotalAmount: 150000, PaymentStatus: models.OrderPaymentPaid}}
	payments := []models.Payment{
		{ID: 10, OrderID: 1, Amount: 150000, Status: models.PaymentStatusFailed},
	}

	issues := ReconcilePayments(payments, orders)
	assert.Equal(t, []string{ReconMissingPayment}, issueCategories(issues))
}

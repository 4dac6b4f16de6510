package controllers

import (
	"fmt"
	"time"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
)

// FixFailure records one fix attempt that did not go through
type FixFailure struct {
	PaymentID uint   `json:"payment_id,omitempty"`
	OrderID   uint   `json:"order_id,omitempty"`
	Reason    string `json:"reason"`
}

// ReconcilePayments scans one day's payments against their orders and reports
// every mismatch. With auto_fix=true the fixable subset is resolved and the
// scan re-run, so the response carries both before and after issue lists.
func ReconcilePayments(c *gin.Context) {
	utils.LogInfo("ReconcilePayments called")

	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.BadRequest(c, "Invalid date. Use YYYY-MM-DD", nil)
			return
		}
		day = parsed
	}
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24 * time.Hour)

	var payments []models.Payment
	if err := config.DB.Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments for reconciliation: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", nil)
		return
	}

	orderIDs := make([]uint, 0, len(payments))
	for _, p := range payments {
		orderIDs = append(orderIDs, p.OrderID)
	}

	var orders []models.Order
	query := config.DB.Where("created_at >= ? AND created_at < ?", from, to)
	if len(orderIDs) > 0 {
		query = config.DB.Where("(created_at >= ? AND created_at < ?) OR id IN ?", from, to, orderIDs)
	}
	if err := query.Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for reconciliation: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	issues := utils.ReconcilePayments(payments, orders)

	if c.Query("auto_fix") != "true" {
		utils.Success(c, "Reconciliation completed", gin.H{
			"date":        from.Format("2006-01-02"),
			"payments":    len(payments),
			"orders":      len(orders),
			"issue_count": len(issues),
			"issues":      issues,
		})
		return
	}

	var fixed []utils.ReconIssue
	var failures []FixFailure
	for _, issue := range issues {
		if !issue.Fixable {
			continue
		}
		if err := applyReconFix(issue); err != nil {
			utils.LogError("Failed to fix %s for payment %d: %v", issue.Category, issue.PaymentID, err)
			failures = append(failures, FixFailure{
				PaymentID: issue.PaymentID,
				OrderID:   issue.OrderID,
				Reason:    err.Error(),
			})
			continue
		}
		fixed = append(fixed, issue)
	}

	// re-scan with fresh data so the after list reflects the applied fixes
	var paymentsAfter []models.Payment
	config.DB.Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").Find(&paymentsAfter)
	var ordersAfter []models.Order
	query = config.DB.Where("created_at >= ? AND created_at < ?", from, to)
	if len(orderIDs) > 0 {
		query = config.DB.Where("(created_at >= ? AND created_at < ?) OR id IN ?", from, to, orderIDs)
	}
	query.Find(&ordersAfter)
	issuesAfter := utils.ReconcilePayments(paymentsAfter, ordersAfter)

	utils.InvalidateCache(ordersCacheKey)

	utils.LogInfo("Reconciliation for %s fixed %d of %d issues", from.Format("2006-01-02"), len(fixed), len(issues))
	utils.Success(c, "Reconciliation completed with auto fix", gin.H{
		"date":          from.Format("2006-01-02"),
		"issues_before": issues,
		"issues_after":  issuesAfter,
		"fixed":         fixed,
		"fix_failures":  failures,
	})
}

// applyReconFix resolves a single fixable issue inside its own transaction
func applyReconFix(issue utils.ReconIssue) error {
	tx := config.DB.Begin()
	if tx.Error != nil {
		return utils.NewTransientError("failed to begin transaction", tx.Error)
	}

	switch issue.Category {
	case utils.ReconStatusMismatch:
		// order lags behind a completed payment
		if err := tx.Model(&models.Order{}).Where("id = ?", issue.OrderID).
			Update("payment_status", models.OrderPaymentPaid).Error; err != nil {
			tx.Rollback()
			return utils.NewTransientError("failed to update order payment status", err)
		}

	case utils.ReconDuplicatePayment:
		// surplus unsettled attempt, the latest one stays authoritative
		if err := tx.Model(&models.Payment{}).
			Where("id = ? AND status IN ?", issue.PaymentID,
				[]string{models.PaymentStatusPending, models.PaymentStatusAwaiting}).
			Updates(map[string]interface{}{
				"status":         models.PaymentStatusFailed,
				"failure_reason": "superseded duplicate attempt",
			}).Error; err != nil {
			tx.Rollback()
			return utils.NewTransientError("failed to mark duplicate payment failed", err)
		}

	default:
		tx.Rollback()
		return utils.NewValidationError(fmt.Sprintf("issue category %s is not auto-fixable", issue.Category), nil)
	}

	return tx.Commit().Error
}

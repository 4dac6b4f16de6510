package controllers

import (
	"fmt"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreatePaymentRequest represents the payment initiation payload
type CreatePaymentRequest struct {
	OrderID uint   `json:"order_id" binding:"required"`
	Method  string `json:"method" binding:"required"`
}

// CreatePayment opens a payment attempt for an order. cod and bank_transfer
// are immediately actionable; vnpay and momo return a signed redirect URL
// and wait for the gateway callback.
func CreatePayment(c *gin.Context) {
	utils.LogInfo("CreatePayment called")

	user := c.MustGet("user").(models.User)

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !models.IsValidPaymentMethod(req.Method) {
		utils.BadRequest(c, "Invalid payment method. Must be one of: cod, bank_transfer, vnpay, momo", nil)
		return
	}

	var order models.Order
	if err := config.DB.Where("id = ? AND user_id = ?", req.OrderID, user.ID).First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	if order.PaymentStatus == models.OrderPaymentPaid {
		utils.BadRequest(c, "Payment for this order has already been completed", nil)
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.InternalServerError(c, "Failed to load configuration", nil)
		return
	}

	// an unsettled attempt is authoritative. Re-requesting the same method
	// returns it with fresh instructions instead of stacking another row;
	// switching methods mid-flight is rejected.
	var pending models.Payment
	if err := config.DB.Where("order_id = ? AND status IN ?", order.ID,
		[]string{models.PaymentStatusPending, models.PaymentStatusAwaiting}).
		Order("created_at DESC").First(&pending).Error; err == nil {
		if pending.PaymentMethod != req.Method {
			utils.BadRequest(c, "A payment is already in progress for this order", gin.H{"payment_id": pending.ID})
			return
		}
		data := paymentInstructions(cfg, &order, &pending)
		data["payment"] = paymentJSON(&pending)
		utils.LogInfo("Returning in-progress payment %d for order %s", pending.ID, order.OrderNumber)
		utils.Success(c, "Payment already in progress", data)
		return
	}

	payment := models.Payment{
		OrderID:       order.ID,
		PaymentMethod: req.Method,
		Amount:        order.TotalAmount,
		Currency:      utils.Currency,
		Status:        models.PaymentStatusPending,
		TransactionID: uuid.New().String(),
	}
	if req.Method == models.PaymentMethodVNPay || req.Method == models.PaymentMethodMoMo {
		payment.Status = models.PaymentStatusAwaiting
	}

	data := paymentInstructions(cfg, &order, &payment)

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create payment for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to create payment", nil)
		return
	}

	orderUpdates := map[string]interface{}{"payment_method": req.Method}
	if payment.Status == models.PaymentStatusAwaiting {
		orderUpdates["payment_status"] = models.OrderPaymentAwaiting
	}
	if err := tx.Model(&order).Updates(orderUpdates).Error; err != nil {
		tx.Rollback()
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	data["payment"] = paymentJSON(&payment)

	utils.LogInfo("Created payment %d (%s) for order %s", payment.ID, req.Method, order.OrderNumber)
	utils.Created(c, "Payment created successfully", data)
}

// paymentInstructions builds the method-specific payload for an attempt.
// Gateway methods get a redirect URL signed with the attempt's own
// transaction ID, so retrying yields the same gateway reference.
func paymentInstructions(cfg *config.Config, order *models.Order, payment *models.Payment) gin.H {
	data := gin.H{}
	switch payment.PaymentMethod {
	case models.PaymentMethodCOD:
		data["instructions"] = "Pay the courier on delivery"

	case models.PaymentMethodBankTransfer:
		data["bank"] = gin.H{
			"bank_name":      cfg.BankName,
			"account_number": cfg.BankAccount,
			"account_holder": cfg.BankHolder,
			"amount":         order.TotalAmount,
			"reference":      utils.BankTransferReference(order.OrderNumber),
		}

	case models.PaymentMethodVNPay:
		returnURL := cfg.PublicBaseURL + "/v1/payments/vnpay/return"
		payment.RedirectURL = utils.BuildVNPayURL(cfg.VNPayURL, cfg.VNPayTmnCode, cfg.VNPaySecret,
			order.OrderNumber, returnURL, order.TotalAmount, payment.TransactionID)
		data["redirect_url"] = payment.RedirectURL

	case models.PaymentMethodMoMo:
		returnURL := cfg.PublicBaseURL + "/v1/payments/momo/ipn"
		payment.RedirectURL = utils.BuildMoMoURL(cfg.MoMoURL, cfg.MoMoPartner, cfg.MoMoAccessKey, cfg.MoMoSecret,
			order.OrderNumber, returnURL, order.TotalAmount, payment.TransactionID)
		data["redirect_url"] = payment.RedirectURL
	}
	return data
}

func paymentJSON(p *models.Payment) gin.H {
	return gin.H{
		"id":             p.ID,
		"order_id":       p.OrderID,
		"method":         p.PaymentMethod,
		"amount":         p.Amount,
		"currency":       p.Currency,
		"status":         p.Status,
		"transaction_id": p.TransactionID,
	}
}

// ListOrderPayments returns every payment attempt for one of the user's orders
func ListOrderPayments(c *gin.Context) {
	utils.LogInfo("ListOrderPayments called")

	user := c.MustGet("user").(models.User)

	var order models.Order
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("order_id = ?", order.ID).Order("created_at ASC").Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to fetch payments", nil)
		return
	}

	utils.Success(c, "Payments retrieved successfully", gin.H{
		"order_number": order.OrderNumber,
		"payments":     payments,
	})
}

// settlePayment applies a gateway outcome to a payment and its order.
// Idempotent: a payment already in a terminal state is left untouched, so a
// duplicate callback never double-applies.
func settlePayment(payment *models.Payment, succeeded bool, gatewayRef, failureReason string) error {
	if payment.IsSettled() {
		utils.LogInfo("Ignoring duplicate callback for settled payment %d", payment.ID)
		return nil
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		return utils.NewTransientError("failed to begin transaction", tx.Error)
	}

	status := models.PaymentStatusComplete
	orderPayment := models.OrderPaymentPaid
	orderStatus := models.OrderStatusConfirmed
	if !succeeded {
		status = models.PaymentStatusFailed
		orderPayment = models.OrderPaymentFailed
		orderStatus = ""
	}

	updates := map[string]interface{}{"status": status, "gateway_ref": gatewayRef}
	if failureReason != "" {
		updates["failure_reason"] = failureReason
	}
	if err := tx.Model(payment).Updates(updates).Error; err != nil {
		tx.Rollback()
		return utils.NewTransientError("failed to update payment", err)
	}

	orderUpdates := map[string]interface{}{"payment_status": orderPayment}
	if orderStatus != "" {
		orderUpdates["status"] = orderStatus
	}
	if err := tx.Model(&models.Order{}).Where("id = ?", payment.OrderID).Updates(orderUpdates).Error; err != nil {
		tx.Rollback()
		return utils.NewTransientError("failed to update order", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.NewTransientError("failed to commit transaction", err)
	}

	utils.InvalidateCache(ordersCacheKey)
	return nil
}

// VNPayReturn handles the browser redirect back from VNPay
func VNPayReturn(c *gin.Context) {
	utils.LogInfo("VNPayReturn called")

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.InternalServerError(c, "Failed to load configuration", nil)
		return
	}

	params := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if key != "vnp_SecureHash" && key != "vnp_SecureHashType" && len(values) > 0 {
			params[key] = values[0]
		}
	}

	signature := c.Query("vnp_SecureHash")
	if !utils.VerifySignature(params, cfg.VNPaySecret, signature, true) {
		utils.LogError("VNPay signature verification failed for txn %s", c.Query("vnp_TxnRef"))
		utils.BadRequest(c, "Invalid gateway signature", nil)
		return
	}

	var payment models.Payment
	if err := config.DB.Where("transaction_id = ?", c.Query("vnp_TxnRef")).First(&payment).Error; err != nil {
		utils.NotFound(c, "Payment not found")
		return
	}

	succeeded := c.Query("vnp_ResponseCode") == "00"
	failureReason := ""
	if !succeeded {
		failureReason = fmt.Sprintf("vnpay response code %s", c.Query("vnp_ResponseCode"))
	}

	if err := settlePayment(&payment, succeeded, c.Query("vnp_TransactionNo"), failureReason); err != nil {
		utils.LogError("Failed to settle VNPay payment %d: %v", payment.ID, err)
		utils.InternalServerError(c, "Failed to record payment result", nil)
		return
	}

	utils.LogInfo("Settled VNPay payment %d, success=%t", payment.ID, succeeded)
	utils.Success(c, "Payment result recorded", gin.H{
		"payment_id": payment.ID,
		"succeeded":  succeeded,
	})
}

// MoMoIPN handles the server-to-server notification from MoMo
func MoMoIPN(c *gin.Context) {
	utils.LogInfo("MoMoIPN called")

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.InternalServerError(c, "Failed to load configuration", nil)
		return
	}

	var req struct {
		PartnerCode string `json:"partnerCode"`
		RequestID   string `json:"requestId"`
		OrderID     string `json:"orderId"`
		Amount      string `json:"amount"`
		ResultCode  int    `json:"resultCode"`
		TransID     string `json:"transId"`
		Message     string `json:"message"`
		Signature   string `json:"signature"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	params := map[string]string{
		"partnerCode": req.PartnerCode,
		"requestId":   req.RequestID,
		"orderId":     req.OrderID,
		"amount":      req.Amount,
		"resultCode":  fmt.Sprintf("%d", req.ResultCode),
		"transId":     req.TransID,
		"message":     req.Message,
	}
	if !utils.VerifySignature(params, cfg.MoMoSecret, req.Signature, false) {
		utils.LogError("MoMo signature verification failed for request %s", req.RequestID)
		utils.BadRequest(c, "Invalid gateway signature", nil)
		return
	}

	var payment models.Payment
	if err := config.DB.Where("transaction_id = ?", req.RequestID).First(&payment).Error; err != nil {
		utils.NotFound(c, "Payment not found")
		return
	}

	succeeded := req.ResultCode == 0
	failureReason := ""
	if !succeeded {
		failureReason = req.Message
	}

	if err := settlePayment(&payment, succeeded, req.TransID, failureReason); err != nil {
		utils.LogError("Failed to settle MoMo payment %d: %v", payment.ID, err)
		utils.InternalServerError(c, "Failed to record payment result", nil)
		return
	}

	utils.LogInfo("Settled MoMo payment %d, success=%t", payment.ID, succeeded)
	utils.Success(c, "Payment result recorded", gin.H{
		"payment_id": payment.ID,
		"succeeded":  succeeded,
	})
}

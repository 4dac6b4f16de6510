package controllers

import (
	"net/http"
	"testing"

	"github.com/TrungLe-99/ShopViet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentSameMethodReturnsExistingAttempt(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "hoa")

	order := models.Order{OrderNumber: "ORD-20260829110000-DDDDDDDD", UserID: user.ID,
		Status: models.OrderStatusPending, PaymentStatus: models.OrderPaymentAwaiting, TotalAmount: 550000}
	require.NoError(t, db.Create(&order).Error)

	existing := models.Payment{OrderID: order.ID, PaymentMethod: models.PaymentMethodVNPay,
		Amount: order.TotalAmount, Status: models.PaymentStatusAwaiting, TransactionID: "txn-1"}
	require.NoError(t, db.Create(&existing).Error)

	c, w := jsonRequest(t, user, http.MethodPost, "/payments",
		CreatePaymentRequest{OrderID: order.ID, Method: models.PaymentMethodVNPay})
	CreatePayment(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
		Data    struct {
			RedirectURL string `json:"redirect_url"`
			Payment     struct {
				ID            uint   `json:"id"`
				TransactionID string `json:"transaction_id"`
			} `json:"payment"`
		} `json:"data"`
	}
	decodeResponse(t, w, &resp)

	assert.Equal(t, "Payment already in progress", resp.Message)
	assert.Equal(t, existing.ID, resp.Data.Payment.ID)
	assert.Equal(t, existing.TransactionID, resp.Data.Payment.TransactionID)
	assert.NotEmpty(t, resp.Data.RedirectURL)

	// no second row was stacked on the order
	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreatePaymentDifferentMethodWhilePendingIsRejected(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "tuan")

	order := models.Order{OrderNumber: "ORD-20260829120000-EEEEEEEE", UserID: user.ID,
		Status: models.OrderStatusPending, PaymentStatus: models.OrderPaymentAwaiting, TotalAmount: 300000}
	require.NoError(t, db.Create(&order).Error)

	existing := models.Payment{OrderID: order.ID, PaymentMethod: models.PaymentMethodVNPay,
		Amount: order.TotalAmount, Status: models.PaymentStatusAwaiting, TransactionID: "txn-2"}
	require.NoError(t, db.Create(&existing).Error)

	c, w := jsonRequest(t, user, http.MethodPost, "/payments",
		CreatePaymentRequest{OrderID: order.ID, Method: models.PaymentMethodCOD})
	CreatePayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "A payment is already in progress")
}

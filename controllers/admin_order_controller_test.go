package controllers

import (
	"net/http"
	"testing"

	"github.com/TrungLe-99/ShopViet/models"
	"github.com/TrungLe-99/ShopViet/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminBulkUpdateOrderStatusPartialOutcome(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "backoffice")

	orders := []models.Order{
		{OrderNumber: "ORD-20260829100000-AAAAAAAA", UserID: admin.ID, Status: models.OrderStatusPending, TotalAmount: 150000},
		{OrderNumber: "ORD-20260829100000-BBBBBBBB", UserID: admin.ID, Status: models.OrderStatusPending, TotalAmount: 400000},
		{OrderNumber: "ORD-20260829100000-CCCCCCCC", UserID: admin.ID, Status: models.OrderStatusDelivered, TotalAmount: 250000},
	}
	for i := range orders {
		require.NoError(t, db.Create(&orders[i]).Error)
	}

	// cancelling a delivered order is the one hard-blocked move
	c, w := jsonRequest(t, admin, http.MethodPatch, "/admin/orders/bulk-status", BulkUpdateOrderStatusRequest{
		OrderIDs: []uint{orders[0].ID, orders[1].ID, orders[2].ID},
		Status:   models.OrderStatusCancelled,
	})
	AdminBulkUpdateOrderStatus(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data utils.BulkResult `json:"data"`
	}
	decodeResponse(t, w, &resp)

	assert.ElementsMatch(t, []uint{orders[0].ID, orders[1].ID}, resp.Data.Updated)
	require.Len(t, resp.Data.Failed, 1)
	assert.Equal(t, orders[2].ID, resp.Data.Failed[0].ID)
	assert.NotEmpty(t, resp.Data.Failed[0].Reason)

	// the rejected order is untouched, the rest went through
	var delivered models.Order
	require.NoError(t, db.First(&delivered, orders[2].ID).Error)
	assert.Equal(t, models.OrderStatusDelivered, delivered.Status)

	var cancelled models.Order
	require.NoError(t, db.First(&cancelled, orders[0].ID).Error)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
}

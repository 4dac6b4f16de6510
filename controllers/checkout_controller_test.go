package controllers

import (
	"net/http"
	"testing"

	"github.com/TrungLe-99/ShopViet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderZoneWithoutRatesRejectsCleanly(t *testing.T) {
	db := setupTestDB(t)

	user := seedUser(t, db, "lan")
	address := models.Address{UserID: user.ID, FullName: "Lan Pham", Line1: "12 Ly Thuong Kiet",
		City: "Hanoi", Country: "Vietnam", IsDefault: true}
	require.NoError(t, db.Create(&address).Error)

	product := models.Product{Name: "Ao thun", SKU: "AT-001", Price: 150000, Stock: 10, Weight: 0.3, IsActive: true}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2}).Error)

	// the zone covers the address but has no rates yet
	zone := models.ShippingZone{Name: "North", Countries: []string{"Vietnam"}, IsActive: true}
	require.NoError(t, db.Create(&zone).Error)

	c, w := jsonRequest(t, user, http.MethodPost, "/checkout",
		PlaceOrderRequest{AddressID: address.ID, PaymentMethod: models.PaymentMethodCOD})
	PlaceOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Delivery not available for this address")

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestPlaceOrderZoneWithOnlyInactiveRatesRejectsCleanly(t *testing.T) {
	db := setupTestDB(t)

	user := seedUser(t, db, "minh")
	address := models.Address{UserID: user.ID, FullName: "Minh Tran", Line1: "5 Nguyen Hue",
		City: "Ho Chi Minh City", Country: "Vietnam", IsDefault: true}
	require.NoError(t, db.Create(&address).Error)

	product := models.Product{Name: "Quan jean", SKU: "QJ-001", Price: 400000, Stock: 5, Weight: 0.6, IsActive: true}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}).Error)

	zone := models.ShippingZone{Name: "South", Countries: []string{"Vietnam"}, IsActive: true}
	require.NoError(t, db.Create(&zone).Error)
	rate := models.ShippingRate{ZoneID: zone.ID, Name: "Standard", Cost: 30000}
	require.NoError(t, db.Create(&rate).Error)
	// the column defaults to true, deactivate explicitly
	require.NoError(t, db.Model(&rate).Update("is_active", false).Error)

	c, w := jsonRequest(t, user, http.MethodPost, "/checkout",
		PlaceOrderRequest{AddressID: address.ID, PaymentMethod: models.PaymentMethodCOD})
	PlaceOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Delivery not available for this address")
}

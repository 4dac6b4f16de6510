package utils

import (
	"testing"

	"github.com/TrungLe-99/ShopViet/models"
	"github.com/stretchr/testify/assert"
)

func cartLines() []CartLine {
	return []CartLine{
		{Product: models.Product{Name: "Ao thun", SKU: "AT-01", Price: 150000, Stock: 10, Weight: 0.3, IsActive: true}, Quantity: 2},
		{Product: models.Product{Name: "Quan jean", SKU: "QJ-02", Price: 400000, Stock: 5, Weight: 0.7, IsActive: true}, Quantity: 1},
	}
}

func TestComputeCartTotalsSubtotalAndWeight(t *testing.T) {
	details := ComputeCartTotals(cartLines(), nil, fixedNow())

	assert.Equal(t, 700000.0, details.Subtotal)
	assert.Equal(t, 700000.0, details.Total)
	assert.InDelta(t, 1.3, details.TotalWeight, 0.0001)
	assert.Len(t, details.Items, 2)
	assert.Equal(t, 0.0, details.ShippingAmount)
}

func TestComputeCartTotalsSkipsInactiveAndOutOfStock(t *testing.T) {
	lines := cartLines()
	lines[0].Product.IsActive = false
	lines = append(lines, CartLine{
		Product:  models.Product{Name: "Non la", SKU: "NL-03", Price: 90000, Stock: 1, IsActive: true},
		Quantity: 3, // exceeds stock
	})

	details := ComputeCartTotals(lines, nil, fixedNow())

	// only the jean line counts
	assert.Equal(t, 400000.0, details.Subtotal)
	assert.Len(t, details.Items, 1)
	assert.Equal(t, "QJ-02", details.Items[0].ProductSKU)
}

func TestComputeCartTotalsAppliesCoupon(t *testing.T) {
	details := ComputeCartTotals(cartLines(), sale10(), fixedNow())

	assert.True(t, details.CouponApplicable)
	assert.Equal(t, 50000.0, details.DiscountAmount) // 10% of 700000 capped
	assert.Equal(t, 650000.0, details.Total)
	assert.Equal(t, "SALE10", details.CouponCode)
}

func TestComputeCartTotalsCouponFailsOpen(t *testing.T) {
	// cart shrank below the coupon minimum: no error, zero discount, reason set
	lines := []CartLine{
		{Product: models.Product{Name: "Tat", SKU: "T-04", Price: 30000, Stock: 9, IsActive: true}, Quantity: 1},
	}

	details := ComputeCartTotals(lines, sale10(), fixedNow())

	assert.False(t, details.CouponApplicable)
	assert.Equal(t, 0.0, details.DiscountAmount)
	assert.Equal(t, CouponReasonBelowMinimum, details.CouponReason)
	assert.Equal(t, 30000.0, details.Total)
}

func TestComputeCartTotalsNeverNegative(t *testing.T) {
	lines := []CartLine{
		{Product: models.Product{Name: "Khau trang", SKU: "KT-05", Price: 10000, Stock: 3, IsActive: true}, Quantity: 1},
	}
	coupon := &models.Coupon{
		Code:     "FLAT50K",
		Type:     models.CouponTypeFixedAmount,
		Value:    50000,
		Active:   true,
		StartsAt: fixedNow().AddDate(0, -1, 0),
	}

	details := ComputeCartTotals(lines, coupon, fixedNow())

	assert.GreaterOrEqual(t, details.Total, 0.0)
	assert.Equal(t, 0.0, details.Total)
}

func TestComputeCartTotalsSnapshotsLineFields(t *testing.T) {
	lines := cartLines()
	details := ComputeCartTotals(lines, nil, fixedNow())

	// mutate the source product after computing; the snapshot must not move
	lines[0].Product.Name = "renamed"
	lines[0].Product.Price = 1

	assert.Equal(t, "Ao thun", details.Items[0].ProductName)
	assert.Equal(t, 150000.0, details.Items[0].UnitPrice)
	assert.Equal(t, 300000.0, details.Items[0].TotalPrice)
}

func TestComputeCartTotalsEmptyCart(t *testing.T) {
	details := ComputeCartTotals(nil, nil, fixedNow())

	assert.Equal(t, 0.0, details.Subtotal)
	assert.Equal(t, 0.0, details.Total)
	assert.Empty(t, details.Items)
}

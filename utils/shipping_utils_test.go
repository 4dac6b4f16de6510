package utils

import (
	"testing"

	"github.com/TrungLe-99/ShopViet/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateShippingCostBasePlusWeight(t *testing.T) {
	cost := CalculateShippingCost(20000, 3, 5000, nil, 150000)
	assert.Equal(t, 35000.0, cost)
}

func TestCalculateShippingCostFreeThresholdIsAbsolute(t *testing.T) {
	threshold := 300000.0

	// heavy parcel, high base rate: the threshold still zeroes the cost
	cost := CalculateShippingCost(20000, 3, 5000, &threshold, 350000)
	assert.Equal(t, 0.0, cost)

	cost = CalculateShippingCost(999999, 500, 99999, &threshold, 300000)
	assert.Equal(t, 0.0, cost)
}

func TestCalculateShippingCostBelowThresholdCharges(t *testing.T) {
	threshold := 300000.0
	cost := CalculateShippingCost(20000, 3, 5000, &threshold, 299999)
	assert.Equal(t, 35000.0, cost)
}

func TestCalculateShippingCostNeverNegative(t *testing.T) {
	assert.GreaterOrEqual(t, CalculateShippingCost(0, 0, 0, nil, 0), 0.0)
	assert.GreaterOrEqual(t, CalculateShippingCost(-500, 2, 0, nil, 0), 0.0)
}

func TestCalculateShippingCostFlatRateIgnoresWeight(t *testing.T) {
	// weightRate 0 means the rate is flat
	cost := CalculateShippingCost(30000, 12, 0, nil, 50000)
	assert.Equal(t, 30000.0, cost)
}

func TestZoneMatchesAddressCountryOnly(t *testing.T) {
	zone := &models.ShippingZone{
		IsActive:  true,
		Countries: []string{"Vietnam"},
	}
	address := &models.Address{Country: "vietnam", State: "Anywhere", City: "Anytown"}

	assert.True(t, ZoneMatchesAddress(zone, address))
}

func TestZoneMatchesAddressStateRestriction(t *testing.T) {
	zone := &models.ShippingZone{
		IsActive:  true,
		Countries: []string{"Vietnam"},
		States:    []string{"Ha Noi", "Ho Chi Minh"},
	}

	inside := &models.Address{Country: "Vietnam", State: "ha noi"}
	outside := &models.Address{Country: "Vietnam", State: "Da Nang"}

	assert.True(t, ZoneMatchesAddress(zone, inside))
	assert.False(t, ZoneMatchesAddress(zone, outside))
}

func TestZoneMatchesAddressCityRestriction(t *testing.T) {
	zone := &models.ShippingZone{
		IsActive:  true,
		Countries: []string{"Vietnam"},
		Cities:    []string{"Hue"},
	}

	assert.True(t, ZoneMatchesAddress(zone, &models.Address{Country: "Vietnam", City: " Hue "}))
	assert.False(t, ZoneMatchesAddress(zone, &models.Address{Country: "Vietnam", City: "Hoi An"}))
}

func TestZoneMatchesAddressInactiveZone(t *testing.T) {
	zone := &models.ShippingZone{
		IsActive:  false,
		Countries: []string{"Vietnam"},
	}
	assert.False(t, ZoneMatchesAddress(zone, &models.Address{Country: "Vietnam"}))
}

func TestZoneMatchesAddressWrongCountry(t *testing.T) {
	zone := &models.ShippingZone{
		IsActive:  true,
		Countries: []string{"Vietnam", "Laos"},
	}
	assert.False(t, ZoneMatchesAddress(zone, &models.Address{Country: "Thailand"}))
}

package utils

import (
	"strings"

	"github.com/TrungLe-99/ShopViet/config"
	"github.com/TrungLe-99/ShopViet/models"
)

// CalculateShippingCost computes the cost of one shipment. A free-shipping
// threshold met by the order value zeroes the cost unconditionally; weight
// is not charged. Otherwise the base rate plus any per-kilogram surcharge
// applies, floored at zero.
func CalculateShippingCost(baseRate, weight, weightRate float64, freeThreshold *float64, orderValue float64) float64 {
	if freeThreshold != nil && orderValue >= *freeThreshold {
		return 0
	}

	cost := baseRate
	if weightRate > 0 {
		cost += weight * weightRate
	}
	if cost < 0 {
		cost = 0
	}
	return cost
}

// ZoneMatchesAddress reports whether a zone covers the destination. Matching
// is deliberately permissive: the country must be listed, and state/city are
// only checked when the zone restricts them.
func ZoneMatchesAddress(zone *models.ShippingZone, address *models.Address) bool {
	if !zone.IsActive {
		return false
	}
	if !containsFold(zone.Countries, address.Country) {
		return false
	}
	if len(zone.States) > 0 && !containsFold(zone.States, address.State) {
		return false
	}
	if len(zone.Cities) > 0 && !containsFold(zone.Cities, address.City) {
		return false
	}
	return true
}

func containsFold(list []string, value string) bool {
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(value)) {
			return true
		}
	}
	return false
}

// ShippingQuote is a priced shipping option for a destination
type ShippingQuote struct {
	ZoneID        uint    `json:"zone_id"`
	ZoneName      string  `json:"zone_name"`
	RateID        uint    `json:"rate_id"`
	RateName      string  `json:"rate_name"`
	Cost          float64 `json:"cost"`
	EstimatedMin  int     `json:"estimated_days_min"`
	EstimatedMax  int     `json:"estimated_days_max"`
	FreeThreshold *float64 `json:"free_shipping_threshold,omitempty"`
}

// GetShippingQuotes returns every applicable rate for a destination, priced
// for the given parcel weight and order value. The first zone that matches
// the address wins.
func GetShippingQuotes(address *models.Address, weight, orderValue float64) ([]ShippingQuote, error) {
	db := config.DB

	var zones []models.ShippingZone
	if err := db.Preload("Rates", "is_active = ?", true).Where("is_active = ?", true).Find(&zones).Error; err != nil {
		return nil, NewTransientError("failed to fetch shipping zones", err)
	}

	for i := range zones {
		if !ZoneMatchesAddress(&zones[i], address) {
			continue
		}
		quotes := make([]ShippingQuote, 0, len(zones[i].Rates))
		for _, rate := range zones[i].Rates {
			weightRate := 0.0
			if rate.WeightBased {
				weightRate = rate.WeightRate
			}
			quotes = append(quotes, ShippingQuote{
				ZoneID:        zones[i].ID,
				ZoneName:      zones[i].Name,
				RateID:        rate.ID,
				RateName:      rate.Name,
				Cost:          CalculateShippingCost(rate.Cost, weight, weightRate, rate.FreeShippingThreshold, orderValue),
				EstimatedMin:  rate.EstimatedDaysMin,
				EstimatedMax:  rate.EstimatedDaysMax,
				FreeThreshold: rate.FreeShippingThreshold,
			})
		}
		return quotes, nil
	}

	return nil, NewNotFoundError("no shipping zone covers this address", nil)
}

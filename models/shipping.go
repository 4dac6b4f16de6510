package models

import (
	"time"
)

// ShippingZone groups countries (optionally narrowed to states/cities)
// sharing the same rate options. An empty States/Cities list means the zone
// covers every location in its countries.
type ShippingZone struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `json:"name" gorm:"not null"`
	Countries []string       `json:"countries" gorm:"serializer:json"`
	States    []string       `json:"states,omitempty" gorm:"serializer:json"`
	Cities    []string       `json:"cities,omitempty" gorm:"serializer:json"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	Rates     []ShippingRate `json:"rates" gorm:"foreignKey:ZoneID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ShippingRate is one priced shipping method inside a zone.
// Invariant: EstimatedDaysMax >= EstimatedDaysMin.
type ShippingRate struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	ZoneID                uint      `json:"zone_id"`
	Name                  string    `json:"name"`
	Cost                  float64   `json:"cost"`
	FreeShippingThreshold *float64  `json:"free_shipping_threshold,omitempty"`
	EstimatedDaysMin      int       `json:"estimated_days_min"`
	EstimatedDaysMax      int       `json:"estimated_days_max"`
	WeightBased           bool      `json:"weight_based"`
	WeightRate            float64   `json:"weight_rate"` // per kilogram surcharge when weight based
	IsActive              bool      `json:"is_active" gorm:"default:true"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

package model

import "time"

// WarehouseLocation represents a physical stock location.
type WarehouseLocation struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	CurrentStockMT float64   `json:"currentStockMt"`
	CapacityMT     float64   `json:"capacityMt"` // 0 means unbounded
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}

// LocationFilter for querying warehouse locations
type LocationFilter struct {
	IncludeInactive bool
}

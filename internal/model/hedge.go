package model

import "time"

// HedgeStatus is the lifecycle state of a hedge position.
type HedgeStatus string

const (
	HedgeActive    HedgeStatus = "active"
	HedgeClosed    HedgeStatus = "closed"
	HedgeCancelled HedgeStatus = "cancelled"
)

// Valid reports whether s is a recognized hedge status.
func (s HedgeStatus) Valid() bool {
	switch s {
	case HedgeActive, HedgeClosed, HedgeCancelled:
		return true
	}
	return false
}

// Hedge represents an open derivative position with a counterparty, optionally
// linked to the sales order it covers.
type Hedge struct {
	ID             string      `json:"id"`
	CounterpartyID string      `json:"counterpartyId"`
	SalesOrderID   string      `json:"salesOrderId"` // empty when not linked
	QuantityMT     float64     `json:"quantityMt"`
	ContractPrice  float64     `json:"contractPrice"`
	Period         string      `json:"period"`
	Instrument     string      `json:"instrument"`
	MaturityDate   string      `json:"maturityDate"` // YYYY-MM-DD, empty if unset
	Status         HedgeStatus `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// HedgeFilter for querying hedges
type HedgeFilter struct {
	Status         HedgeStatus // empty matches all statuses
	CounterpartyID string      // empty matches all counterparties
}

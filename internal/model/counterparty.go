package model

import "time"

// CounterpartyType distinguishes the two kinds of quoting counterparties.
type CounterpartyType string

const (
	CounterpartyBank   CounterpartyType = "bank"
	CounterpartyBroker CounterpartyType = "broker"
)

// Valid reports whether t is a recognized counterparty type.
func (t CounterpartyType) Valid() bool {
	return t == CounterpartyBank || t == CounterpartyBroker
}

// Counterparty represents a bank or broker that receives RFQ messages and
// quotes hedge prices.
type Counterparty struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Type         CounterpartyType `json:"type"`
	ContactName  string           `json:"contactName"`
	ContactEmail string           `json:"contactEmail"`
	ContactPhone string           `json:"contactPhone"`
	Active       bool             `json:"active"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// CounterpartyFilter for querying counterparties
type CounterpartyFilter struct {
	IncludeInactive bool
	Type            CounterpartyType // empty matches all types
}

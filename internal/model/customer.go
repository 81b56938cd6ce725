package model

import "time"

// Customer represents a buyer of finished product from the database
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	LegalName    string    `json:"legalName"`
	TaxID        string    `json:"taxId"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	CreditLimit  float64   `json:"creditLimit"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CustomerFilter for querying customers
type CustomerFilter struct {
	IncludeInactive bool
}

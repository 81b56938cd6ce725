package model

import "time"

// Supplier represents a metal supplier from the database
type Supplier struct {
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

// SupplierFilter for querying suppliers
type SupplierFilter struct {
	IncludeInactive bool
}

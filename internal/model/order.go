package model

import "time"

// OrderStatus is the lifecycle state of a purchase or sales order.
// Completed and cancelled are terminal.
type OrderStatus string

const (
	OrderDraft     OrderStatus = "draft"
	OrderActive    OrderStatus = "active"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a recognized order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderDraft, OrderActive, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Final reports whether s is a terminal status.
func (s OrderStatus) Final() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// PricingType is how an order's metal price is determined.
type PricingType string

const (
	PricingFixed          PricingType = "fixed"
	PricingTBF            PricingType = "tbf" // to be fixed
	PricingMonthlyAverage PricingType = "monthly_average"
	PricingLMEPremium     PricingType = "lme_premium"
)

// Valid reports whether p is a recognized pricing type.
func (p PricingType) Valid() bool {
	switch p {
	case PricingFixed, PricingTBF, PricingMonthlyAverage, PricingLMEPremium:
		return true
	}
	return false
}

// PurchaseOrder represents a metal purchase from a supplier.
type PurchaseOrder struct {
	ID               string      `json:"id"`
	PONumber         string      `json:"poNumber"`
	SupplierID       string      `json:"supplierId"`
	Product          string      `json:"product"`
	QuantityMT       float64     `json:"quantityMt"`
	UnitPrice        float64     `json:"unitPrice"`
	PricingType      PricingType `json:"pricingType"`
	PricingPeriod    string      `json:"pricingPeriod"`
	Premium          float64     `json:"premium"`
	ExpectedDelivery string      `json:"expectedDelivery"` // YYYY-MM-DD, empty if unset
	Location         string      `json:"location"`
	Status           OrderStatus `json:"status"`
	Notes            string      `json:"notes"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// SalesOrder represents a metal sale to a customer.
type SalesOrder struct {
	ID               string      `json:"id"`
	SONumber         string      `json:"soNumber"`
	CustomerID       string      `json:"customerId"`
	Product          string      `json:"product"`
	QuantityMT       float64     `json:"quantityMt"`
	UnitPrice        float64     `json:"unitPrice"`
	PricingType      PricingType `json:"pricingType"`
	PricingPeriod    string      `json:"pricingPeriod"`
	Premium          float64     `json:"premium"`
	ExpectedDelivery string      `json:"expectedDelivery"` // YYYY-MM-DD, empty if unset
	Location         string      `json:"location"`
	Status           OrderStatus `json:"status"`
	Notes            string      `json:"notes"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// OrderFilter for querying purchase or sales orders
type OrderFilter struct {
	Status  OrderStatus // empty matches all statuses
	PartyID string      // supplier or customer ID, empty matches all
}

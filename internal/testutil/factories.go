package testutil

import (
	"database/sql"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/alcast/backoffice/internal/model"
)

// MakeID generates a fresh UUID string for test entities.
func MakeID() string {
	return uuid.New().String()
}

// MakeName generates a unique name with the given base, keeping UNIQUE
// constraints happy across builds in one test.
func MakeName(base string) string {
	return fmt.Sprintf("%s %06d", base, rand.Intn(1000000))
}

// SupplierBuilder provides a fluent interface for creating test suppliers.
//
// Example usage:
//
//	supplier := testutil.NewSupplier().Build(t, db)
//
//	supplier := testutil.NewSupplier().
//	    WithName("Norsk Hydro").
//	    Inactive().
//	    Build(t, db)
type SupplierBuilder struct {
	ID          string
	Name        string
	Code        string
	CreditLimit float64
	Active      bool
}

// NewSupplier creates a SupplierBuilder with sensible defaults.
func NewSupplier() *SupplierBuilder {
	return &SupplierBuilder{
		ID:          MakeID(),
		Name:        MakeName("Test Supplier"),
		Code:        MakeName("SUP"),
		CreditLimit: 500000,
		Active:      true,
	}
}

// WithName sets a custom name.
func (b *SupplierBuilder) WithName(name string) *SupplierBuilder {
	b.Name = name
	return b
}

// Inactive marks the supplier as inactive.
func (b *SupplierBuilder) Inactive() *SupplierBuilder {
	b.Active = false
	return b
}

// Build creates the supplier in the database and returns it.
func (b *SupplierBuilder) Build(t *testing.T, db *sql.DB) model.Supplier {
	t.Helper()

	query := `
		INSERT INTO supplier (id, name, code, credit_limit, active)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Code, b.CreditLimit, b.Active)
	if err != nil {
		t.Fatalf("Failed to create test supplier: %v", err)
	}

	return model.Supplier{
		ID:          b.ID,
		Name:        b.Name,
		Code:        b.Code,
		CreditLimit: b.CreditLimit,
		Active:      b.Active,
	}
}

// CustomerBuilder provides a fluent interface for creating test customers.
type CustomerBuilder struct {
	ID     string
	Name   string
	Code   string
	Active bool
}

// NewCustomer creates a CustomerBuilder with sensible defaults.
func NewCustomer() *CustomerBuilder {
	return &CustomerBuilder{
		ID:     MakeID(),
		Name:   MakeName("Test Customer"),
		Code:   MakeName("CUS"),
		Active: true,
	}
}

// WithName sets a custom name.
func (b *CustomerBuilder) WithName(name string) *CustomerBuilder {
	b.Name = name
	return b
}

// Build creates the customer in the database and returns it.
func (b *CustomerBuilder) Build(t *testing.T, db *sql.DB) model.Customer {
	t.Helper()

	query := `
		INSERT INTO customer (id, name, code, active)
		VALUES (?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Code, b.Active)
	if err != nil {
		t.Fatalf("Failed to create test customer: %v", err)
	}

	return model.Customer{
		ID:     b.ID,
		Name:   b.Name,
		Code:   b.Code,
		Active: b.Active,
	}
}

// CounterpartyBuilder provides a fluent interface for creating test
// counterparties.
type CounterpartyBuilder struct {
	ID     string
	Name   string
	Type   model.CounterpartyType
	Active bool
}

// NewCounterparty creates a CounterpartyBuilder with sensible defaults.
func NewCounterparty() *CounterpartyBuilder {
	return &CounterpartyBuilder{
		ID:     MakeID(),
		Name:   MakeName("Test Bank"),
		Type:   model.CounterpartyBank,
		Active: true,
	}
}

// WithName sets a custom name.
func (b *CounterpartyBuilder) WithName(name string) *CounterpartyBuilder {
	b.Name = name
	return b
}

// Broker sets the counterparty type to broker.
func (b *CounterpartyBuilder) Broker() *CounterpartyBuilder {
	b.Type = model.CounterpartyBroker
	return b
}

// Build creates the counterparty in the database and returns it.
func (b *CounterpartyBuilder) Build(t *testing.T, db *sql.DB) model.Counterparty {
	t.Helper()

	query := `
		INSERT INTO counterparty (id, name, type, active)
		VALUES (?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Type, b.Active)
	if err != nil {
		t.Fatalf("Failed to create test counterparty: %v", err)
	}

	return model.Counterparty{
		ID:     b.ID,
		Name:   b.Name,
		Type:   b.Type,
		Active: b.Active,
	}
}

// HedgeBuilder provides a fluent interface for creating test hedges.
type HedgeBuilder struct {
	ID             string
	CounterpartyID string
	QuantityMT     float64
	ContractPrice  float64
	Period         string
	Instrument     string
	Status         model.HedgeStatus
}

// NewHedge creates a HedgeBuilder tied to the given counterparty.
func NewHedge(counterpartyID string) *HedgeBuilder {
	return &HedgeBuilder{
		ID:             MakeID(),
		CounterpartyID: counterpartyID,
		QuantityMT:     500,
		ContractPrice:  2400,
		Period:         "2026-09",
		Instrument:     "LME-AL-3M",
		Status:         model.HedgeActive,
	}
}

// WithQuantity sets the hedge quantity in metric tons.
func (b *HedgeBuilder) WithQuantity(qty float64) *HedgeBuilder {
	b.QuantityMT = qty
	return b
}

// WithContractPrice sets the contract price.
func (b *HedgeBuilder) WithContractPrice(price float64) *HedgeBuilder {
	b.ContractPrice = price
	return b
}

// WithInstrument sets the priced instrument symbol.
func (b *HedgeBuilder) WithInstrument(symbol string) *HedgeBuilder {
	b.Instrument = symbol
	return b
}

// Closed marks the hedge as closed.
func (b *HedgeBuilder) Closed() *HedgeBuilder {
	b.Status = model.HedgeClosed
	return b
}

// Build creates the hedge in the database and returns it.
func (b *HedgeBuilder) Build(t *testing.T, db *sql.DB) model.Hedge {
	t.Helper()

	query := `
		INSERT INTO hedge (id, counterparty_id, quantity_mt, contract_price, period, instrument, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.CounterpartyID, b.QuantityMT, b.ContractPrice, b.Period, b.Instrument, b.Status)
	if err != nil {
		t.Fatalf("Failed to create test hedge: %v", err)
	}

	return model.Hedge{
		ID:             b.ID,
		CounterpartyID: b.CounterpartyID,
		QuantityMT:     b.QuantityMT,
		ContractPrice:  b.ContractPrice,
		Period:         b.Period,
		Instrument:     b.Instrument,
		Status:         b.Status,
	}
}

// CreateMarketPrice inserts a price observation for a symbol.
func CreateMarketPrice(t *testing.T, db *sql.DB, symbol string, price float64, asOf time.Time) model.MarketPrice {
	t.Helper()

	p := model.MarketPrice{
		ID:       MakeID(),
		Source:   "test",
		Symbol:   symbol,
		Price:    price,
		Currency: "USD",
		AsOf:     asOf,
	}

	query := `
		INSERT INTO market_price (id, source, symbol, price, currency, as_of)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, p.ID, p.Source, p.Symbol, p.Price, p.Currency, p.AsOf)
	if err != nil {
		t.Fatalf("Failed to create test market price: %v", err)
	}

	return p
}

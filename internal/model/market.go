package model

import "time"

// MarketPrice is one observed price for a symbol from a pricing source, e.g.
// the LME aluminium 3-month forward.
type MarketPrice struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	Symbol        string    `json:"symbol"`
	ContractMonth string    `json:"contractMonth"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	AsOf          time.Time `json:"asOf"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MTMRecord is one mark-to-market valuation of a hedge on a given date:
// (market price - contract price) * quantity, rounded to two decimal places.
type MTMRecord struct {
	ID          string    `json:"id"`
	AsOfDate    string    `json:"asOfDate"` // YYYY-MM-DD
	HedgeID     string    `json:"hedgeId"`
	MarketPrice float64   `json:"marketPrice"`
	MTMValue    float64   `json:"mtmValue"`
	ComputedAt  time.Time `json:"computedAt"`
}

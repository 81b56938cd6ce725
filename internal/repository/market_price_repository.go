package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
)

// MarketPriceRepository provides data access methods for the market_price table.
type MarketPriceRepository struct {
	db *sql.DB
}

// NewMarketPriceRepository creates a new MarketPriceRepository with the provided database connection.
func NewMarketPriceRepository(db *sql.DB) *MarketPriceRepository {
	return &MarketPriceRepository{db: db}
}

const marketPriceColumns = `id, source, symbol, contract_month, price, currency, as_of, created_at`

// GetPricesOnSymbol retrieves all recorded prices for a symbol, newest first.
func (r *MarketPriceRepository) GetPricesOnSymbol(symbol string) ([]model.MarketPrice, error) {
	rows, err := r.db.Query(
		`SELECT `+marketPriceColumns+` FROM market_price WHERE symbol = ? ORDER BY as_of DESC`,
		symbol,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query market_price table: %w", err)
	}
	defer rows.Close()

	prices := []model.MarketPrice{}

	for rows.Next() {
		p, err := scanMarketPrice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan market_price table results: %w", err)
		}
		prices = append(prices, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating market_price table: %w", err)
	}

	return prices, nil
}

// GetLatestPrice retrieves the most recent price for a symbol.
func (r *MarketPriceRepository) GetLatestPrice(symbol string) (model.MarketPrice, error) {
	row := r.db.QueryRow(
		`SELECT `+marketPriceColumns+` FROM market_price WHERE symbol = ? ORDER BY as_of DESC LIMIT 1`,
		symbol,
	)

	p, err := scanMarketPrice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.MarketPrice{}, apperrors.ErrMarketPriceNotFound
	}
	if err != nil {
		return model.MarketPrice{}, fmt.Errorf("failed to query market price: %w", err)
	}

	return p, nil
}

// UpsertPrice inserts a price observation, replacing any existing record for
// the same source, symbol and as-of time.
func (r *MarketPriceRepository) UpsertPrice(p model.MarketPrice) error {
	_, err := r.db.Exec(`
		INSERT INTO market_price (id, source, symbol, contract_month, price, currency, as_of)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source, symbol, as_of) DO UPDATE SET
			contract_month = excluded.contract_month,
			price = excluded.price,
			currency = excluded.currency`,
		p.ID, p.Source, p.Symbol, p.ContractMonth, p.Price, p.Currency, p.AsOf,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert market price: %w", err)
	}
	return nil
}

func scanMarketPrice(row interface{ Scan(...any) error }) (model.MarketPrice, error) {
	var p model.MarketPrice
	var contractMonth sql.NullString

	err := row.Scan(&p.ID, &p.Source, &p.Symbol, &contractMonth, &p.Price, &p.Currency, &p.AsOf, &p.CreatedAt)
	if err != nil {
		return model.MarketPrice{}, err
	}

	p.ContractMonth = contractMonth.String
	return p, nil
}

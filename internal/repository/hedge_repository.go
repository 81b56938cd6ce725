package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
)

// HedgeRepository provides data access methods for the hedge table.
type HedgeRepository struct {
	db *sql.DB
}

// NewHedgeRepository creates a new HedgeRepository with the provided database connection.
func NewHedgeRepository(db *sql.DB) *HedgeRepository {
	return &HedgeRepository{db: db}
}

const hedgeColumns = `id, counterparty_id, sales_order_id, quantity_mt, contract_price,
	period, instrument, maturity_date, status, created_at`

// GetHedges retrieves hedges based on filter criteria.
// Returns an empty slice if none match.
func (r *HedgeRepository) GetHedges(filter model.HedgeFilter) ([]model.Hedge, error) {
	query := `SELECT ` + hedgeColumns + ` FROM hedge WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.CounterpartyID != "" {
		query += " AND counterparty_id = ?"
		args = append(args, filter.CounterpartyID)
	}

	query += " ORDER BY created_at"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query hedge table: %w", err)
	}
	defer rows.Close()

	hedges := []model.Hedge{}

	for rows.Next() {
		h, err := scanHedge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hedge table results: %w", err)
		}
		hedges = append(hedges, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hedge table: %w", err)
	}

	return hedges, nil
}

// GetHedgeOnID retrieves a single hedge by ID.
func (r *HedgeRepository) GetHedgeOnID(id string) (model.Hedge, error) {
	row := r.db.QueryRow(`SELECT `+hedgeColumns+` FROM hedge WHERE id = ?`, id)

	h, err := scanHedge(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Hedge{}, apperrors.ErrHedgeNotFound
	}
	if err != nil {
		return model.Hedge{}, fmt.Errorf("failed to query hedge: %w", err)
	}

	return h, nil
}

// CreateHedge inserts a new hedge.
func (r *HedgeRepository) CreateHedge(h model.Hedge) error {
	_, err := r.db.Exec(`
		INSERT INTO hedge (id, counterparty_id, sales_order_id, quantity_mt, contract_price,
			period, instrument, maturity_date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.CounterpartyID, nullString(h.SalesOrderID), h.QuantityMT, h.ContractPrice,
		h.Period, h.Instrument, nullString(h.MaturityDate), string(h.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to insert hedge: %w", err)
	}
	return nil
}

// UpdateHedge updates an existing hedge's fields.
func (r *HedgeRepository) UpdateHedge(h model.Hedge) error {
	result, err := r.db.Exec(`
		UPDATE hedge
		SET counterparty_id = ?, sales_order_id = ?, quantity_mt = ?, contract_price = ?,
			period = ?, instrument = ?, maturity_date = ?, status = ?
		WHERE id = ?`,
		h.CounterpartyID, nullString(h.SalesOrderID), h.QuantityMT, h.ContractPrice,
		h.Period, h.Instrument, nullString(h.MaturityDate), string(h.Status), h.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update hedge: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHedgeNotFound
	}
	return nil
}

// DeleteHedge removes a hedge by ID.
func (r *HedgeRepository) DeleteHedge(id string) error {
	result, err := r.db.Exec(`DELETE FROM hedge WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hedge: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHedgeNotFound
	}
	return nil
}

func scanHedge(row interface{ Scan(...any) error }) (model.Hedge, error) {
	var h model.Hedge
	var salesOrderID, instrument, maturity sql.NullString
	var status string

	err := row.Scan(
		&h.ID, &h.CounterpartyID, &salesOrderID, &h.QuantityMT, &h.ContractPrice,
		&h.Period, &instrument, &maturity, &status, &h.CreatedAt,
	)
	if err != nil {
		return model.Hedge{}, err
	}

	h.SalesOrderID = salesOrderID.String
	h.Instrument = instrument.String
	h.MaturityDate = maturity.String
	h.Status = model.HedgeStatus(status)
	return h, nil
}

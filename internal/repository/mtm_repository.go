package repository

import (
	"database/sql"
	"fmt"

	"github.com/alcast/backoffice/internal/model"
)

// MTMRepository provides data access methods for the mtm_record table.
type MTMRepository struct {
	db *sql.DB
}

// NewMTMRepository creates a new MTMRepository with the provided database connection.
func NewMTMRepository(db *sql.DB) *MTMRepository {
	return &MTMRepository{db: db}
}

// InsertRecord stores one mark-to-market valuation.
func (r *MTMRepository) InsertRecord(rec model.MTMRecord) error {
	_, err := r.db.Exec(`
		INSERT INTO mtm_record (id, as_of_date, hedge_id, market_price, mtm_value)
		VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.AsOfDate, rec.HedgeID, rec.MarketPrice, rec.MTMValue,
	)
	if err != nil {
		return fmt.Errorf("failed to insert mtm record: %w", err)
	}
	return nil
}

// GetRecordsOnDate retrieves all mark-to-market records for a date (YYYY-MM-DD).
func (r *MTMRepository) GetRecordsOnDate(asOfDate string) ([]model.MTMRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, as_of_date, hedge_id, market_price, mtm_value, computed_at
		FROM mtm_record
		WHERE as_of_date = ?
		ORDER BY computed_at`,
		asOfDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query mtm_record table: %w", err)
	}
	defer rows.Close()

	records := []model.MTMRecord{}

	for rows.Next() {
		var rec model.MTMRecord

		err := rows.Scan(
			&rec.ID,
			&rec.AsOfDate,
			&rec.HedgeID,
			&rec.MarketPrice,
			&rec.MTMValue,
			&rec.ComputedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mtm_record table results: %w", err)
		}

		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mtm_record table: %w", err)
	}

	return records, nil
}

// DeleteRecordsOnDate removes all records for a date, used before a rerun so
// a snapshot stays one row per hedge per day.
func (r *MTMRepository) DeleteRecordsOnDate(asOfDate string) error {
	if _, err := r.db.Exec(`DELETE FROM mtm_record WHERE as_of_date = ?`, asOfDate); err != nil {
		return fmt.Errorf("failed to delete mtm records: %w", err)
	}
	return nil
}

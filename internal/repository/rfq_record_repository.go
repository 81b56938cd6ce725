package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
)

// RFQRecordRepository provides data access methods for the rfq_record table,
// the audit log of dispatched quotation requests.
type RFQRecordRepository struct {
	db *sql.DB
}

// NewRFQRecordRepository creates a new RFQRecordRepository with the provided database connection.
func NewRFQRecordRepository(db *sql.DB) *RFQRecordRepository {
	return &RFQRecordRepository{db: db}
}

const rfqRecordColumns = `id, rfq_number, company, message_text, channel, status, created_at`

// GetRecords retrieves all dispatched RFQs, newest first.
func (r *RFQRecordRepository) GetRecords() ([]model.RFQRecord, error) {
	rows, err := r.db.Query(`SELECT ` + rfqRecordColumns + ` FROM rfq_record ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rfq_record table: %w", err)
	}
	defer rows.Close()

	records := []model.RFQRecord{}

	for rows.Next() {
		rec, err := scanRFQRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rfq_record table results: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rfq_record table: %w", err)
	}

	return records, nil
}

// GetRecordOnID retrieves a single dispatched RFQ by ID.
func (r *RFQRecordRepository) GetRecordOnID(id string) (model.RFQRecord, error) {
	row := r.db.QueryRow(`SELECT `+rfqRecordColumns+` FROM rfq_record WHERE id = ?`, id)

	rec, err := scanRFQRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.RFQRecord{}, apperrors.ErrRFQRecordNotFound
	}
	if err != nil {
		return model.RFQRecord{}, fmt.Errorf("failed to query rfq record: %w", err)
	}

	return rec, nil
}

// CreateRecord inserts a dispatched RFQ.
func (r *RFQRecordRepository) CreateRecord(rec model.RFQRecord) error {
	_, err := r.db.Exec(`
		INSERT INTO rfq_record (id, rfq_number, company, message_text, channel, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.RFQNumber, rec.Company, rec.MessageText, string(rec.Channel), string(rec.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to insert rfq record: %w", err)
	}
	return nil
}

// CountRecordsWithPrefix returns how many RFQ numbers start with the given
// prefix, used to allocate the next sequence number within a year.
func (r *RFQRecordRepository) CountRecordsWithPrefix(prefix string) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM rfq_record WHERE rfq_number LIKE ?`,
		prefix+"%",
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rfq records: %w", err)
	}
	return count, nil
}

func scanRFQRecord(row interface{ Scan(...any) error }) (model.RFQRecord, error) {
	var rec model.RFQRecord
	var channel, status string

	err := row.Scan(&rec.ID, &rec.RFQNumber, &rec.Company, &rec.MessageText, &channel, &status, &rec.CreatedAt)
	if err != nil {
		return model.RFQRecord{}, err
	}

	rec.Channel = model.RFQChannel(channel)
	rec.Status = model.RFQStatus(status)
	return rec, nil
}

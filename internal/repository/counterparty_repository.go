package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
)

// CounterpartyRepository provides data access methods for the counterparty table.
type CounterpartyRepository struct {
	db *sql.DB
}

// NewCounterpartyRepository creates a new CounterpartyRepository with the provided database connection.
func NewCounterpartyRepository(db *sql.DB) *CounterpartyRepository {
	return &CounterpartyRepository{db: db}
}

const counterpartyColumns = `id, name, type, contact_name, contact_email, contact_phone, active, created_at`

// GetCounterparties retrieves counterparties based on filter criteria.
// Returns an empty slice if none match.
func (r *CounterpartyRepository) GetCounterparties(filter model.CounterpartyFilter) ([]model.Counterparty, error) {
	query := `SELECT ` + counterpartyColumns + ` FROM counterparty WHERE 1=1`
	var args []any

	if !filter.IncludeInactive {
		query += " AND active = ?"
		args = append(args, 1)
	}
	if filter.Type != "" {
		query += " AND type = ?"
		args = append(args, string(filter.Type))
	}

	query += " ORDER BY name"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query counterparty table: %w", err)
	}
	defer rows.Close()

	counterparties := []model.Counterparty{}

	for rows.Next() {
		c, err := scanCounterparty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan counterparty table results: %w", err)
		}
		counterparties = append(counterparties, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counterparty table: %w", err)
	}

	return counterparties, nil
}

// GetCounterpartyOnID retrieves a single counterparty by ID.
func (r *CounterpartyRepository) GetCounterpartyOnID(id string) (model.Counterparty, error) {
	row := r.db.QueryRow(`SELECT `+counterpartyColumns+` FROM counterparty WHERE id = ?`, id)

	c, err := scanCounterparty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Counterparty{}, apperrors.ErrCounterpartyNotFound
	}
	if err != nil {
		return model.Counterparty{}, fmt.Errorf("failed to query counterparty: %w", err)
	}

	return c, nil
}

// CreateCounterparty inserts a new counterparty.
func (r *CounterpartyRepository) CreateCounterparty(c model.Counterparty) error {
	_, err := r.db.Exec(`
		INSERT INTO counterparty (id, name, type, contact_name, contact_email, contact_phone, active)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, string(c.Type), c.ContactName, c.ContactEmail, c.ContactPhone, c.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to insert counterparty: %w", err)
	}
	return nil
}

// UpdateCounterparty updates an existing counterparty's fields.
func (r *CounterpartyRepository) UpdateCounterparty(c model.Counterparty) error {
	result, err := r.db.Exec(`
		UPDATE counterparty
		SET name = ?, type = ?, contact_name = ?, contact_email = ?, contact_phone = ?, active = ?
		WHERE id = ?`,
		c.Name, string(c.Type), c.ContactName, c.ContactEmail, c.ContactPhone, c.Active, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update counterparty: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCounterpartyNotFound
	}
	return nil
}

// DeleteCounterparty removes a counterparty by ID.
func (r *CounterpartyRepository) DeleteCounterparty(id string) error {
	result, err := r.db.Exec(`DELETE FROM counterparty WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete counterparty: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCounterpartyNotFound
	}
	return nil
}

func scanCounterparty(row interface{ Scan(...any) error }) (model.Counterparty, error) {
	var c model.Counterparty
	var ctype string
	var name, email, phone sql.NullString

	err := row.Scan(&c.ID, &c.Name, &ctype, &name, &email, &phone, &c.Active, &c.CreatedAt)
	if err != nil {
		return model.Counterparty{}, err
	}

	c.Type = model.CounterpartyType(ctype)
	c.ContactName = name.String
	c.ContactEmail = email.String
	c.ContactPhone = phone.String
	return c, nil
}

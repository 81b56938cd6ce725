package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
)

// SupplierRepository provides data access methods for the supplier table.
type SupplierRepository struct {
	db *sql.DB
}

// NewSupplierRepository creates a new SupplierRepository with the provided database connection.
func NewSupplierRepository(db *sql.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

const supplierColumns = `id, name, code, legal_name, tax_id, city, state,
	credit_limit, contact_email, contact_phone, active, created_at`

// GetSuppliers retrieves suppliers from the database based on filter criteria.
// Returns an empty slice if no suppliers match.
func (r *SupplierRepository) GetSuppliers(filter model.SupplierFilter) ([]model.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM supplier WHERE 1=1`
	var args []any

	if !filter.IncludeInactive {
		query += " AND active = ?"
		args = append(args, 1)
	}

	query += " ORDER BY name"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier table: %w", err)
	}
	defer rows.Close()

	suppliers := []model.Supplier{}

	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier table results: %w", err)
		}
		suppliers = append(suppliers, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier table: %w", err)
	}

	return suppliers, nil
}

// GetSupplierOnID retrieves a single supplier by ID.
func (r *SupplierRepository) GetSupplierOnID(id string) (model.Supplier, error) {
	row := r.db.QueryRow(`SELECT `+supplierColumns+` FROM supplier WHERE id = ?`, id)

	s, err := scanSupplier(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Supplier{}, apperrors.ErrSupplierNotFound
	}
	if err != nil {
		return model.Supplier{}, fmt.Errorf("failed to query supplier: %w", err)
	}

	return s, nil
}

// CreateSupplier inserts a new supplier.
func (r *SupplierRepository) CreateSupplier(s model.Supplier) error {
	_, err := r.db.Exec(`
		INSERT INTO supplier (id, name, code, legal_name, tax_id, city, state,
			credit_limit, contact_email, contact_phone, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Code, s.LegalName, s.TaxID, s.City, s.State,
		s.CreditLimit, s.ContactEmail, s.ContactPhone, s.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to insert supplier: %w", err)
	}
	return nil
}

// UpdateSupplier updates an existing supplier's fields.
func (r *SupplierRepository) UpdateSupplier(s model.Supplier) error {
	result, err := r.db.Exec(`
		UPDATE supplier
		SET name = ?, code = ?, legal_name = ?, tax_id = ?, city = ?, state = ?,
			credit_limit = ?, contact_email = ?, contact_phone = ?, active = ?
		WHERE id = ?`,
		s.Name, s.Code, s.LegalName, s.TaxID, s.City, s.State,
		s.CreditLimit, s.ContactEmail, s.ContactPhone, s.Active, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSupplierNotFound
	}
	return nil
}

// DeleteSupplier removes a supplier by ID.
func (r *SupplierRepository) DeleteSupplier(id string) error {
	result, err := r.db.Exec(`DELETE FROM supplier WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSupplierNotFound
	}
	return nil
}

func scanSupplier(row interface{ Scan(...any) error }) (model.Supplier, error) {
	var s model.Supplier
	var code, legalName, taxID, city, state, email, phone sql.NullString
	var creditLimit sql.NullFloat64

	err := row.Scan(
		&s.ID, &s.Name, &code, &legalName, &taxID, &city, &state,
		&creditLimit, &email, &phone, &s.Active, &s.CreatedAt,
	)
	if err != nil {
		return model.Supplier{}, err
	}

	s.Code = code.String
	s.LegalName = legalName.String
	s.TaxID = taxID.String
	s.City = city.String
	s.State = state.String
	s.CreditLimit = creditLimit.Float64
	s.ContactEmail = email.String
	s.ContactPhone = phone.String
	return s, nil
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
)

// CustomerRepository provides data access methods for the customer table.
type CustomerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new CustomerRepository with the provided database connection.
func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, name, code, legal_name, tax_id, city, state,
	credit_limit, contact_email, contact_phone, active, created_at`

// GetCustomers retrieves customers from the database based on filter criteria.
// Returns an empty slice if no customers match.
func (r *CustomerRepository) GetCustomers(filter model.CustomerFilter) ([]model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customer WHERE 1=1`
	var args []any

	if !filter.IncludeInactive {
		query += " AND active = ?"
		args = append(args, 1)
	}

	query += " ORDER BY name"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer table: %w", err)
	}
	defer rows.Close()

	customers := []model.Customer{}

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer table results: %w", err)
		}
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer table: %w", err)
	}

	return customers, nil
}

// GetCustomerOnID retrieves a single customer by ID.
func (r *CustomerRepository) GetCustomerOnID(id string) (model.Customer, error) {
	row := r.db.QueryRow(`SELECT `+customerColumns+` FROM customer WHERE id = ?`, id)

	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Customer{}, apperrors.ErrCustomerNotFound
	}
	if err != nil {
		return model.Customer{}, fmt.Errorf("failed to query customer: %w", err)
	}

	return c, nil
}

// CreateCustomer inserts a new customer.
func (r *CustomerRepository) CreateCustomer(c model.Customer) error {
	_, err := r.db.Exec(`
		INSERT INTO customer (id, name, code, legal_name, tax_id, city, state,
			credit_limit, contact_email, contact_phone, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Code, c.LegalName, c.TaxID, c.City, c.State,
		c.CreditLimit, c.ContactEmail, c.ContactPhone, c.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

// UpdateCustomer updates an existing customer's fields.
func (r *CustomerRepository) UpdateCustomer(c model.Customer) error {
	result, err := r.db.Exec(`
		UPDATE customer
		SET name = ?, code = ?, legal_name = ?, tax_id = ?, city = ?, state = ?,
			credit_limit = ?, contact_email = ?, contact_phone = ?, active = ?
		WHERE id = ?`,
		c.Name, c.Code, c.LegalName, c.TaxID, c.City, c.State,
		c.CreditLimit, c.ContactEmail, c.ContactPhone, c.Active, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCustomerNotFound
	}
	return nil
}

// DeleteCustomer removes a customer by ID.
func (r *CustomerRepository) DeleteCustomer(id string) error {
	result, err := r.db.Exec(`DELETE FROM customer WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCustomerNotFound
	}
	return nil
}

func scanCustomer(row interface{ Scan(...any) error }) (model.Customer, error) {
	var c model.Customer
	var code, legalName, taxID, city, state, email, phone sql.NullString
	var creditLimit sql.NullFloat64

	err := row.Scan(
		&c.ID, &c.Name, &code, &legalName, &taxID, &city, &state,
		&creditLimit, &email, &phone, &c.Active, &c.CreatedAt,
	)
	if err != nil {
		return model.Customer{}, err
	}

	c.Code = code.String
	c.LegalName = legalName.String
	c.TaxID = taxID.String
	c.City = city.String
	c.State = state.String
	c.CreditLimit = creditLimit.Float64
	c.ContactEmail = email.String
	c.ContactPhone = phone.String
	return c, nil
}

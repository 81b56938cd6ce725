package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
)

// SalesOrderRepository provides data access methods for the sales_order table.
type SalesOrderRepository struct {
	db *sql.DB
}

// NewSalesOrderRepository creates a new SalesOrderRepository with the provided database connection.
func NewSalesOrderRepository(db *sql.DB) *SalesOrderRepository {
	return &SalesOrderRepository{db: db}
}

const salesOrderColumns = `id, so_number, customer_id, product, quantity_mt, unit_price,
	pricing_type, pricing_period, premium, expected_delivery, location, status, notes, created_at`

// GetSalesOrders retrieves sales orders based on filter criteria.
// Returns an empty slice if none match.
func (r *SalesOrderRepository) GetSalesOrders(filter model.OrderFilter) ([]model.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_order WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.PartyID != "" {
		query += " AND customer_id = ?"
		args = append(args, filter.PartyID)
	}

	query += " ORDER BY so_number"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales_order table: %w", err)
	}
	defer rows.Close()

	orders := []model.SalesOrder{}

	for rows.Next() {
		o, err := scanSalesOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales_order table results: %w", err)
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales_order table: %w", err)
	}

	return orders, nil
}

// GetSalesOrderOnID retrieves a single sales order by ID.
func (r *SalesOrderRepository) GetSalesOrderOnID(id string) (model.SalesOrder, error) {
	row := r.db.QueryRow(`SELECT `+salesOrderColumns+` FROM sales_order WHERE id = ?`, id)

	o, err := scanSalesOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SalesOrder{}, apperrors.ErrSalesOrderNotFound
	}
	if err != nil {
		return model.SalesOrder{}, fmt.Errorf("failed to query sales order: %w", err)
	}

	return o, nil
}

// CreateSalesOrder inserts a new sales order.
func (r *SalesOrderRepository) CreateSalesOrder(o model.SalesOrder) error {
	_, err := r.db.Exec(`
		INSERT INTO sales_order (id, so_number, customer_id, product, quantity_mt, unit_price,
			pricing_type, pricing_period, premium, expected_delivery, location, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.SONumber, o.CustomerID, o.Product, o.QuantityMT, o.UnitPrice,
		string(o.PricingType), o.PricingPeriod, o.Premium, nullString(o.ExpectedDelivery),
		o.Location, string(o.Status), o.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sales order: %w", err)
	}
	return nil
}

// UpdateSalesOrder updates an existing sales order's fields.
func (r *SalesOrderRepository) UpdateSalesOrder(o model.SalesOrder) error {
	result, err := r.db.Exec(`
		UPDATE sales_order
		SET so_number = ?, customer_id = ?, product = ?, quantity_mt = ?, unit_price = ?,
			pricing_type = ?, pricing_period = ?, premium = ?, expected_delivery = ?,
			location = ?, status = ?, notes = ?
		WHERE id = ?`,
		o.SONumber, o.CustomerID, o.Product, o.QuantityMT, o.UnitPrice,
		string(o.PricingType), o.PricingPeriod, o.Premium, nullString(o.ExpectedDelivery),
		o.Location, string(o.Status), o.Notes, o.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update sales order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSalesOrderNotFound
	}
	return nil
}

// DeleteSalesOrder removes a sales order by ID.
func (r *SalesOrderRepository) DeleteSalesOrder(id string) error {
	result, err := r.db.Exec(`DELETE FROM sales_order WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sales order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSalesOrderNotFound
	}
	return nil
}

func scanSalesOrder(row interface{ Scan(...any) error }) (model.SalesOrder, error) {
	var o model.SalesOrder
	var product, period, delivery, location, notes sql.NullString
	var unitPrice, premium sql.NullFloat64
	var pricingType, status string

	err := row.Scan(
		&o.ID, &o.SONumber, &o.CustomerID, &product, &o.QuantityMT, &unitPrice,
		&pricingType, &period, &premium, &delivery, &location, &status, &notes, &o.CreatedAt,
	)
	if err != nil {
		return model.SalesOrder{}, err
	}

	o.Product = product.String
	o.UnitPrice = unitPrice.Float64
	o.PricingType = model.PricingType(pricingType)
	o.PricingPeriod = period.String
	o.Premium = premium.Float64
	o.ExpectedDelivery = delivery.String
	o.Location = location.String
	o.Status = model.OrderStatus(status)
	o.Notes = notes.String
	return o, nil
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
)

// PurchaseOrderRepository provides data access methods for the purchase_order table.
type PurchaseOrderRepository struct {
	db *sql.DB
}

// NewPurchaseOrderRepository creates a new PurchaseOrderRepository with the provided database connection.
func NewPurchaseOrderRepository(db *sql.DB) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{db: db}
}

const purchaseOrderColumns = `id, po_number, supplier_id, product, quantity_mt, unit_price,
	pricing_type, pricing_period, premium, expected_delivery, location, status, notes, created_at`

// GetPurchaseOrders retrieves purchase orders based on filter criteria.
// Returns an empty slice if none match.
func (r *PurchaseOrderRepository) GetPurchaseOrders(filter model.OrderFilter) ([]model.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_order WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.PartyID != "" {
		query += " AND supplier_id = ?"
		args = append(args, filter.PartyID)
	}

	query += " ORDER BY po_number"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase_order table: %w", err)
	}
	defer rows.Close()

	orders := []model.PurchaseOrder{}

	for rows.Next() {
		o, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase_order table results: %w", err)
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase_order table: %w", err)
	}

	return orders, nil
}

// GetPurchaseOrderOnID retrieves a single purchase order by ID.
func (r *PurchaseOrderRepository) GetPurchaseOrderOnID(id string) (model.PurchaseOrder, error) {
	row := r.db.QueryRow(`SELECT `+purchaseOrderColumns+` FROM purchase_order WHERE id = ?`, id)

	o, err := scanPurchaseOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PurchaseOrder{}, apperrors.ErrPurchaseOrderNotFound
	}
	if err != nil {
		return model.PurchaseOrder{}, fmt.Errorf("failed to query purchase order: %w", err)
	}

	return o, nil
}

// CreatePurchaseOrder inserts a new purchase order.
func (r *PurchaseOrderRepository) CreatePurchaseOrder(o model.PurchaseOrder) error {
	_, err := r.db.Exec(`
		INSERT INTO purchase_order (id, po_number, supplier_id, product, quantity_mt, unit_price,
			pricing_type, pricing_period, premium, expected_delivery, location, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.PONumber, o.SupplierID, o.Product, o.QuantityMT, o.UnitPrice,
		string(o.PricingType), o.PricingPeriod, o.Premium, nullString(o.ExpectedDelivery),
		o.Location, string(o.Status), o.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert purchase order: %w", err)
	}
	return nil
}

// UpdatePurchaseOrder updates an existing purchase order's fields.
func (r *PurchaseOrderRepository) UpdatePurchaseOrder(o model.PurchaseOrder) error {
	result, err := r.db.Exec(`
		UPDATE purchase_order
		SET po_number = ?, supplier_id = ?, product = ?, quantity_mt = ?, unit_price = ?,
			pricing_type = ?, pricing_period = ?, premium = ?, expected_delivery = ?,
			location = ?, status = ?, notes = ?
		WHERE id = ?`,
		o.PONumber, o.SupplierID, o.Product, o.QuantityMT, o.UnitPrice,
		string(o.PricingType), o.PricingPeriod, o.Premium, nullString(o.ExpectedDelivery),
		o.Location, string(o.Status), o.Notes, o.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPurchaseOrderNotFound
	}
	return nil
}

// DeletePurchaseOrder removes a purchase order by ID.
func (r *PurchaseOrderRepository) DeletePurchaseOrder(id string) error {
	result, err := r.db.Exec(`DELETE FROM purchase_order WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete purchase order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPurchaseOrderNotFound
	}
	return nil
}

func scanPurchaseOrder(row interface{ Scan(...any) error }) (model.PurchaseOrder, error) {
	var o model.PurchaseOrder
	var product, period, delivery, location, notes sql.NullString
	var unitPrice, premium sql.NullFloat64
	var pricingType, status string

	err := row.Scan(
		&o.ID, &o.PONumber, &o.SupplierID, &product, &o.QuantityMT, &unitPrice,
		&pricingType, &period, &premium, &delivery, &location, &status, &notes, &o.CreatedAt,
	)
	if err != nil {
		return model.PurchaseOrder{}, err
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

// nullString maps an empty string onto SQL NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
)

// LocationRepository provides data access methods for the warehouse_location table.
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new LocationRepository with the provided database connection.
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

const locationColumns = `id, name, type, current_stock_mt, capacity_mt, active, created_at`

// GetLocations retrieves warehouse locations based on filter criteria.
// Returns an empty slice if none match.
func (r *LocationRepository) GetLocations(filter model.LocationFilter) ([]model.WarehouseLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM warehouse_location WHERE 1=1`
	var args []any

	if !filter.IncludeInactive {
		query += " AND active = ?"
		args = append(args, 1)
	}

	query += " ORDER BY name"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouse_location table: %w", err)
	}
	defer rows.Close()

	locations := []model.WarehouseLocation{}

	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan warehouse_location table results: %w", err)
		}
		locations = append(locations, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating warehouse_location table: %w", err)
	}

	return locations, nil
}

// GetLocationOnID retrieves a single warehouse location by ID.
func (r *LocationRepository) GetLocationOnID(id string) (model.WarehouseLocation, error) {
	row := r.db.QueryRow(`SELECT `+locationColumns+` FROM warehouse_location WHERE id = ?`, id)

	l, err := scanLocation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.WarehouseLocation{}, apperrors.ErrLocationNotFound
	}
	if err != nil {
		return model.WarehouseLocation{}, fmt.Errorf("failed to query warehouse location: %w", err)
	}

	return l, nil
}

// CreateLocation inserts a new warehouse location.
func (r *LocationRepository) CreateLocation(l model.WarehouseLocation) error {
	_, err := r.db.Exec(`
		INSERT INTO warehouse_location (id, name, type, current_stock_mt, capacity_mt, active)
		VALUES (?, ?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.Type, l.CurrentStockMT, l.CapacityMT, l.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to insert warehouse location: %w", err)
	}
	return nil
}

// UpdateLocation updates an existing warehouse location's fields.
func (r *LocationRepository) UpdateLocation(l model.WarehouseLocation) error {
	result, err := r.db.Exec(`
		UPDATE warehouse_location
		SET name = ?, type = ?, current_stock_mt = ?, capacity_mt = ?, active = ?
		WHERE id = ?`,
		l.Name, l.Type, l.CurrentStockMT, l.CapacityMT, l.Active, l.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update warehouse location: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrLocationNotFound
	}
	return nil
}

// DeleteLocation removes a warehouse location by ID.
func (r *LocationRepository) DeleteLocation(id string) error {
	result, err := r.db.Exec(`DELETE FROM warehouse_location WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete warehouse location: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrLocationNotFound
	}
	return nil
}

func scanLocation(row interface{ Scan(...any) error }) (model.WarehouseLocation, error) {
	var l model.WarehouseLocation
	var ltype sql.NullString
	var capacity sql.NullFloat64

	err := row.Scan(&l.ID, &l.Name, &ltype, &l.CurrentStockMT, &capacity, &l.Active, &l.CreatedAt)
	if err != nil {
		return model.WarehouseLocation{}, err
	}

	l.Type = ltype.String
	l.CapacityMT = capacity.Float64
	return l, nil
}

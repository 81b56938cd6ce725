package service

import (
	"github.com/google/uuid"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/repository"
)

// LocationService handles warehouse-location business logic operations.
type LocationService struct {
	locationRepo *repository.LocationRepository
}

// NewLocationService creates a new LocationService with the provided repository.
func NewLocationService(locationRepo *repository.LocationRepository) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

// GetLocations retrieves warehouse locations matching the filter.
func (s *LocationService) GetLocations(filter model.LocationFilter) ([]model.WarehouseLocation, error) {
	return s.locationRepo.GetLocations(filter)
}

// GetLocation retrieves one warehouse location by ID.
func (s *LocationService) GetLocation(id string) (model.WarehouseLocation, error) {
	return s.locationRepo.GetLocationOnID(id)
}

// CreateLocation stores a new warehouse location and returns it with its assigned ID.
// A capacity of zero means unbounded; otherwise stock may not exceed capacity.
func (s *LocationService) CreateLocation(l model.WarehouseLocation) (model.WarehouseLocation, error) {
	if l.CapacityMT > 0 && l.CurrentStockMT > l.CapacityMT {
		return model.WarehouseLocation{}, apperrors.ErrStockExceedsCapacity
	}

	l.ID = uuid.NewString()
	l.Active = true

	if err := s.locationRepo.CreateLocation(l); err != nil {
		return model.WarehouseLocation{}, err
	}
	return s.locationRepo.GetLocationOnID(l.ID)
}

// UpdateLocation replaces a warehouse location's fields, enforcing the
// capacity rule.
func (s *LocationService) UpdateLocation(l model.WarehouseLocation) (model.WarehouseLocation, error) {
	if l.CapacityMT > 0 && l.CurrentStockMT > l.CapacityMT {
		return model.WarehouseLocation{}, apperrors.ErrStockExceedsCapacity
	}

	if err := s.locationRepo.UpdateLocation(l); err != nil {
		return model.WarehouseLocation{}, err
	}
	return s.locationRepo.GetLocationOnID(l.ID)
}

// DeleteLocation removes a warehouse location by ID.
func (s *LocationService) DeleteLocation(id string) error {
	return s.locationRepo.DeleteLocation(id)
}

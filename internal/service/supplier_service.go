package service

import (
	"github.com/google/uuid"

	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/repository"
)

// SupplierService handles supplier-related business logic operations.
type SupplierService struct {
	supplierRepo *repository.SupplierRepository
}

// NewSupplierService creates a new SupplierService with the provided repository.
func NewSupplierService(supplierRepo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// GetSuppliers retrieves suppliers matching the filter.
func (s *SupplierService) GetSuppliers(filter model.SupplierFilter) ([]model.Supplier, error) {
	return s.supplierRepo.GetSuppliers(filter)
}

// GetSupplier retrieves one supplier by ID.
func (s *SupplierService) GetSupplier(id string) (model.Supplier, error) {
	return s.supplierRepo.GetSupplierOnID(id)
}

// CreateSupplier stores a new supplier and returns it with its assigned ID.
func (s *SupplierService) CreateSupplier(supplier model.Supplier) (model.Supplier, error) {
	supplier.ID = uuid.NewString()
	supplier.Active = true

	if err := s.supplierRepo.CreateSupplier(supplier); err != nil {
		return model.Supplier{}, err
	}
	return s.supplierRepo.GetSupplierOnID(supplier.ID)
}

// UpdateSupplier replaces a supplier's fields and returns the stored result.
func (s *SupplierService) UpdateSupplier(supplier model.Supplier) (model.Supplier, error) {
	if err := s.supplierRepo.UpdateSupplier(supplier); err != nil {
		return model.Supplier{}, err
	}
	return s.supplierRepo.GetSupplierOnID(supplier.ID)
}

// DeleteSupplier removes a supplier by ID.
func (s *SupplierService) DeleteSupplier(id string) error {
	return s.supplierRepo.DeleteSupplier(id)
}

package service

import (
	"github.com/google/uuid"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/repository"
)

// PurchaseOrderService handles purchase-order business logic operations.
type PurchaseOrderService struct {
	poRepo       *repository.PurchaseOrderRepository
	supplierRepo *repository.SupplierRepository
}

// NewPurchaseOrderService creates a new PurchaseOrderService with the provided repositories.
func NewPurchaseOrderService(
	poRepo *repository.PurchaseOrderRepository,
	supplierRepo *repository.SupplierRepository,
) *PurchaseOrderService {
	return &PurchaseOrderService{poRepo: poRepo, supplierRepo: supplierRepo}
}

// GetPurchaseOrders retrieves purchase orders matching the filter.
func (s *PurchaseOrderService) GetPurchaseOrders(filter model.OrderFilter) ([]model.PurchaseOrder, error) {
	return s.poRepo.GetPurchaseOrders(filter)
}

// GetPurchaseOrder retrieves one purchase order by ID.
func (s *PurchaseOrderService) GetPurchaseOrder(id string) (model.PurchaseOrder, error) {
	return s.poRepo.GetPurchaseOrderOnID(id)
}

// CreatePurchaseOrder stores a new purchase order after checking the supplier exists.
// New orders start in draft unless a status is given.
func (s *PurchaseOrderService) CreatePurchaseOrder(o model.PurchaseOrder) (model.PurchaseOrder, error) {
	if _, err := s.supplierRepo.GetSupplierOnID(o.SupplierID); err != nil {
		return model.PurchaseOrder{}, err
	}

	o.ID = uuid.NewString()
	if o.Status == "" {
		o.Status = model.OrderDraft
	}

	if err := s.poRepo.CreatePurchaseOrder(o); err != nil {
		return model.PurchaseOrder{}, err
	}
	return s.poRepo.GetPurchaseOrderOnID(o.ID)
}

// UpdatePurchaseOrder replaces a purchase order's fields. Orders in a terminal
// status (completed, cancelled) can no longer be changed.
func (s *PurchaseOrderService) UpdatePurchaseOrder(o model.PurchaseOrder) (model.PurchaseOrder, error) {
	current, err := s.poRepo.GetPurchaseOrderOnID(o.ID)
	if err != nil {
		return model.PurchaseOrder{}, err
	}
	if current.Status.Final() {
		return model.PurchaseOrder{}, apperrors.ErrOrderStatusFinal
	}

	if err := s.poRepo.UpdatePurchaseOrder(o); err != nil {
		return model.PurchaseOrder{}, err
	}
	return s.poRepo.GetPurchaseOrderOnID(o.ID)
}

// DeletePurchaseOrder removes a purchase order by ID.
func (s *PurchaseOrderService) DeletePurchaseOrder(id string) error {
	return s.poRepo.DeletePurchaseOrder(id)
}

// SalesOrderService handles sales-order business logic operations.
type SalesOrderService struct {
	soRepo       *repository.SalesOrderRepository
	customerRepo *repository.CustomerRepository
}

// NewSalesOrderService creates a new SalesOrderService with the provided repositories.
func NewSalesOrderService(
	soRepo *repository.SalesOrderRepository,
	customerRepo *repository.CustomerRepository,
) *SalesOrderService {
	return &SalesOrderService{soRepo: soRepo, customerRepo: customerRepo}
}

// GetSalesOrders retrieves sales orders matching the filter.
func (s *SalesOrderService) GetSalesOrders(filter model.OrderFilter) ([]model.SalesOrder, error) {
	return s.soRepo.GetSalesOrders(filter)
}

// GetSalesOrder retrieves one sales order by ID.
func (s *SalesOrderService) GetSalesOrder(id string) (model.SalesOrder, error) {
	return s.soRepo.GetSalesOrderOnID(id)
}

// CreateSalesOrder stores a new sales order after checking the customer exists.
// New orders start in draft unless a status is given.
func (s *SalesOrderService) CreateSalesOrder(o model.SalesOrder) (model.SalesOrder, error) {
	if _, err := s.customerRepo.GetCustomerOnID(o.CustomerID); err != nil {
		return model.SalesOrder{}, err
	}

	o.ID = uuid.NewString()
	if o.Status == "" {
		o.Status = model.OrderDraft
	}

	if err := s.soRepo.CreateSalesOrder(o); err != nil {
		return model.SalesOrder{}, err
	}
	return s.soRepo.GetSalesOrderOnID(o.ID)
}

// UpdateSalesOrder replaces a sales order's fields. Orders in a terminal
// status (completed, cancelled) can no longer be changed.
func (s *SalesOrderService) UpdateSalesOrder(o model.SalesOrder) (model.SalesOrder, error) {
	current, err := s.soRepo.GetSalesOrderOnID(o.ID)
	if err != nil {
		return model.SalesOrder{}, err
	}
	if current.Status.Final() {
		return model.SalesOrder{}, apperrors.ErrOrderStatusFinal
	}

	if err := s.soRepo.UpdateSalesOrder(o); err != nil {
		return model.SalesOrder{}, err
	}
	return s.soRepo.GetSalesOrderOnID(o.ID)
}

// DeleteSalesOrder removes a sales order by ID.
func (s *SalesOrderService) DeleteSalesOrder(id string) error {
	return s.soRepo.DeleteSalesOrder(id)
}

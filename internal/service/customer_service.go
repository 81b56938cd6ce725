package service

import (
	"github.com/google/uuid"

	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/repository"
)

// CustomerService handles customer-related business logic operations.
type CustomerService struct {
	customerRepo *repository.CustomerRepository
}

// NewCustomerService creates a new CustomerService with the provided repository.
func NewCustomerService(customerRepo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// GetCustomers retrieves customers matching the filter.
func (s *CustomerService) GetCustomers(filter model.CustomerFilter) ([]model.Customer, error) {
	return s.customerRepo.GetCustomers(filter)
}

// GetCustomer retrieves one customer by ID.
func (s *CustomerService) GetCustomer(id string) (model.Customer, error) {
	return s.customerRepo.GetCustomerOnID(id)
}

// CreateCustomer stores a new customer and returns it with its assigned ID.
func (s *CustomerService) CreateCustomer(customer model.Customer) (model.Customer, error) {
	customer.ID = uuid.NewString()
	customer.Active = true

	if err := s.customerRepo.CreateCustomer(customer); err != nil {
		return model.Customer{}, err
	}
	return s.customerRepo.GetCustomerOnID(customer.ID)
}

// UpdateCustomer replaces a customer's fields and returns the stored result.
func (s *CustomerService) UpdateCustomer(customer model.Customer) (model.Customer, error) {
	if err := s.customerRepo.UpdateCustomer(customer); err != nil {
		return model.Customer{}, err
	}
	return s.customerRepo.GetCustomerOnID(customer.ID)
}

// DeleteCustomer removes a customer by ID.
func (s *CustomerService) DeleteCustomer(id string) error {
	return s.customerRepo.DeleteCustomer(id)
}

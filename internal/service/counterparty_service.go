package service

import (
	"github.com/google/uuid"

	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/repository"
)

// CounterpartyService handles counterparty-related business logic operations.
type CounterpartyService struct {
	counterpartyRepo *repository.CounterpartyRepository
}

// NewCounterpartyService creates a new CounterpartyService with the provided repository.
func NewCounterpartyService(counterpartyRepo *repository.CounterpartyRepository) *CounterpartyService {
	return &CounterpartyService{counterpartyRepo: counterpartyRepo}
}

// GetCounterparties retrieves counterparties matching the filter.
func (s *CounterpartyService) GetCounterparties(filter model.CounterpartyFilter) ([]model.Counterparty, error) {
	return s.counterpartyRepo.GetCounterparties(filter)
}

// GetCounterparty retrieves one counterparty by ID.
func (s *CounterpartyService) GetCounterparty(id string) (model.Counterparty, error) {
	return s.counterpartyRepo.GetCounterpartyOnID(id)
}

// CreateCounterparty stores a new counterparty and returns it with its assigned ID.
func (s *CounterpartyService) CreateCounterparty(cp model.Counterparty) (model.Counterparty, error) {
	cp.ID = uuid.NewString()
	cp.Active = true

	if err := s.counterpartyRepo.CreateCounterparty(cp); err != nil {
		return model.Counterparty{}, err
	}
	return s.counterpartyRepo.GetCounterpartyOnID(cp.ID)
}

// UpdateCounterparty replaces a counterparty's fields and returns the stored result.
func (s *CounterpartyService) UpdateCounterparty(cp model.Counterparty) (model.Counterparty, error) {
	if err := s.counterpartyRepo.UpdateCounterparty(cp); err != nil {
		return model.Counterparty{}, err
	}
	return s.counterpartyRepo.GetCounterpartyOnID(cp.ID)
}

// DeleteCounterparty removes a counterparty by ID.
func (s *CounterpartyService) DeleteCounterparty(id string) error {
	return s.counterpartyRepo.DeleteCounterparty(id)
}

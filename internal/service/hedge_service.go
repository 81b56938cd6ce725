package service

import (
	"github.com/google/uuid"

	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/repository"
)

// HedgeService handles hedge-book business logic operations.
type HedgeService struct {
	hedgeRepo        *repository.HedgeRepository
	counterpartyRepo *repository.CounterpartyRepository
}

// NewHedgeService creates a new HedgeService with the provided repositories.
func NewHedgeService(
	hedgeRepo *repository.HedgeRepository,
	counterpartyRepo *repository.CounterpartyRepository,
) *HedgeService {
	return &HedgeService{hedgeRepo: hedgeRepo, counterpartyRepo: counterpartyRepo}
}

// GetHedges retrieves hedges matching the filter.
func (s *HedgeService) GetHedges(filter model.HedgeFilter) ([]model.Hedge, error) {
	return s.hedgeRepo.GetHedges(filter)
}

// GetHedge retrieves one hedge by ID.
func (s *HedgeService) GetHedge(id string) (model.Hedge, error) {
	return s.hedgeRepo.GetHedgeOnID(id)
}

// CreateHedge stores a new hedge after checking the counterparty exists.
// New hedges start active unless a status is given.
func (s *HedgeService) CreateHedge(h model.Hedge) (model.Hedge, error) {
	if _, err := s.counterpartyRepo.GetCounterpartyOnID(h.CounterpartyID); err != nil {
		return model.Hedge{}, err
	}

	h.ID = uuid.NewString()
	if h.Status == "" {
		h.Status = model.HedgeActive
	}

	if err := s.hedgeRepo.CreateHedge(h); err != nil {
		return model.Hedge{}, err
	}
	return s.hedgeRepo.GetHedgeOnID(h.ID)
}

// UpdateHedge replaces a hedge's fields and returns the stored result.
func (s *HedgeService) UpdateHedge(h model.Hedge) (model.Hedge, error) {
	if err := s.hedgeRepo.UpdateHedge(h); err != nil {
		return model.Hedge{}, err
	}
	return s.hedgeRepo.GetHedgeOnID(h.ID)
}

// DeleteHedge removes a hedge by ID.
func (s *HedgeService) DeleteHedge(id string) error {
	return s.hedgeRepo.DeleteHedge(id)
}

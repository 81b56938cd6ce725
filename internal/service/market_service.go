package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/repository"
)

// DefaultPriceSymbol is the reference contract used to value hedges that do
// not name their own instrument: LME aluminium three-month forward.
const DefaultPriceSymbol = "LME-AL-3M"

// MarketService handles market prices and mark-to-market snapshots over the
// hedge book.
type MarketService struct {
	priceRepo *repository.MarketPriceRepository
	mtmRepo   *repository.MTMRepository
	hedgeRepo *repository.HedgeRepository
}

// NewMarketService creates a new MarketService with the provided repositories.
func NewMarketService(
	priceRepo *repository.MarketPriceRepository,
	mtmRepo *repository.MTMRepository,
	hedgeRepo *repository.HedgeRepository,
) *MarketService {
	return &MarketService{
		priceRepo: priceRepo,
		mtmRepo:   mtmRepo,
		hedgeRepo: hedgeRepo,
	}
}

// GetPrices retrieves all recorded prices for a symbol, newest first.
func (s *MarketService) GetPrices(symbol string) ([]model.MarketPrice, error) {
	return s.priceRepo.GetPricesOnSymbol(symbol)
}

// GetLatestPrice retrieves the most recent price for a symbol.
func (s *MarketService) GetLatestPrice(symbol string) (model.MarketPrice, error) {
	return s.priceRepo.GetLatestPrice(symbol)
}

// RecordPrice stores a price observation.
func (s *MarketService) RecordPrice(p model.MarketPrice) (model.MarketPrice, error) {
	p.ID = uuid.NewString()
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.AsOf.IsZero() {
		p.AsOf = time.Now().UTC()
	}

	if err := s.priceRepo.UpsertPrice(p); err != nil {
		return model.MarketPrice{}, err
	}
	return p, nil
}

// GetMTMRecords retrieves the mark-to-market snapshot for a date (YYYY-MM-DD).
func (s *MarketService) GetMTMRecords(asOfDate string) ([]model.MTMRecord, error) {
	return s.mtmRepo.GetRecordsOnDate(asOfDate)
}

// RunMTMSnapshot values every active hedge against the latest market price and
// stores one record per hedge for the given date, replacing any earlier run
// for that date. Hedges whose instrument has no recorded price are skipped.
//
// mtm = (market price - contract price) * quantity, computed in decimal
// arithmetic and rounded to two places.
func (s *MarketService) RunMTMSnapshot(ctx context.Context, asOf time.Time) ([]model.MTMRecord, error) {
	hedges, err := s.hedgeRepo.GetHedges(model.HedgeFilter{Status: model.HedgeActive})
	if err != nil {
		return nil, err
	}

	asOfDate := asOf.Format("2006-01-02")
	if err := s.mtmRepo.DeleteRecordsOnDate(asOfDate); err != nil {
		return nil, err
	}

	results := make([]*model.MTMRecord, len(hedges))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, h := range hedges {
		g.Go(func() error {
			symbol := h.Instrument
			if symbol == "" {
				symbol = DefaultPriceSymbol
			}

			price, err := s.priceRepo.GetLatestPrice(symbol)
			if errors.Is(err, apperrors.ErrMarketPriceNotFound) {
				return nil
			}
			if err != nil {
				return err
			}

			mtm := decimal.NewFromFloat(price.Price).
				Sub(decimal.NewFromFloat(h.ContractPrice)).
				Mul(decimal.NewFromFloat(h.QuantityMT)).
				Round(2)

			results[i] = &model.MTMRecord{
				ID:          uuid.NewString(),
				AsOfDate:    asOfDate,
				HedgeID:     h.ID,
				MarketPrice: price.Price,
				MTMValue:    mtm.InexactFloat64(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Writes stay on one connection; sqlite serializes them anyway.
	records := []model.MTMRecord{}
	for _, rec := range results {
		if rec == nil {
			continue
		}
		if err := s.mtmRepo.InsertRecord(*rec); err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	return records, nil
}

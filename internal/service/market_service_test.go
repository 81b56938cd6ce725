package service

import (
	"context"
	"testing"
	"time"

	"github.com/alcast/backoffice/internal/repository"
	"github.com/alcast/backoffice/internal/testutil"
)

func TestRunMTMSnapshot(t *testing.T) {
	asOf := time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)

	t.Run("values active hedges against the latest price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewMarketService(
			repository.NewMarketPriceRepository(db),
			repository.NewMTMRepository(db),
			repository.NewHedgeRepository(db),
		)

		cp := testutil.NewCounterparty().Build(t, db)
		hedge := testutil.NewHedge(cp.ID).
			WithQuantity(500).
			WithContractPrice(2400).
			WithInstrument("LME-AL-3M").
			Build(t, db)

		testutil.CreateMarketPrice(t, db, "LME-AL-3M", 2450, asOf.Add(-48*time.Hour))
		testutil.CreateMarketPrice(t, db, "LME-AL-3M", 2500, asOf.Add(-time.Hour))

		records, err := svc.RunMTMSnapshot(context.Background(), asOf)
		if err != nil {
			t.Fatalf("RunMTMSnapshot failed: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("Expected 1 record, got %d", len(records))
		}

		rec := records[0]
		if rec.HedgeID != hedge.ID {
			t.Errorf("Expected hedge %s, got %s", hedge.ID, rec.HedgeID)
		}
		if rec.AsOfDate != "2026-08-31" {
			t.Errorf("Expected as-of date 2026-08-31, got %s", rec.AsOfDate)
		}
		if rec.MarketPrice != 2500 {
			t.Errorf("Expected latest price 2500, got %v", rec.MarketPrice)
		}
		// (2500 - 2400) * 500
		if rec.MTMValue != 50000 {
			t.Errorf("Expected mtm value 50000, got %v", rec.MTMValue)
		}

		stored, err := svc.GetMTMRecords("2026-08-31")
		if err != nil {
			t.Fatalf("GetMTMRecords failed: %v", err)
		}
		if len(stored) != 1 {
			t.Errorf("Expected 1 stored record, got %d", len(stored))
		}
	})

	t.Run("skips closed hedges", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewMarketService(
			repository.NewMarketPriceRepository(db),
			repository.NewMTMRepository(db),
			repository.NewHedgeRepository(db),
		)

		cp := testutil.NewCounterparty().Build(t, db)
		testutil.NewHedge(cp.ID).Closed().Build(t, db)
		testutil.CreateMarketPrice(t, db, "LME-AL-3M", 2500, asOf)

		records, err := svc.RunMTMSnapshot(context.Background(), asOf)
		if err != nil {
			t.Fatalf("RunMTMSnapshot failed: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("Expected no records for a closed hedge, got %d", len(records))
		}
	})

	t.Run("skips hedges whose instrument has no price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewMarketService(
			repository.NewMarketPriceRepository(db),
			repository.NewMTMRepository(db),
			repository.NewHedgeRepository(db),
		)

		cp := testutil.NewCounterparty().Build(t, db)
		testutil.NewHedge(cp.ID).WithInstrument("LME-CU-3M").Build(t, db)
		testutil.NewHedge(cp.ID).Build(t, db)
		testutil.CreateMarketPrice(t, db, "LME-AL-3M", 2500, asOf)

		records, err := svc.RunMTMSnapshot(context.Background(), asOf)
		if err != nil {
			t.Fatalf("RunMTMSnapshot failed: %v", err)
		}
		if len(records) != 1 {
			t.Errorf("Expected only the priced hedge to be valued, got %d records", len(records))
		}
	})

	t.Run("rerun replaces the same-date snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewMarketService(
			repository.NewMarketPriceRepository(db),
			repository.NewMTMRepository(db),
			repository.NewHedgeRepository(db),
		)

		cp := testutil.NewCounterparty().Build(t, db)
		testutil.NewHedge(cp.ID).WithQuantity(100).WithContractPrice(2400).Build(t, db)
		testutil.CreateMarketPrice(t, db, "LME-AL-3M", 2450, asOf.Add(-time.Hour))

		if _, err := svc.RunMTMSnapshot(context.Background(), asOf); err != nil {
			t.Fatalf("First run failed: %v", err)
		}

		testutil.CreateMarketPrice(t, db, "LME-AL-3M", 2500, asOf)
		if _, err := svc.RunMTMSnapshot(context.Background(), asOf); err != nil {
			t.Fatalf("Second run failed: %v", err)
		}

		stored, err := svc.GetMTMRecords("2026-08-31")
		if err != nil {
			t.Fatalf("GetMTMRecords failed: %v", err)
		}
		if len(stored) != 1 {
			t.Fatalf("Expected the rerun to replace the snapshot, got %d records", len(stored))
		}
		// (2500 - 2400) * 100
		if stored[0].MTMValue != 10000 {
			t.Errorf("Expected refreshed value 10000, got %v", stored[0].MTMValue)
		}
	})
}

package rfq

import (
	"errors"
	"testing"
	"time"

	"github.com/alcast/backoffice/internal/apperrors"
)

func newTestSet(t *testing.T) *TradeSet {
	t.Helper()
	s := &TradeSet{now: func() time.Time {
		return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	}}
	s.AddTrade()
	return s
}

func TestNewTradeSet_Defaults(t *testing.T) {
	s := newTestSet(t)

	if s.Len() != 1 {
		t.Fatalf("Expected 1 trade, got %d", s.Len())
	}

	trade := s.Trades()[0]
	if trade.ID != 1 {
		t.Errorf("Expected trade ID 1, got %d", trade.ID)
	}
	if trade.TradeType != Swap {
		t.Errorf("Expected default trade type Swap, got %s", trade.TradeType)
	}
	if trade.Leg1.Side != Buy || trade.Leg2.Side != Sell {
		t.Errorf("Expected leg sides buy/sell, got %s/%s", trade.Leg1.Side, trade.Leg2.Side)
	}
	if trade.Leg1.PriceType != PriceNone {
		t.Errorf("Expected no price type selected, got %q", trade.Leg1.PriceType)
	}
	if trade.Leg1.Month != "March" || trade.Leg1.Year != "2025" {
		t.Errorf("Expected month/year presets March/2025, got %s/%s", trade.Leg1.Month, trade.Leg1.Year)
	}
	if trade.Leg1.OrderType != OrderAtMarket {
		t.Errorf("Expected default order type At Market, got %q", trade.Leg1.OrderType)
	}
}

// TestAddTrade_IDAllocation checks that ids are strictly increasing and never
// reused, even after removals in the middle of the set.
func TestAddTrade_IDAllocation(t *testing.T) {
	s := newTestSet(t)

	t2 := s.AddTrade()
	t3 := s.AddTrade()
	if t2.ID != 2 || t3.ID != 3 {
		t.Fatalf("Expected ids 2 and 3, got %d and %d", t2.ID, t3.ID)
	}

	if err := s.RemoveTrade(2); err != nil {
		t.Fatalf("RemoveTrade failed: %v", err)
	}

	t4 := s.AddTrade()
	if t4.ID != 4 {
		t.Errorf("Expected next id 4 after removing trade 2, got %d", t4.ID)
	}
}

func TestRemoveTrade(t *testing.T) {
	t.Run("removing the last trade is a no-op", func(t *testing.T) {
		s := newTestSet(t)

		if err := s.RemoveTrade(1); err != nil {
			t.Fatalf("Expected nil error, got %v", err)
		}
		if s.Len() != 1 {
			t.Errorf("Expected the trade to remain, got %d trades", s.Len())
		}
	})

	t.Run("unknown id returns ErrTradeNotFound", func(t *testing.T) {
		s := newTestSet(t)

		err := s.RemoveTrade(99)
		if !errors.Is(err, apperrors.ErrTradeNotFound) {
			t.Errorf("Expected ErrTradeNotFound, got %v", err)
		}
	})

	t.Run("removal preserves order of the rest", func(t *testing.T) {
		s := newTestSet(t)
		s.AddTrade()
		s.AddTrade()

		if err := s.RemoveTrade(2); err != nil {
			t.Fatalf("RemoveTrade failed: %v", err)
		}

		trades := s.Trades()
		if len(trades) != 2 || trades[0].ID != 1 || trades[1].ID != 3 {
			t.Errorf("Expected trades [1 3], got %v", trades)
		}
	})
}

func TestUpdateTrade(t *testing.T) {
	s := newTestSet(t)

	qty := 500.0
	tt := Forward
	if err := s.UpdateTrade(1, TradeUpdate{Quantity: &qty, TradeType: &tt}); err != nil {
		t.Fatalf("UpdateTrade failed: %v", err)
	}

	trade, err := s.Trade(1)
	if err != nil {
		t.Fatalf("Trade lookup failed: %v", err)
	}
	if trade.Quantity != 500 || trade.TradeType != Forward {
		t.Errorf("Update not applied: %+v", trade)
	}
	// untouched fields survive
	if trade.Leg1.Side != Buy {
		t.Errorf("Expected leg1 side untouched, got %s", trade.Leg1.Side)
	}

	if err := s.UpdateTrade(42, TradeUpdate{Quantity: &qty}); !errors.Is(err, apperrors.ErrTradeNotFound) {
		t.Errorf("Expected ErrTradeNotFound for unknown id, got %v", err)
	}
}

func TestUpdateLeg_SideFlipsSibling(t *testing.T) {
	s := newTestSet(t)

	pt := PriceFix
	date := "2025-03-20"
	if err := s.UpdateLeg(1, Leg2, LegUpdate{PriceType: &pt, FixingDate: &date}); err != nil {
		t.Fatalf("UpdateLeg failed: %v", err)
	}

	side := Sell
	if err := s.UpdateLeg(1, Leg1, LegUpdate{Side: &side}); err != nil {
		t.Fatalf("UpdateLeg failed: %v", err)
	}

	trade, _ := s.Trade(1)
	if trade.Leg1.Side != Sell {
		t.Errorf("Expected leg1 side sell, got %s", trade.Leg1.Side)
	}
	if trade.Leg2.Side != Buy {
		t.Errorf("Expected leg2 side flipped to buy, got %s", trade.Leg2.Side)
	}
	// sibling keeps everything else
	if trade.Leg2.PriceType != PriceFix || trade.Leg2.FixingDate != "2025-03-20" {
		t.Errorf("Sibling fields clobbered: %+v", trade.Leg2)
	}
}

func TestUpdateLeg_NonSideFieldsLeaveSiblingAlone(t *testing.T) {
	s := newTestSet(t)

	month := "July"
	if err := s.UpdateLeg(1, Leg1, LegUpdate{Month: &month}); err != nil {
		t.Fatalf("UpdateLeg failed: %v", err)
	}

	trade, _ := s.Trade(1)
	if trade.Leg1.Month != "July" {
		t.Errorf("Expected leg1 month July, got %s", trade.Leg1.Month)
	}
	if trade.Leg2.Side != Sell {
		t.Errorf("Expected leg2 side unchanged, got %s", trade.Leg2.Side)
	}
}

func TestUpdateLeg_UnknownSlot(t *testing.T) {
	s := newTestSet(t)

	err := s.UpdateLeg(1, LegSlot("leg3"), LegUpdate{})
	if !errors.Is(err, apperrors.ErrUnknownLegSlot) {
		t.Errorf("Expected ErrUnknownLegSlot, got %v", err)
	}
}

func TestApplyTemplate(t *testing.T) {
	t.Run("decline template", func(t *testing.T) {
		s := newTestSet(t)
		tt := Forward
		if err := s.UpdateTrade(1, TradeUpdate{TradeType: &tt}); err != nil {
			t.Fatal(err)
		}

		if err := s.ApplyTemplate(1, TemplateDecline); err != nil {
			t.Fatalf("ApplyTemplate failed: %v", err)
		}

		trade, _ := s.Trade(1)
		if trade.TradeType != Swap {
			t.Errorf("Expected template to force Swap, got %s", trade.TradeType)
		}
		if trade.Leg1.Side != Buy || trade.Leg1.PriceType != PriceAVG {
			t.Errorf("Expected leg1 buy AVG, got %s %s", trade.Leg1.Side, trade.Leg1.PriceType)
		}
		if trade.Leg2.Side != Sell || trade.Leg2.PriceType != PriceFix {
			t.Errorf("Expected leg2 sell Fix, got %s %s", trade.Leg2.Side, trade.Leg2.PriceType)
		}
	})

	t.Run("rise template", func(t *testing.T) {
		s := newTestSet(t)

		if err := s.ApplyTemplate(1, TemplateRise); err != nil {
			t.Fatalf("ApplyTemplate failed: %v", err)
		}

		trade, _ := s.Trade(1)
		if trade.Leg1.Side != Sell || trade.Leg1.PriceType != PriceAVG {
			t.Errorf("Expected leg1 sell AVG, got %s %s", trade.Leg1.Side, trade.Leg1.PriceType)
		}
		if trade.Leg2.Side != Buy || trade.Leg2.PriceType != PriceFix {
			t.Errorf("Expected leg2 buy Fix, got %s %s", trade.Leg2.Side, trade.Leg2.PriceType)
		}
	})

	t.Run("template preserves other leg fields", func(t *testing.T) {
		s := newTestSet(t)
		date := "2025-03-20"
		if err := s.UpdateLeg(1, Leg2, LegUpdate{FixingDate: &date}); err != nil {
			t.Fatal(err)
		}

		if err := s.ApplyTemplate(1, TemplateDecline); err != nil {
			t.Fatalf("ApplyTemplate failed: %v", err)
		}

		trade, _ := s.Trade(1)
		if trade.Leg2.FixingDate != "2025-03-20" {
			t.Errorf("Expected fixing date preserved, got %q", trade.Leg2.FixingDate)
		}
		if trade.Leg1.Month != "March" {
			t.Errorf("Expected month preserved, got %q", trade.Leg1.Month)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		s := newTestSet(t)

		err := s.ApplyTemplate(1, Template("straddle"))
		if !errors.Is(err, apperrors.ErrUnknownTemplate) {
			t.Errorf("Expected ErrUnknownTemplate, got %v", err)
		}
	})
}

package rfq

import (
	"time"

	"github.com/alcast/backoffice/internal/apperrors"
)

// LegSlot names one of the two legs of a trade.
type LegSlot string

const (
	Leg1 LegSlot = "leg1"
	Leg2 LegSlot = "leg2"
)

// Valid reports whether s names a leg.
func (s LegSlot) Valid() bool {
	return s == Leg1 || s == Leg2
}

// Template is a named preset that rewrites a trade's instrument and both
// legs' side and price type in one step.
type Template string

const (
	// TemplateDecline hedges against a falling price: buy the average,
	// sell the fix.
	TemplateDecline Template = "decline"
	// TemplateRise hedges against a rising price: sell the average,
	// buy the fix.
	TemplateRise Template = "rise"
)

// TradeSet is an ordered collection of trades, insertion order being render
// order. A set always holds at least one trade; removal of the last trade is
// a no-op. TradeSet is not safe for concurrent use; callers serialize access.
type TradeSet struct {
	trades []Trade
	now    func() time.Time
}

// NewTradeSet creates a trade set holding one default trade, mirroring the
// start of a composer session.
func NewTradeSet() *TradeSet {
	s := &TradeSet{now: time.Now}
	s.AddTrade()
	return s
}

// Len returns the number of trades in the set.
func (s *TradeSet) Len() int {
	return len(s.trades)
}

// Trades returns a copy of the trades in render order.
func (s *TradeSet) Trades() []Trade {
	out := make([]Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

// Trade returns a copy of the trade with the given id.
func (s *TradeSet) Trade(id int) (Trade, error) {
	t := s.find(id)
	if t == nil {
		return Trade{}, apperrors.ErrTradeNotFound
	}
	return *t, nil
}

// AddTrade appends a default trade with an id strictly greater than any
// existing id (1 for an empty set) and returns it.
func (s *TradeSet) AddTrade() Trade {
	id := 1
	for _, t := range s.trades {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	t := newTrade(id, s.now())
	s.trades = append(s.trades, t)
	return t
}

// RemoveTrade removes the trade with the given id. Removing from a set of
// size one is a deliberate no-op, not an error: a ticket always keeps at
// least one trade. Returns ErrTradeNotFound only for an unknown id.
func (s *TradeSet) RemoveTrade(id int) error {
	if s.find(id) == nil {
		return apperrors.ErrTradeNotFound
	}
	if len(s.trades) == 1 {
		return nil
	}
	for i, t := range s.trades {
		if t.ID == id {
			s.trades = append(s.trades[:i], s.trades[i+1:]...)
			return nil
		}
	}
	return nil
}

// UpdateTrade shallow-merges the non-nil fields of u into the trade with the
// given id.
func (s *TradeSet) UpdateTrade(id int, u TradeUpdate) error {
	t := s.find(id)
	if t == nil {
		return apperrors.ErrTradeNotFound
	}
	t.apply(u)
	return nil
}

// UpdateLeg merges the non-nil fields of u into the named leg of the trade.
// A side change additionally forces the sibling leg to the opposite side,
// leaving the sibling's other fields untouched; both writes happen as one
// update so the two legs are never observed holding the same side.
func (s *TradeSet) UpdateLeg(id int, slot LegSlot, u LegUpdate) error {
	t := s.find(id)
	if t == nil {
		return apperrors.ErrTradeNotFound
	}

	target, sibling := &t.Leg1, &t.Leg2
	if slot == Leg2 {
		target, sibling = &t.Leg2, &t.Leg1
	} else if slot != Leg1 {
		return apperrors.ErrUnknownLegSlot
	}

	target.apply(u)
	if u.Side != nil {
		sibling.Side = u.Side.Opposite()
	}
	return nil
}

// ApplyTemplate rewrites the trade to a named hedge structure: the instrument
// becomes a swap and both legs get the template's side and price type. All
// other leg fields keep their current values.
func (s *TradeSet) ApplyTemplate(id int, tpl Template) error {
	t := s.find(id)
	if t == nil {
		return apperrors.ErrTradeNotFound
	}

	switch tpl {
	case TemplateDecline:
		t.TradeType = Swap
		t.Leg1.Side, t.Leg1.PriceType = Buy, PriceAVG
		t.Leg2.Side, t.Leg2.PriceType = Sell, PriceFix
	case TemplateRise:
		t.TradeType = Swap
		t.Leg1.Side, t.Leg1.PriceType = Sell, PriceAVG
		t.Leg2.Side, t.Leg2.PriceType = Buy, PriceFix
	default:
		return apperrors.ErrUnknownTemplate
	}
	return nil
}

func (s *TradeSet) find(id int) *Trade {
	for i := range s.trades {
		if s.trades[i].ID == id {
			return &s.trades[i]
		}
	}
	return nil
}

package rfq

import "time"

// TradeType is the derivative instrument of a trade.
type TradeType string

const (
	Swap    TradeType = "Swap"
	Forward TradeType = "Forward"
)

// Valid reports whether t is a recognized trade type.
func (t TradeType) Valid() bool {
	return t == Swap || t == Forward
}

// months are the English month names offered for AVG pricing, indexed by
// time.Month-1.
var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Trade is one hedge trade in a ticket: a quantity, an instrument and exactly
// two legs with opposite sides. The ID is a small positive integer, unique
// and stable within the owning trade set.
type Trade struct {
	ID        int       `json:"id"`
	Quantity  float64   `json:"quantity"` // metric tons; <= 0 renders as empty
	TradeType TradeType `json:"tradeType"`
	SyncPPT   bool      `json:"syncPpt"` // carried through, not used by the message grammar
	Leg1      Leg       `json:"leg1"`
	Leg2      Leg       `json:"leg2"`
}

// TradeUpdate is a partial trade update. Nil fields are left untouched.
// Leg fields are replaced wholesale when present; per-field leg merging goes
// through TradeSet.UpdateLeg instead.
type TradeUpdate struct {
	Quantity  *float64   `json:"quantity,omitempty"`
	TradeType *TradeType `json:"tradeType,omitempty"`
	SyncPPT   *bool      `json:"syncPpt,omitempty"`
	Leg1      *Leg       `json:"leg1,omitempty"`
	Leg2      *Leg       `json:"leg2,omitempty"`
}

// apply merges the non-nil fields of u into the trade.
func (t *Trade) apply(u TradeUpdate) {
	if u.Quantity != nil {
		t.Quantity = *u.Quantity
	}
	if u.TradeType != nil {
		t.TradeType = *u.TradeType
	}
	if u.SyncPPT != nil {
		t.SyncPPT = *u.SyncPPT
	}
	if u.Leg1 != nil {
		t.Leg1 = *u.Leg1
	}
	if u.Leg2 != nil {
		t.Leg2 = *u.Leg2
	}
}

// newTrade creates an empty trade with the session defaults: leg 1 buys,
// leg 2 sells, swap instrument, no pricing selected, month and year preset
// to the current date.
func newTrade(id int, now time.Time) Trade {
	return Trade{
		ID:        id,
		Quantity:  0,
		TradeType: Swap,
		Leg1:      newLeg(Buy, now),
		Leg2:      newLeg(Sell, now),
	}
}

func newLeg(side Side, now time.Time) Leg {
	return Leg{
		Side:      side,
		PriceType: PriceNone,
		Month:     months[now.Month()-1],
		Year:      now.Format("2006"),
		OrderType: OrderAtMarket,
	}
}

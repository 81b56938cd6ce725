// Package rfq implements the RFQ trade-ticket composer: a two-leg trade model,
// an ordered trade set with command-style mutations, named hedge templates, and
// the deterministic text renderer that turns a trade set into the quotation
// message sent to banks and brokers for LME base-metal derivatives.
package rfq

// Side is the direction of a trade leg.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Opposite returns the other side. Within a trade the two legs always carry
// opposite sides; this is enforced by TradeSet.UpdateLeg.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// Title returns the capitalized form used in the generated message text.
func (s Side) Title() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	}
	return ""
}

// Valid reports whether s is a recognized side.
func (s Side) Valid() bool {
	return s == Buy || s == Sell
}

// PriceType selects the pricing reference of a leg and drives which of the
// tenor fields (month/year, date range, fixing date) apply.
type PriceType string

const (
	PriceNone        PriceType = ""
	PriceAVG         PriceType = "AVG"      // average over a named month/year
	PriceAVGInterval PriceType = "AVGInter" // average over an explicit date range
	PriceFix         PriceType = "Fix"      // locked to a single fixing date
	PriceC2R         PriceType = "C2R"      // cash-settlement reference
)

// Valid reports whether p is a recognized price type (including none).
func (p PriceType) Valid() bool {
	switch p {
	case PriceNone, PriceAVG, PriceAVGInterval, PriceFix, PriceC2R:
		return true
	}
	return false
}

// fixable reports whether the leg carries an execution instruction. Only
// fixing-style pricing (Fix, C2R) is executed as an order; averaging legs
// never produce an instruction line.
func (p PriceType) fixable() bool {
	return p == PriceFix || p == PriceC2R
}

// OrderType is the execution style of a fixing leg. The constant values are
// the exact literals that appear in the generated message.
type OrderType string

const (
	OrderNone     OrderType = ""
	OrderAtMarket OrderType = "At Market"
	OrderLimit    OrderType = "Limit"
	OrderResting  OrderType = "Resting"
)

// Valid reports whether o is a recognized order type (including none).
func (o OrderType) Valid() bool {
	switch o {
	case OrderNone, OrderAtMarket, OrderLimit, OrderResting:
		return true
	}
	return false
}

// OrderValidity is how long a resting or limit order stays active. The
// constant values are the exact literals that appear in the generated message.
type OrderValidity string

const (
	ValidityNone         OrderValidity = ""
	ValidityDay          OrderValidity = "Day"
	ValidityGTC          OrderValidity = "GTC"
	Validity3Hours       OrderValidity = "3 Hours"
	Validity6Hours       OrderValidity = "6 Hours"
	Validity12Hours      OrderValidity = "12 Hours"
	ValidityUntilFurther OrderValidity = "Until Further Notice"
)

// Valid reports whether v is a recognized order validity (including none).
func (v OrderValidity) Valid() bool {
	switch v {
	case ValidityNone, ValidityDay, ValidityGTC, Validity3Hours,
		Validity6Hours, Validity12Hours, ValidityUntilFurther:
		return true
	}
	return false
}

// Leg is one side of a two-leg trade. Which fields are meaningful depends on
// PriceType: Month/Year for AVG, StartDate/EndDate for AVGInter, FixingDate
// and the order fields for Fix and C2R. Dates are ISO strings (YYYY-MM-DD);
// an empty string means absent.
type Leg struct {
	Side          Side          `json:"side"`
	PriceType     PriceType     `json:"priceType"`
	Month         string        `json:"month"`
	Year          string        `json:"year"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	FixingDate    string        `json:"fixingDate"`
	OrderType     OrderType     `json:"orderType"`
	OrderValidity OrderValidity `json:"orderValidity"`
	LimitPrice    float64       `json:"limitPrice"`
}

// LegUpdate is a partial leg update. Nil fields are left untouched; the merge
// is shallow over the named fields only. A Side change is handled specially by
// TradeSet.UpdateLeg, which also flips the sibling leg.
type LegUpdate struct {
	Side          *Side          `json:"side,omitempty"`
	PriceType     *PriceType     `json:"priceType,omitempty"`
	Month         *string        `json:"month,omitempty"`
	Year          *string        `json:"year,omitempty"`
	StartDate     *string        `json:"startDate,omitempty"`
	EndDate       *string        `json:"endDate,omitempty"`
	FixingDate    *string        `json:"fixingDate,omitempty"`
	OrderType     *OrderType     `json:"orderType,omitempty"`
	OrderValidity *OrderValidity `json:"orderValidity,omitempty"`
	LimitPrice    *float64       `json:"limitPrice,omitempty"`
}

// apply merges the non-nil fields of u into the leg.
func (l *Leg) apply(u LegUpdate) {
	if u.Side != nil {
		l.Side = *u.Side
	}
	if u.PriceType != nil {
		l.PriceType = *u.PriceType
	}
	if u.Month != nil {
		l.Month = *u.Month
	}
	if u.Year != nil {
		l.Year = *u.Year
	}
	if u.StartDate != nil {
		l.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		l.EndDate = *u.EndDate
	}
	if u.FixingDate != nil {
		l.FixingDate = *u.FixingDate
	}
	if u.OrderType != nil {
		l.OrderType = *u.OrderType
	}
	if u.OrderValidity != nil {
		l.OrderValidity = *u.OrderValidity
	}
	if u.LimitPrice != nil {
		l.LimitPrice = *u.LimitPrice
	}
}

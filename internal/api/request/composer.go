package request

import (
	"github.com/alcast/backoffice/internal/rfq"
)

// SetCompanyRequest represents the request body for switching the account
// header of a composer session
type SetCompanyRequest struct {
	Company string `json:"company"`
}

// UpdateTradeRequest carries a partial trade update. Nil fields are left
// untouched. Leg1/Leg2 replace the whole leg; per-field leg edits go through
// UpdateLegRequest instead.
type UpdateTradeRequest struct {
	Quantity  *float64       `json:"quantity,omitempty"`
	TradeType *rfq.TradeType `json:"tradeType,omitempty"`
	SyncPPT   *bool          `json:"syncPpt,omitempty"`
	Leg1      *rfq.Leg       `json:"leg1,omitempty"`
	Leg2      *rfq.Leg       `json:"leg2,omitempty"`
}

// ToUpdate converts the request into the domain update type.
func (r UpdateTradeRequest) ToUpdate() rfq.TradeUpdate {
	return rfq.TradeUpdate{
		Quantity:  r.Quantity,
		TradeType: r.TradeType,
		SyncPPT:   r.SyncPPT,
		Leg1:      r.Leg1,
		Leg2:      r.Leg2,
	}
}

// UpdateLegRequest carries a partial update for one leg of a trade.
type UpdateLegRequest struct {
	Side          *rfq.Side          `json:"side,omitempty"`
	PriceType     *rfq.PriceType     `json:"priceType,omitempty"`
	Month         *string            `json:"month,omitempty"`
	Year          *string            `json:"year,omitempty"`
	StartDate     *string            `json:"startDate,omitempty"`
	EndDate       *string            `json:"endDate,omitempty"`
	FixingDate    *string            `json:"fixingDate,omitempty"`
	OrderType     *rfq.OrderType     `json:"orderType,omitempty"`
	OrderValidity *rfq.OrderValidity `json:"orderValidity,omitempty"`
	LimitPrice    *float64           `json:"limitPrice,omitempty"`
}

// ToUpdate converts the request into the domain update type.
func (r UpdateLegRequest) ToUpdate() rfq.LegUpdate {
	return rfq.LegUpdate{
		Side:          r.Side,
		PriceType:     r.PriceType,
		Month:         r.Month,
		Year:          r.Year,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		FixingDate:    r.FixingDate,
		OrderType:     r.OrderType,
		OrderValidity: r.OrderValidity,
		LimitPrice:    r.LimitPrice,
	}
}

// ApplyTemplateRequest represents the request body for rewriting a trade to a
// named hedge structure
type ApplyTemplateRequest struct {
	Template string `json:"template"`
}

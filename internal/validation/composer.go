package validation

import (
	"github.com/alcast/backoffice/internal/api/request"
	"github.com/alcast/backoffice/internal/rfq"
)

func ValidateSetCompany(req request.SetCompanyRequest) error {
	errors := make(map[string]string)

	if !rfq.Company(req.Company).Valid() {
		errors["company"] = "company must be one of the trading entities"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateTrade(req request.UpdateTradeRequest) error {
	errors := make(map[string]string)

	if req.TradeType != nil && !req.TradeType.Valid() {
		errors["tradeType"] = "tradeType must be Swap or Forward"
	}
	if req.Leg1 != nil {
		validateLeg("leg1", *req.Leg1, errors)
	}
	if req.Leg2 != nil {
		validateLeg("leg2", *req.Leg2, errors)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateLeg(req request.UpdateLegRequest) error {
	errors := make(map[string]string)

	if req.Side != nil && !req.Side.Valid() {
		errors["side"] = "side must be buy or sell"
	}
	if req.PriceType != nil && !req.PriceType.Valid() {
		errors["priceType"] = "unknown price type"
	}
	if req.OrderType != nil && !req.OrderType.Valid() {
		errors["orderType"] = "unknown order type"
	}
	if req.OrderValidity != nil && !req.OrderValidity.Valid() {
		errors["orderValidity"] = "unknown order validity"
	}
	if req.StartDate != nil && ValidateDate(*req.StartDate) != nil {
		errors["startDate"] = "startDate must be YYYY-MM-DD"
	}
	if req.EndDate != nil && ValidateDate(*req.EndDate) != nil {
		errors["endDate"] = "endDate must be YYYY-MM-DD"
	}
	if req.FixingDate != nil && ValidateDate(*req.FixingDate) != nil {
		errors["fixingDate"] = "fixingDate must be YYYY-MM-DD"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateLeg(prefix string, leg rfq.Leg, errors map[string]string) {
	if !leg.Side.Valid() {
		errors[prefix+".side"] = "side must be buy or sell"
	}
	if !leg.PriceType.Valid() {
		errors[prefix+".priceType"] = "unknown price type"
	}
	if !leg.OrderType.Valid() {
		errors[prefix+".orderType"] = "unknown order type"
	}
	if !leg.OrderValidity.Valid() {
		errors[prefix+".orderValidity"] = "unknown order validity"
	}
}

package validation

import (
	"strings"

	"github.com/alcast/backoffice/internal/api/request"
	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/rfq"
)

func ValidateRecordPrice(req request.RecordPriceRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Source) == "" {
		errors["source"] = "source is required"
	}
	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}
	if req.Price <= 0 {
		errors["price"] = "price must be greater than zero"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateDispatchRFQ(req request.DispatchRFQRequest) error {
	errors := make(map[string]string)

	if !rfq.Company(req.Company).Valid() {
		errors["company"] = "company must be one of the trading entities"
	}
	if strings.TrimSpace(req.MessageText) == "" {
		errors["messageText"] = "messageText is required"
	}
	if !model.RFQChannel(req.Channel).Valid() {
		errors["channel"] = "channel must be email, whatsapp or clipboard"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

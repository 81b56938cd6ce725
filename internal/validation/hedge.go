package validation

import (
	"github.com/alcast/backoffice/internal/api/request"
	"github.com/alcast/backoffice/internal/model"
)

func ValidateCreateHedge(req request.CreateHedgeRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.CounterpartyID); err != nil {
		errors["counterpartyId"] = "counterpartyId must be a valid UUID"
	}
	if req.SalesOrderID != "" {
		if err := ValidateUUID(req.SalesOrderID); err != nil {
			errors["salesOrderId"] = "salesOrderId must be a valid UUID"
		}
	}
	if req.QuantityMT <= 0 {
		errors["quantityMt"] = "quantityMt must be greater than zero"
	}
	if req.ContractPrice <= 0 {
		errors["contractPrice"] = "contractPrice must be greater than zero"
	}
	if ValidateDate(req.MaturityDate) != nil {
		errors["maturityDate"] = "maturityDate must be YYYY-MM-DD"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateHedge(req request.UpdateHedgeRequest) error {
	errors := make(map[string]string)

	if req.SalesOrderID != nil && *req.SalesOrderID != "" {
		if err := ValidateUUID(*req.SalesOrderID); err != nil {
			errors["salesOrderId"] = "salesOrderId must be a valid UUID"
		}
	}
	if req.QuantityMT != nil && *req.QuantityMT <= 0 {
		errors["quantityMt"] = "quantityMt must be greater than zero"
	}
	if req.ContractPrice != nil && *req.ContractPrice <= 0 {
		errors["contractPrice"] = "contractPrice must be greater than zero"
	}
	if req.MaturityDate != nil && ValidateDate(*req.MaturityDate) != nil {
		errors["maturityDate"] = "maturityDate must be YYYY-MM-DD"
	}
	if req.Status != nil && !model.HedgeStatus(*req.Status).Valid() {
		errors["status"] = "unknown hedge status"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

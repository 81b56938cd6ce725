package validation

import (
	"strings"

	"github.com/alcast/backoffice/internal/api/request"
)

func ValidateCreateLocation(req request.CreateLocationRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if req.CurrentStockMT < 0 {
		errors["currentStockMt"] = "currentStockMt cannot be negative"
	}
	if req.CapacityMT < 0 {
		errors["capacityMt"] = "capacityMt cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateLocation(req request.UpdateLocationRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}
	if req.CurrentStockMT != nil && *req.CurrentStockMT < 0 {
		errors["currentStockMt"] = "currentStockMt cannot be negative"
	}
	if req.CapacityMT != nil && *req.CapacityMT < 0 {
		errors["capacityMt"] = "capacityMt cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

package validation

import (
	"strings"

	"github.com/alcast/backoffice/internal/api/request"
	"github.com/alcast/backoffice/internal/model"
)

func ValidateCreateSupplier(req request.CreateSupplierRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 200 {
		errors["name"] = "name must be 200 characters or less"
	}

	if req.CreditLimit < 0 {
		errors["creditLimit"] = "creditLimit cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateSupplier(req request.UpdateSupplierRequest) error {
	errors := make(map[string]string)

	// Only validate provided fields
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 200 {
			errors["name"] = "name must be 200 characters or less"
		}
	}

	if req.CreditLimit != nil && *req.CreditLimit < 0 {
		errors["creditLimit"] = "creditLimit cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCreateCustomer(req request.CreateCustomerRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 200 {
		errors["name"] = "name must be 200 characters or less"
	}

	if req.CreditLimit < 0 {
		errors["creditLimit"] = "creditLimit cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateCustomer(req request.UpdateCustomerRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 200 {
			errors["name"] = "name must be 200 characters or less"
		}
	}

	if req.CreditLimit != nil && *req.CreditLimit < 0 {
		errors["creditLimit"] = "creditLimit cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCreateCounterparty(req request.CreateCounterpartyRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if !model.CounterpartyType(req.Type).Valid() {
		errors["type"] = "type must be bank or broker"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateCounterparty(req request.UpdateCounterpartyRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}
	if req.Type != nil && !model.CounterpartyType(*req.Type).Valid() {
		errors["type"] = "type must be bank or broker"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

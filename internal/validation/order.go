package validation

import (
	"strings"

	"github.com/alcast/backoffice/internal/api/request"
	"github.com/alcast/backoffice/internal/model"
)

func ValidateCreatePurchaseOrder(req request.CreatePurchaseOrderRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.PONumber) == "" {
		errors["poNumber"] = "poNumber is required"
	}
	if err := ValidateUUID(req.SupplierID); err != nil {
		errors["supplierId"] = "supplierId must be a valid UUID"
	}
	validateOrderFields(req.QuantityMT, req.PricingType, req.ExpectedDelivery, errors)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdatePurchaseOrder(req request.UpdatePurchaseOrderRequest) error {
	return validateOrderUpdate(req.QuantityMT, req.PricingType, req.ExpectedDelivery, req.Status)
}

func ValidateCreateSalesOrder(req request.CreateSalesOrderRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.SONumber) == "" {
		errors["soNumber"] = "soNumber is required"
	}
	if err := ValidateUUID(req.CustomerID); err != nil {
		errors["customerId"] = "customerId must be a valid UUID"
	}
	validateOrderFields(req.QuantityMT, req.PricingType, req.ExpectedDelivery, errors)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateSalesOrder(req request.UpdateSalesOrderRequest) error {
	return validateOrderUpdate(req.QuantityMT, req.PricingType, req.ExpectedDelivery, req.Status)
}

func validateOrderFields(quantity float64, pricingType, delivery string, errors map[string]string) {
	if quantity <= 0 {
		errors["quantityMt"] = "quantityMt must be greater than zero"
	}
	if pricingType != "" && !model.PricingType(pricingType).Valid() {
		errors["pricingType"] = "unknown pricing type"
	}
	if ValidateDate(delivery) != nil {
		errors["expectedDelivery"] = "expectedDelivery must be YYYY-MM-DD"
	}
}

func validateOrderUpdate(quantity *float64, pricingType, delivery, status *string) error {
	errors := make(map[string]string)

	if quantity != nil && *quantity <= 0 {
		errors["quantityMt"] = "quantityMt must be greater than zero"
	}
	if pricingType != nil && !model.PricingType(*pricingType).Valid() {
		errors["pricingType"] = "unknown pricing type"
	}
	if delivery != nil && ValidateDate(*delivery) != nil {
		errors["expectedDelivery"] = "expectedDelivery must be YYYY-MM-DD"
	}
	if status != nil && !model.OrderStatus(*status).Valid() {
		errors["status"] = "unknown order status"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

package request

// CreatePurchaseOrderRequest represents the request body for creating a
// purchase order
type CreatePurchaseOrderRequest struct {
	PONumber         string  `json:"poNumber"`
	SupplierID       string  `json:"supplierId"`
	Product          string  `json:"product"`
	QuantityMT       float64 `json:"quantityMt"`
	UnitPrice        float64 `json:"unitPrice"`
	PricingType      string  `json:"pricingType"`
	PricingPeriod    string  `json:"pricingPeriod"`
	Premium          float64 `json:"premium"`
	ExpectedDelivery string  `json:"expectedDelivery"`
	Location         string  `json:"location"`
	Notes            string  `json:"notes"`
}

type UpdatePurchaseOrderRequest struct {
	Product          *string  `json:"product,omitempty"`
	QuantityMT       *float64 `json:"quantityMt,omitempty"`
	UnitPrice        *float64 `json:"unitPrice,omitempty"`
	PricingType      *string  `json:"pricingType,omitempty"`
	PricingPeriod    *string  `json:"pricingPeriod,omitempty"`
	Premium          *float64 `json:"premium,omitempty"`
	ExpectedDelivery *string  `json:"expectedDelivery,omitempty"`
	Location         *string  `json:"location,omitempty"`
	Status           *string  `json:"status,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

// CreateSalesOrderRequest represents the request body for creating a sales order
type CreateSalesOrderRequest struct {
	SONumber         string  `json:"soNumber"`
	CustomerID       string  `json:"customerId"`
	Product          string  `json:"product"`
	QuantityMT       float64 `json:"quantityMt"`
	UnitPrice        float64 `json:"unitPrice"`
	PricingType      string  `json:"pricingType"`
	PricingPeriod    string  `json:"pricingPeriod"`
	Premium          float64 `json:"premium"`
	ExpectedDelivery string  `json:"expectedDelivery"`
	Location         string  `json:"location"`
	Notes            string  `json:"notes"`
}

type UpdateSalesOrderRequest struct {
	Product          *string  `json:"product,omitempty"`
	QuantityMT       *float64 `json:"quantityMt,omitempty"`
	UnitPrice        *float64 `json:"unitPrice,omitempty"`
	PricingType      *string  `json:"pricingType,omitempty"`
	PricingPeriod    *string  `json:"pricingPeriod,omitempty"`
	Premium          *float64 `json:"premium,omitempty"`
	ExpectedDelivery *string  `json:"expectedDelivery,omitempty"`
	Location         *string  `json:"location,omitempty"`
	Status           *string  `json:"status,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

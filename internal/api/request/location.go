package request

// CreateLocationRequest represents the request body for creating a warehouse
// location
type CreateLocationRequest struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	CurrentStockMT float64 `json:"currentStockMt"`
	CapacityMT     float64 `json:"capacityMt"`
}

type UpdateLocationRequest struct {
	Name           *string  `json:"name,omitempty"`
	Type           *string  `json:"type,omitempty"`
	CurrentStockMT *float64 `json:"currentStockMt,omitempty"`
	CapacityMT     *float64 `json:"capacityMt,omitempty"`
	Active         *bool    `json:"active,omitempty"`
}

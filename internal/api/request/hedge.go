package request

// CreateHedgeRequest represents the request body for opening a hedge position
type CreateHedgeRequest struct {
	CounterpartyID string  `json:"counterpartyId"`
	SalesOrderID   string  `json:"salesOrderId"`
	QuantityMT     float64 `json:"quantityMt"`
	ContractPrice  float64 `json:"contractPrice"`
	Period         string  `json:"period"`
	Instrument     string  `json:"instrument"`
	MaturityDate   string  `json:"maturityDate"`
}

type UpdateHedgeRequest struct {
	SalesOrderID  *string  `json:"salesOrderId,omitempty"`
	QuantityMT    *float64 `json:"quantityMt,omitempty"`
	ContractPrice *float64 `json:"contractPrice,omitempty"`
	Period        *string  `json:"period,omitempty"`
	Instrument    *string  `json:"instrument,omitempty"`
	MaturityDate  *string  `json:"maturityDate,omitempty"`
	Status        *string  `json:"status,omitempty"`
}

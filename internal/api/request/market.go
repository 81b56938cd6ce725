package request

import "time"

// RecordPriceRequest represents the request body for recording a market price
// observation
type RecordPriceRequest struct {
	Source        string    `json:"source"`
	Symbol        string    `json:"symbol"`
	ContractMonth string    `json:"contractMonth"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	AsOf          time.Time `json:"asOf"`
}

// DispatchRFQRequest represents the request body for logging a dispatched RFQ
// message
type DispatchRFQRequest struct {
	Company     string `json:"company"`
	MessageText string `json:"messageText"`
	Channel     string `json:"channel"`
}

// UpdateGatewaySettingsRequest represents the request body for the messaging
// gateway settings. An empty or masked token leaves the stored token as is.
type UpdateGatewaySettingsRequest struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

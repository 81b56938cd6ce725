package request

// CreateSupplierRequest represents the request body for creating a supplier
type CreateSupplierRequest struct {
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	LegalName    string  `json:"legalName"`
	TaxID        string  `json:"taxId"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	CreditLimit  float64 `json:"creditLimit"`
	ContactEmail string  `json:"contactEmail"`
	ContactPhone string  `json:"contactPhone"`
}

type UpdateSupplierRequest struct {
	Name         *string  `json:"name,omitempty"`
	Code         *string  `json:"code,omitempty"`
	LegalName    *string  `json:"legalName,omitempty"`
	TaxID        *string  `json:"taxId,omitempty"`
	City         *string  `json:"city,omitempty"`
	State        *string  `json:"state,omitempty"`
	CreditLimit  *float64 `json:"creditLimit,omitempty"`
	ContactEmail *string  `json:"contactEmail,omitempty"`
	ContactPhone *string  `json:"contactPhone,omitempty"`
	Active       *bool    `json:"active,omitempty"`
}

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	LegalName    string  `json:"legalName"`
	TaxID        string  `json:"taxId"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	CreditLimit  float64 `json:"creditLimit"`
	ContactEmail string  `json:"contactEmail"`
	ContactPhone string  `json:"contactPhone"`
}

type UpdateCustomerRequest struct {
	Name         *string  `json:"name,omitempty"`
	Code         *string  `json:"code,omitempty"`
	LegalName    *string  `json:"legalName,omitempty"`
	TaxID        *string  `json:"taxId,omitempty"`
	City         *string  `json:"city,omitempty"`
	State        *string  `json:"state,omitempty"`
	CreditLimit  *float64 `json:"creditLimit,omitempty"`
	ContactEmail *string  `json:"contactEmail,omitempty"`
	ContactPhone *string  `json:"contactPhone,omitempty"`
	Active       *bool    `json:"active,omitempty"`
}

// CreateCounterpartyRequest represents the request body for creating a
// counterparty
type CreateCounterpartyRequest struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

type UpdateCounterpartyRequest struct {
	Name         *string `json:"name,omitempty"`
	Type         *string `json:"type,omitempty"`
	ContactName  *string `json:"contactName,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

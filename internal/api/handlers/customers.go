package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alcast/backoffice/internal/api/request"
	"github.com/alcast/backoffice/internal/api/response"
	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/service"
	"github.com/alcast/backoffice/internal/validation"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// Customers handles GET requests to list customers. Inactive customers are
// included when the include_inactive query parameter is true.
//
// Endpoint: GET /api/customers
// Response: 200 OK with array of Customer
func (h *CustomerHandler) Customers(w http.ResponseWriter, r *http.Request) {
	filter := model.CustomerFilter{
		IncludeInactive: r.URL.Query().Get("include_inactive") == "true",
	}

	customers, err := h.customerService.GetCustomers(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveCustomers.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, customers)
}

// GetCustomer handles GET requests to retrieve a single customer by ID.
//
// Endpoint: GET /api/customers/{uuid}
// Response: 200 OK with Customer
// Error: 404 Not Found if customer not found
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customerService.GetCustomer(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrCustomerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCustomerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveCustomers.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// CreateCustomer handles POST requests to create a new customer.
//
// Endpoint: POST /api/customers
// Request Body: CreateCustomerRequest
// Response: 201 Created with Customer
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateCustomerRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateCustomer(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(model.Customer{
		Name:         req.Name,
		Code:         req.Code,
		LegalName:    req.LegalName,
		TaxID:        req.TaxID,
		City:         req.City,
		State:        req.State,
		CreditLimit:  req.CreditLimit,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create customer", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, customer)
}

// UpdateCustomer handles PUT requests to update an existing customer.
// Only the fields present in the body are changed.
//
// Endpoint: PUT /api/customers/{uuid}
// Request Body: UpdateCustomerRequest (all fields optional)
// Response: 200 OK with updated Customer
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if customer not found
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateCustomerRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateCustomer(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	customer, err := h.customerService.GetCustomer(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrCustomerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCustomerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveCustomers.Error(), err.Error())
		return
	}

	applyCustomerUpdate(&customer, req)

	customer, err = h.customerService.UpdateCustomer(customer)
	if err != nil {
		if errors.Is(err, apperrors.ErrCustomerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCustomerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update customer", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// DeleteCustomer handles DELETE requests to remove a customer.
//
// Endpoint: DELETE /api/customers/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if customer not found
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.customerService.DeleteCustomer(chi.URLParam(r, "uuid")); err != nil {
		if errors.Is(err, apperrors.ErrCustomerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCustomerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete customer", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func applyCustomerUpdate(c *model.Customer, req request.UpdateCustomerRequest) {
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Code != nil {
		c.Code = *req.Code
	}
	if req.LegalName != nil {
		c.LegalName = *req.LegalName
	}
	if req.TaxID != nil {
		c.TaxID = *req.TaxID
	}
	if req.City != nil {
		c.City = *req.City
	}
	if req.State != nil {
		c.State = *req.State
	}
	if req.CreditLimit != nil {
		c.CreditLimit = *req.CreditLimit
	}
	if req.ContactEmail != nil {
		c.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		c.ContactPhone = *req.ContactPhone
	}
	if req.Active != nil {
		c.Active = *req.Active
	}
}

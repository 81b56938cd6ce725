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

// SupplierHandler handles supplier-related HTTP requests
type SupplierHandler struct {
	supplierService *service.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
	}
}

// Suppliers handles GET requests to list suppliers. Inactive suppliers are
// included when the include_inactive query parameter is true.
//
// Endpoint: GET /api/suppliers
// Response: 200 OK with array of Supplier
// Error: 500 Internal Server Error if retrieval fails
func (h *SupplierHandler) Suppliers(w http.ResponseWriter, r *http.Request) {
	filter := model.SupplierFilter{
		IncludeInactive: r.URL.Query().Get("include_inactive") == "true",
	}

	suppliers, err := h.supplierService.GetSuppliers(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSuppliers.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, suppliers)
}

// GetSupplier handles GET requests to retrieve a single supplier by ID.
//
// Endpoint: GET /api/suppliers/{uuid}
// Response: 200 OK with Supplier
// Error: 404 Not Found if supplier not found
func (h *SupplierHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	supplier, err := h.supplierService.GetSupplier(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrSupplierNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSupplierNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSuppliers.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, supplier)
}

// CreateSupplier handles POST requests to create a new supplier.
//
// Endpoint: POST /api/suppliers
// Request Body: CreateSupplierRequest
// Response: 201 Created with Supplier
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *SupplierHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateSupplierRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateSupplier(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	supplier, err := h.supplierService.CreateSupplier(model.Supplier{
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
		response.RespondError(w, http.StatusInternalServerError, "failed to create supplier", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, supplier)
}

// UpdateSupplier handles PUT requests to update an existing supplier.
// Only the fields present in the body are changed.
//
// Endpoint: PUT /api/suppliers/{uuid}
// Request Body: UpdateSupplierRequest (all fields optional)
// Response: 200 OK with updated Supplier
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if supplier not found
func (h *SupplierHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateSupplierRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateSupplier(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	supplier, err := h.supplierService.GetSupplier(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrSupplierNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSupplierNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSuppliers.Error(), err.Error())
		return
	}

	applySupplierUpdate(&supplier, req)

	supplier, err = h.supplierService.UpdateSupplier(supplier)
	if err != nil {
		if errors.Is(err, apperrors.ErrSupplierNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSupplierNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update supplier", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, supplier)
}

// DeleteSupplier handles DELETE requests to remove a supplier.
//
// Endpoint: DELETE /api/suppliers/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if supplier not found
func (h *SupplierHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := h.supplierService.DeleteSupplier(chi.URLParam(r, "uuid")); err != nil {
		if errors.Is(err, apperrors.ErrSupplierNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSupplierNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete supplier", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func applySupplierUpdate(s *model.Supplier, req request.UpdateSupplierRequest) {
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Code != nil {
		s.Code = *req.Code
	}
	if req.LegalName != nil {
		s.LegalName = *req.LegalName
	}
	if req.TaxID != nil {
		s.TaxID = *req.TaxID
	}
	if req.City != nil {
		s.City = *req.City
	}
	if req.State != nil {
		s.State = *req.State
	}
	if req.CreditLimit != nil {
		s.CreditLimit = *req.CreditLimit
	}
	if req.ContactEmail != nil {
		s.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		s.ContactPhone = *req.ContactPhone
	}
	if req.Active != nil {
		s.Active = *req.Active
	}
}

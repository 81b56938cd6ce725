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

// CounterpartyHandler handles counterparty-related HTTP requests
type CounterpartyHandler struct {
	counterpartyService *service.CounterpartyService
}

// NewCounterpartyHandler creates a new CounterpartyHandler
func NewCounterpartyHandler(counterpartyService *service.CounterpartyService) *CounterpartyHandler {
	return &CounterpartyHandler{
		counterpartyService: counterpartyService,
	}
}

// Counterparties handles GET requests to list counterparties, optionally
// filtered by type (bank or broker) via the type query parameter.
//
// Endpoint: GET /api/counterparties
// Response: 200 OK with array of Counterparty
func (h *CounterpartyHandler) Counterparties(w http.ResponseWriter, r *http.Request) {
	filter := model.CounterpartyFilter{
		IncludeInactive: r.URL.Query().Get("include_inactive") == "true",
		Type:            model.CounterpartyType(r.URL.Query().Get("type")),
	}
	if filter.Type != "" && !filter.Type.Valid() {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "type must be bank or broker")
		return
	}

	counterparties, err := h.counterpartyService.GetCounterparties(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveCounterparties.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, counterparties)
}

// GetCounterparty handles GET requests to retrieve a single counterparty by ID.
//
// Endpoint: GET /api/counterparties/{uuid}
// Response: 200 OK with Counterparty
// Error: 404 Not Found if counterparty not found
func (h *CounterpartyHandler) GetCounterparty(w http.ResponseWriter, r *http.Request) {
	cp, err := h.counterpartyService.GetCounterparty(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrCounterpartyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCounterpartyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveCounterparties.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, cp)
}

// CreateCounterparty handles POST requests to register a quoting bank or broker.
//
// Endpoint: POST /api/counterparties
// Request Body: CreateCounterpartyRequest
// Response: 201 Created with Counterparty
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *CounterpartyHandler) CreateCounterparty(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateCounterpartyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateCounterparty(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	cp, err := h.counterpartyService.CreateCounterparty(model.Counterparty{
		Name:         req.Name,
		Type:         model.CounterpartyType(req.Type),
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create counterparty", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, cp)
}

// UpdateCounterparty handles PUT requests to update an existing counterparty.
// Only the fields present in the body are changed.
//
// Endpoint: PUT /api/counterparties/{uuid}
// Request Body: UpdateCounterpartyRequest (all fields optional)
// Response: 200 OK with updated Counterparty
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if counterparty not found
func (h *CounterpartyHandler) UpdateCounterparty(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateCounterpartyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateCounterparty(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	cp, err := h.counterpartyService.GetCounterparty(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrCounterpartyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCounterpartyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveCounterparties.Error(), err.Error())
		return
	}

	if req.Name != nil {
		cp.Name = *req.Name
	}
	if req.Type != nil {
		cp.Type = model.CounterpartyType(*req.Type)
	}
	if req.ContactName != nil {
		cp.ContactName = *req.ContactName
	}
	if req.ContactEmail != nil {
		cp.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		cp.ContactPhone = *req.ContactPhone
	}
	if req.Active != nil {
		cp.Active = *req.Active
	}

	cp, err = h.counterpartyService.UpdateCounterparty(cp)
	if err != nil {
		if errors.Is(err, apperrors.ErrCounterpartyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCounterpartyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update counterparty", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, cp)
}

// DeleteCounterparty handles DELETE requests to remove a counterparty.
//
// Endpoint: DELETE /api/counterparties/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if counterparty not found
func (h *CounterpartyHandler) DeleteCounterparty(w http.ResponseWriter, r *http.Request) {
	if err := h.counterpartyService.DeleteCounterparty(chi.URLParam(r, "uuid")); err != nil {
		if errors.Is(err, apperrors.ErrCounterpartyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCounterpartyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete counterparty", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

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

// LocationHandler handles warehouse-location HTTP requests
type LocationHandler struct {
	locationService *service.LocationService
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
	}
}

// Locations handles GET requests to list warehouse locations.
//
// Endpoint: GET /api/locations
// Response: 200 OK with array of WarehouseLocation
func (h *LocationHandler) Locations(w http.ResponseWriter, r *http.Request) {
	filter := model.LocationFilter{
		IncludeInactive: r.URL.Query().Get("include_inactive") == "true",
	}

	locations, err := h.locationService.GetLocations(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveLocations.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, locations)
}

// GetLocation handles GET requests to retrieve a single location by ID.
//
// Endpoint: GET /api/locations/{uuid}
// Response: 200 OK with WarehouseLocation
// Error: 404 Not Found if location not found
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	location, err := h.locationService.GetLocation(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrLocationNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrLocationNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveLocations.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, location)
}

// CreateLocation handles POST requests to create a warehouse location.
// The initial stock may not exceed the capacity when a capacity is set.
//
// Endpoint: POST /api/locations
// Request Body: CreateLocationRequest
// Response: 201 Created with WarehouseLocation
// Error: 400 Bad Request if validation fails or stock exceeds capacity
func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateLocationRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateLocation(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	location, err := h.locationService.CreateLocation(model.WarehouseLocation{
		Name:           req.Name,
		Type:           req.Type,
		CurrentStockMT: req.CurrentStockMT,
		CapacityMT:     req.CapacityMT,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrStockExceedsCapacity) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrStockExceedsCapacity.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create warehouse location", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, location)
}

// UpdateLocation handles PUT requests to update a warehouse location.
// Only the fields present in the body are changed; the stock-capacity rule is
// re-checked against the merged result.
//
// Endpoint: PUT /api/locations/{uuid}
// Request Body: UpdateLocationRequest (all fields optional)
// Response: 200 OK with updated WarehouseLocation
// Error: 400 Bad Request if validation fails or stock exceeds capacity
// Error: 404 Not Found if location not found
func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateLocationRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateLocation(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	location, err := h.locationService.GetLocation(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrLocationNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrLocationNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveLocations.Error(), err.Error())
		return
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Type != nil {
		location.Type = *req.Type
	}
	if req.CurrentStockMT != nil {
		location.CurrentStockMT = *req.CurrentStockMT
	}
	if req.CapacityMT != nil {
		location.CapacityMT = *req.CapacityMT
	}
	if req.Active != nil {
		location.Active = *req.Active
	}

	location, err = h.locationService.UpdateLocation(location)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLocationNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrLocationNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrStockExceedsCapacity):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrStockExceedsCapacity.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update warehouse location", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, location)
}

// DeleteLocation handles DELETE requests to remove a warehouse location.
//
// Endpoint: DELETE /api/locations/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if location not found
func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := h.locationService.DeleteLocation(chi.URLParam(r, "uuid")); err != nil {
		if errors.Is(err, apperrors.ErrLocationNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrLocationNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete warehouse location", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

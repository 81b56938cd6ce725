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

// HedgeHandler handles hedge-book HTTP requests
type HedgeHandler struct {
	hedgeService *service.HedgeService
}

// NewHedgeHandler creates a new HedgeHandler
func NewHedgeHandler(hedgeService *service.HedgeService) *HedgeHandler {
	return &HedgeHandler{
		hedgeService: hedgeService,
	}
}

// Hedges handles GET requests to list hedge positions, optionally filtered by
// status and counterparty_id query parameters.
//
// Endpoint: GET /api/hedges
// Response: 200 OK with array of Hedge
func (h *HedgeHandler) Hedges(w http.ResponseWriter, r *http.Request) {
	filter := model.HedgeFilter{
		Status:         model.HedgeStatus(r.URL.Query().Get("status")),
		CounterpartyID: r.URL.Query().Get("counterparty_id"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "unknown hedge status")
		return
	}

	hedges, err := h.hedgeService.GetHedges(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHedges.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, hedges)
}

// GetHedge handles GET requests to retrieve a single hedge by ID.
//
// Endpoint: GET /api/hedges/{uuid}
// Response: 200 OK with Hedge
// Error: 404 Not Found if hedge not found
func (h *HedgeHandler) GetHedge(w http.ResponseWriter, r *http.Request) {
	hedge, err := h.hedgeService.GetHedge(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrHedgeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHedgeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHedges.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, hedge)
}

// CreateHedge handles POST requests to open a hedge position against a
// counterparty.
//
// Endpoint: POST /api/hedges
// Request Body: CreateHedgeRequest
// Response: 201 Created with Hedge
// Error: 400 Bad Request if validation fails or the counterparty does not exist
func (h *HedgeHandler) CreateHedge(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateHedgeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateHedge(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	hedge, err := h.hedgeService.CreateHedge(model.Hedge{
		CounterpartyID: req.CounterpartyID,
		SalesOrderID:   req.SalesOrderID,
		QuantityMT:     req.QuantityMT,
		ContractPrice:  req.ContractPrice,
		Period:         req.Period,
		Instrument:     req.Instrument,
		MaturityDate:   req.MaturityDate,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrCounterpartyNotFound) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrCounterpartyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create hedge", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, hedge)
}

// UpdateHedge handles PUT requests to update a hedge position.
// Only the fields present in the body are changed.
//
// Endpoint: PUT /api/hedges/{uuid}
// Request Body: UpdateHedgeRequest (all fields optional)
// Response: 200 OK with updated Hedge
// Error: 404 Not Found if hedge not found
func (h *HedgeHandler) UpdateHedge(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateHedgeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateHedge(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	hedge, err := h.hedgeService.GetHedge(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrHedgeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHedgeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHedges.Error(), err.Error())
		return
	}

	if req.SalesOrderID != nil {
		hedge.SalesOrderID = *req.SalesOrderID
	}
	if req.QuantityMT != nil {
		hedge.QuantityMT = *req.QuantityMT
	}
	if req.ContractPrice != nil {
		hedge.ContractPrice = *req.ContractPrice
	}
	if req.Period != nil {
		hedge.Period = *req.Period
	}
	if req.Instrument != nil {
		hedge.Instrument = *req.Instrument
	}
	if req.MaturityDate != nil {
		hedge.MaturityDate = *req.MaturityDate
	}
	if req.Status != nil {
		hedge.Status = model.HedgeStatus(*req.Status)
	}

	hedge, err = h.hedgeService.UpdateHedge(hedge)
	if err != nil {
		if errors.Is(err, apperrors.ErrHedgeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHedgeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update hedge", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, hedge)
}

// DeleteHedge handles DELETE requests to remove a hedge position.
//
// Endpoint: DELETE /api/hedges/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if hedge not found
func (h *HedgeHandler) DeleteHedge(w http.ResponseWriter, r *http.Request) {
	if err := h.hedgeService.DeleteHedge(chi.URLParam(r, "uuid")); err != nil {
		if errors.Is(err, apperrors.ErrHedgeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHedgeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete hedge", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

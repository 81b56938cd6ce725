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

// RFQRecordHandler handles HTTP requests for the RFQ dispatch log.
type RFQRecordHandler struct {
	recordService *service.RFQRecordService
}

// NewRFQRecordHandler creates a new RFQRecordHandler
func NewRFQRecordHandler(recordService *service.RFQRecordService) *RFQRecordHandler {
	return &RFQRecordHandler{
		recordService: recordService,
	}
}

// Records handles GET requests to list dispatched RFQs, newest first.
//
// Endpoint: GET /api/rfq/records
// Response: 200 OK with array of RFQRecord
func (h *RFQRecordHandler) Records(w http.ResponseWriter, _ *http.Request) {
	records, err := h.recordService.GetRecords()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveRFQRecords.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// GetRecord handles GET requests to retrieve a single dispatched RFQ by ID.
//
// Endpoint: GET /api/rfq/records/{uuid}
// Response: 200 OK with RFQRecord
// Error: 404 Not Found if record not found
func (h *RFQRecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.recordService.GetRecord(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrRFQRecordNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrRFQRecordNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveRFQRecords.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// Dispatch handles POST requests to log a dispatched RFQ message. The record
// is assigned the next RFQ-YYYY-NNNN number for the current year and stores
// the message text exactly as it went out.
//
// Endpoint: POST /api/rfq/records
// Request Body: DispatchRFQRequest
// Response: 201 Created with RFQRecord
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *RFQRecordHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.DispatchRFQRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateDispatchRFQ(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	record, err := h.recordService.Dispatch(req.Company, req.MessageText, model.RFQChannel(req.Channel))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to log dispatched rfq", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

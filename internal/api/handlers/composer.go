package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alcast/backoffice/internal/api/request"
	"github.com/alcast/backoffice/internal/api/response"
	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/rfq"
	"github.com/alcast/backoffice/internal/service"
	"github.com/alcast/backoffice/internal/validation"
)

// ComposerHandler handles HTTP requests for the RFQ composer endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the composerService.
type ComposerHandler struct {
	composerService *service.ComposerService
}

// NewComposerHandler creates a new ComposerHandler with the provided service dependency.
func NewComposerHandler(composerService *service.ComposerService) *ComposerHandler {
	return &ComposerHandler{
		composerService: composerService,
	}
}

// CreateSession handles POST requests to start a new composer session.
// The session begins with one default trade and no generated output.
//
// Endpoint: POST /api/rfq/sessions
// Response: 201 Created with SessionState
func (h *ComposerHandler) CreateSession(w http.ResponseWriter, _ *http.Request) {
	state := h.composerService.CreateSession()
	respondJSON(w, http.StatusCreated, state)
}

// GetSession handles GET requests to read a session's current state,
// including the last generated output snapshot.
//
// Endpoint: GET /api/rfq/sessions/{sessionId}
// Response: 200 OK with SessionState
// Error: 404 Not Found if the session does not exist
func (h *ComposerHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.composerService.GetSession(chi.URLParam(r, "sessionId"))
	if err != nil {
		h.respondComposerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// DeleteSession handles DELETE requests to discard a session.
//
// Endpoint: DELETE /api/rfq/sessions/{sessionId}
// Response: 204 No Content
// Error: 404 Not Found if the session does not exist
func (h *ComposerHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.composerService.DeleteSession(chi.URLParam(r, "sessionId")); err != nil {
		h.respondComposerError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// SetCompany handles PUT requests to switch the trading entity whose account
// header the generated message carries.
//
// Endpoint: PUT /api/rfq/sessions/{sessionId}/company
// Request Body: SetCompanyRequest
// Response: 200 OK with SessionState
// Error: 400 Bad Request if the company is not recognized
// Error: 404 Not Found if the session does not exist
func (h *ComposerHandler) SetCompany(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetCompanyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if !rfq.Company(req.Company).Valid() {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "company must be one of the trading entities")
		return
	}

	state, err := h.composerService.SetCompany(chi.URLParam(r, "sessionId"), rfq.Company(req.Company))
	if err != nil {
		h.respondComposerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// AddTrade handles POST requests to append a default trade to the session.
//
// Endpoint: POST /api/rfq/sessions/{sessionId}/trades
// Response: 201 Created with the new Trade
// Error: 404 Not Found if the session does not exist
func (h *ComposerHandler) AddTrade(w http.ResponseWriter, r *http.Request) {
	trade, err := h.composerService.AddTrade(chi.URLParam(r, "sessionId"))
	if err != nil {
		h.respondComposerError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, trade)
}

// RemoveTrade handles DELETE requests to remove a trade from the session.
// Removing the only remaining trade leaves the set unchanged; the response
// reflects whatever the set holds afterwards.
//
// Endpoint: DELETE /api/rfq/sessions/{sessionId}/trades/{tradeId}
// Response: 200 OK with SessionState
// Error: 400 Bad Request if the trade ID is not an integer
// Error: 404 Not Found if the session or trade does not exist
func (h *ComposerHandler) RemoveTrade(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := h.tradeID(w, r)
	if !ok {
		return
	}

	state, err := h.composerService.RemoveTrade(chi.URLParam(r, "sessionId"), tradeID)
	if err != nil {
		h.respondComposerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// UpdateTrade handles PATCH requests to merge a partial update into a trade.
//
// Endpoint: PATCH /api/rfq/sessions/{sessionId}/trades/{tradeId}
// Request Body: UpdateTradeRequest (all fields optional)
// Response: 200 OK with the updated Trade
// Error: 400 Bad Request if the body is invalid or validation fails
// Error: 404 Not Found if the session or trade does not exist
func (h *ComposerHandler) UpdateTrade(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := h.tradeID(w, r)
	if !ok {
		return
	}

	req, err := parseJSON[request.UpdateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.composerService.UpdateTrade(chi.URLParam(r, "sessionId"), tradeID, req.ToUpdate())
	if err != nil {
		h.respondComposerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trade)
}

// UpdateLeg handles PATCH requests to merge a partial update into one leg of
// a trade. A side change also flips the sibling leg so the two legs stay on
// opposite sides.
//
// Endpoint: PATCH /api/rfq/sessions/{sessionId}/trades/{tradeId}/legs/{leg}
// Request Body: UpdateLegRequest (all fields optional)
// Response: 200 OK with the updated Trade
// Error: 400 Bad Request if the body, leg name or a field value is invalid
// Error: 404 Not Found if the session or trade does not exist
func (h *ComposerHandler) UpdateLeg(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := h.tradeID(w, r)
	if !ok {
		return
	}

	slot := rfq.LegSlot(chi.URLParam(r, "leg"))
	if !slot.Valid() {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnknownLegSlot.Error(), "leg must be leg1 or leg2")
		return
	}

	req, err := parseJSON[request.UpdateLegRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateLeg(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.composerService.UpdateLeg(chi.URLParam(r, "sessionId"), tradeID, slot, req.ToUpdate())
	if err != nil {
		h.respondComposerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trade)
}

// ApplyTemplate handles POST requests to rewrite a trade to a named hedge
// structure (protection against a price decline or rise).
//
// Endpoint: POST /api/rfq/sessions/{sessionId}/trades/{tradeId}/template
// Request Body: ApplyTemplateRequest
// Response: 200 OK with the rewritten Trade
// Error: 400 Bad Request if the template name is unknown
// Error: 404 Not Found if the session or trade does not exist
func (h *ComposerHandler) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := h.tradeID(w, r)
	if !ok {
		return
	}

	req, err := parseJSON[request.ApplyTemplateRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	trade, err := h.composerService.ApplyTemplate(chi.URLParam(r, "sessionId"), tradeID, rfq.Template(req.Template))
	if err != nil {
		h.respondComposerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trade)
}

// GenerateResponse represents the generated message snapshot
type GenerateResponse struct {
	Output string `json:"output"`
}

// Generate handles POST requests to assemble the outgoing message from the
// session's current trades. The result is stored as the session's output
// snapshot and stays as is until the next Generate call.
//
// Endpoint: POST /api/rfq/sessions/{sessionId}/generate
// Response: 200 OK with GenerateResponse
// Error: 404 Not Found if the session does not exist
func (h *ComposerHandler) Generate(w http.ResponseWriter, r *http.Request) {
	output, err := h.composerService.Generate(chi.URLParam(r, "sessionId"))
	if err != nil {
		h.respondComposerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, GenerateResponse{Output: output})
}

// ShareLinks handles GET requests to build the share targets (mailto and
// WhatsApp deep links) for the session's last generated output.
//
// Endpoint: GET /api/rfq/sessions/{sessionId}/share
// Response: 200 OK with rfq.ShareLinks
// Error: 404 Not Found if the session does not exist
func (h *ComposerHandler) ShareLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.composerService.ShareLinks(chi.URLParam(r, "sessionId"))
	if err != nil {
		h.respondComposerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, links)
}

func (h *ComposerHandler) tradeID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "tradeId"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid trade ID", err.Error())
		return 0, false
	}
	return id, true
}

func (h *ComposerHandler) respondComposerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrSessionNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrSessionNotFound.Error(), err.Error())
	case errors.Is(err, apperrors.ErrTradeNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
	case errors.Is(err, apperrors.ErrUnknownLegSlot), errors.Is(err, apperrors.ErrUnknownTemplate):
		response.RespondError(w, http.StatusBadRequest, err.Error(), "")
	default:
		response.RespondError(w, http.StatusInternalServerError, "composer operation failed", err.Error())
	}
}

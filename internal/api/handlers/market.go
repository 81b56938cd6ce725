package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/alcast/backoffice/internal/api/request"
	"github.com/alcast/backoffice/internal/api/response"
	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/service"
	"github.com/alcast/backoffice/internal/validation"
)

// MarketHandler handles market-price and mark-to-market HTTP requests
type MarketHandler struct {
	marketService *service.MarketService
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(marketService *service.MarketService) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
	}
}

// Prices handles GET requests to list recorded prices for a symbol, newest
// first. With latest=true only the most recent observation is returned.
//
// Endpoint: GET /api/market/prices?symbol=LME-AL-3M
// Response: 200 OK with array of MarketPrice (or a single MarketPrice for latest=true)
// Error: 400 Bad Request if the symbol parameter is missing
// Error: 404 Not Found if latest=true and no price exists for the symbol
func (h *MarketHandler) Prices(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "symbol is required")
		return
	}

	if r.URL.Query().Get("latest") == "true" {
		price, err := h.marketService.GetLatestPrice(symbol)
		if err != nil {
			if errors.Is(err, apperrors.ErrMarketPriceNotFound) {
				response.RespondError(w, http.StatusNotFound, apperrors.ErrMarketPriceNotFound.Error(), err.Error())
				return
			}
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveMarketPrices.Error(), err.Error())
			return
		}
		respondJSON(w, http.StatusOK, price)
		return
	}

	prices, err := h.marketService.GetPrices(symbol)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveMarketPrices.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, prices)
}

// RecordPrice handles POST requests to store a price observation. Recording a
// price for a (source, symbol, as-of) triple that already exists replaces it.
//
// Endpoint: POST /api/market/prices
// Request Body: RecordPriceRequest
// Response: 201 Created with MarketPrice
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *MarketHandler) RecordPrice(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.RecordPriceRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateRecordPrice(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	price, err := h.marketService.RecordPrice(model.MarketPrice{
		Source:        req.Source,
		Symbol:        req.Symbol,
		ContractMonth: req.ContractMonth,
		Price:         req.Price,
		Currency:      req.Currency,
		AsOf:          req.AsOf,
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to record market price", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, price)
}

// MTMRecords handles GET requests to read the mark-to-market snapshot for a
// date. The date parameter defaults to today.
//
// Endpoint: GET /api/market/mtm?date=2026-08-31
// Response: 200 OK with array of MTMRecord
// Error: 400 Bad Request if the date is malformed
func (h *MarketHandler) MTMRecords(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	if err := validation.ValidateDate(date); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	records, err := h.marketService.GetMTMRecords(date)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeMTM.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// RunMTM handles POST requests to run the mark-to-market snapshot immediately
// instead of waiting for the scheduled job. A rerun for the same date replaces
// the earlier records.
//
// Endpoint: POST /api/market/mtm
// Response: 200 OK with the array of MTMRecord produced by the run
// Error: 500 Internal Server Error if the valuation fails
func (h *MarketHandler) RunMTM(w http.ResponseWriter, r *http.Request) {
	records, err := h.marketService.RunMTMSnapshot(r.Context(), time.Now().UTC())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeMTM.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, records)
}

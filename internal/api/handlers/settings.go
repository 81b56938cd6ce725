package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alcast/backoffice/internal/api/request"
	"github.com/alcast/backoffice/internal/api/response"
	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/service"
)

// SettingsHandler handles system-settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GatewaySettings handles GET requests to read the messaging gateway
// configuration. The token is returned masked.
//
// Endpoint: GET /api/settings/messaging-gateway
// Response: 200 OK with GatewaySettings
func (h *SettingsHandler) GatewaySettings(w http.ResponseWriter, _ *http.Request) {
	settings, err := h.settingsService.GetGatewaySettings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to read gateway settings", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

// UpdateGatewaySettings handles PUT requests to update the messaging gateway
// configuration. The token is encrypted before it is stored; submitting an
// empty or masked token keeps the stored one.
//
// Endpoint: PUT /api/settings/messaging-gateway
// Request Body: UpdateGatewaySettingsRequest
// Response: 200 OK with GatewaySettings (token masked)
// Error: 400 Bad Request if the request body is invalid
// Error: 503 Service Unavailable if no encryption key is configured
func (h *SettingsHandler) UpdateGatewaySettings(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateGatewaySettingsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "url is required")
		return
	}

	settings, err := h.settingsService.UpdateGatewaySettings(service.GatewaySettings{
		URL:   req.URL,
		Token: req.Token,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrEncryptionUnavailable) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrEncryptionUnavailable.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update gateway settings", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

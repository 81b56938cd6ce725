package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fernet/fernet-go"

	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/repository"
)

// Setting keys. Gateway credentials are encrypted at rest with fernet.
const (
	SettingGatewayURL   = "messaging_gateway_url"
	SettingGatewayToken = "messaging_gateway_token"
)

// GatewaySettings describes the outbound messaging gateway. Token is masked
// when returned to clients.
type GatewaySettings struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

// SettingsService manages system settings, encrypting the messaging gateway
// token before it reaches the database.
type SettingsService struct {
	repo *repository.SettingRepository
	keys []*fernet.Key
}

// NewSettingsService creates a new SettingsService. fernetKey is the base64
// key used for the gateway token; an empty key disables the gateway settings.
func NewSettingsService(repo *repository.SettingRepository, fernetKey string) (*SettingsService, error) {
	s := &SettingsService{repo: repo}

	if fernetKey != "" {
		keys, err := fernet.DecodeKeys(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode fernet key: %w", err)
		}
		s.keys = keys
	}

	return s, nil
}

// GetGatewaySettings returns the gateway configuration with the token masked
// down to its last four characters. Missing settings come back empty.
func (s *SettingsService) GetGatewaySettings() (GatewaySettings, error) {
	url, err := s.repo.GetSetting(SettingGatewayURL)
	if err != nil && !errors.Is(err, apperrors.ErrSettingNotFound) {
		return GatewaySettings{}, err
	}

	token, err := s.gatewayToken()
	if err != nil && !errors.Is(err, apperrors.ErrSettingNotFound) {
		return GatewaySettings{}, err
	}

	return GatewaySettings{URL: url, Token: maskToken(token)}, nil
}

// UpdateGatewaySettings stores the gateway configuration. An empty token
// leaves the stored token unchanged so clients can resubmit the masked form.
func (s *SettingsService) UpdateGatewaySettings(in GatewaySettings) (GatewaySettings, error) {
	if err := s.repo.SetSetting(SettingGatewayURL, in.URL); err != nil {
		return GatewaySettings{}, err
	}

	if in.Token != "" && !strings.HasPrefix(in.Token, "****") {
		if len(s.keys) == 0 {
			return GatewaySettings{}, apperrors.ErrEncryptionUnavailable
		}
		tok, err := fernet.EncryptAndSign([]byte(in.Token), s.keys[0])
		if err != nil {
			return GatewaySettings{}, fmt.Errorf("failed to encrypt gateway token: %w", err)
		}
		if err := s.repo.SetSetting(SettingGatewayToken, string(tok)); err != nil {
			return GatewaySettings{}, err
		}
	}

	return s.GetGatewaySettings()
}

// gatewayToken decrypts the stored token. Tokens do not expire, the key is
// rotated by re-saving the settings.
func (s *SettingsService) gatewayToken() (string, error) {
	stored, err := s.repo.GetSetting(SettingGatewayToken)
	if err != nil {
		return "", err
	}
	if len(s.keys) == 0 {
		return "", apperrors.ErrEncryptionUnavailable
	}

	plain := fernet.VerifyAndDecrypt([]byte(stored), 0, s.keys)
	if plain == nil {
		return "", apperrors.ErrDecryptionFailed
	}
	return string(plain), nil
}

func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

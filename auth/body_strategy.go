package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-contact-bridge/core"
)

const bodyStrategyScope = "read"

type BodySecretStrategyConfig struct {
	ClientID            string
	ClientSecret        string
	RedirectURL         string
	BaseURL             string
	TokenRequestTimeout time.Duration
	HTTPClient          HTTPDoer
}

// BodySecretStrategy talks to the newer token endpoint: a JSON body with the
// client credentials embedded and a fixed read scope.
type BodySecretStrategy struct {
	cfg        BodySecretStrategyConfig
	httpClient HTTPDoer
}

func NewBodySecretStrategy(cfg BodySecretStrategyConfig) (*BodySecretStrategy, error) {
	cfg.ClientID = strings.TrimSpace(cfg.ClientID)
	cfg.ClientSecret = strings.TrimSpace(cfg.ClientSecret)
	cfg.RedirectURL = strings.TrimSpace(cfg.RedirectURL)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.ClientID == "" {
		return nil, core.NewConfigError("auth: client id is required")
	}
	if cfg.ClientSecret == "" {
		return nil, core.NewConfigError("auth: client secret is required")
	}
	if cfg.RedirectURL == "" {
		return nil, core.NewConfigError("auth: redirect url is required")
	}
	if cfg.BaseURL == "" {
		return nil, core.NewConfigError("auth: base url is required")
	}
	if cfg.TokenRequestTimeout <= 0 {
		cfg.TokenRequestTimeout = defaultTokenRequestTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.TokenRequestTimeout}
	}
	return &BodySecretStrategy{cfg: cfg, httpClient: httpClient}, nil
}

func (s *BodySecretStrategy) ExchangeAuthorizationCode(ctx context.Context, code string) (core.TokenResponse, error) {
	if strings.TrimSpace(code) == "" {
		return core.TokenResponse{}, core.NewVendorAuthError("auth: authorization code is required", 0)
	}
	return s.exchange(ctx, map[string]string{
		"grant_type": "authorization_code",
		"code":       strings.TrimSpace(code),
	})
}

func (s *BodySecretStrategy) ExchangeRefreshToken(ctx context.Context, refreshToken string) (core.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return core.TokenResponse{}, core.NewVendorAuthError("auth: refresh token is required", 0)
	}
	return s.exchange(ctx, map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": strings.TrimSpace(refreshToken),
	})
}

func (s *BodySecretStrategy) exchange(ctx context.Context, grant map[string]string) (core.TokenResponse, error) {
	if s == nil {
		return core.TokenResponse{}, fmt.Errorf("auth: body secret strategy is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	payload := map[string]string{
		"client_id":     s.cfg.ClientID,
		"client_secret": s.cfg.ClientSecret,
		"redirect_uri":  s.cfg.RedirectURL,
		"scope":         bodyStrategyScope,
	}
	for key, value := range grant {
		payload[key] = value
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return core.TokenResponse{}, core.WrapVendorAuthError(err, "auth: encode token request")
	}

	requestCtx, cancel := context.WithTimeout(ctx, s.cfg.TokenRequestTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(
		requestCtx,
		http.MethodPost,
		s.cfg.BaseURL+"/oauth/tokens",
		bytes.NewReader(body),
	)
	if err != nil {
		return core.TokenResponse{}, core.WrapVendorAuthError(err, "auth: create token request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	return executeTokenRequest(s.httpClient, httpReq)
}

func (s *BodySecretStrategy) AuthorizeURL() string {
	if s == nil {
		return ""
	}
	values := url.Values{}
	values.Set("client_id", s.cfg.ClientID)
	values.Set("response_type", "code")
	values.Set("redirect_uri", s.cfg.RedirectURL)
	return s.cfg.BaseURL + "/oauth/authorize?" + values.Encode()
}

var _ core.TokenSource = (*BodySecretStrategy)(nil)

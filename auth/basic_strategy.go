package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-contact-bridge/core"
)

type BasicAuthStrategyConfig struct {
	ClientID            string
	ClientSecret        string
	RedirectURL         string
	AuthURL             string
	TokenRequestTimeout time.Duration
	HTTPClient          HTTPDoer
}

// BasicAuthStrategy talks to the legacy token endpoint: form-encoded grant
// parameters with client credentials supplied via HTTP basic auth.
type BasicAuthStrategy struct {
	cfg        BasicAuthStrategyConfig
	httpClient HTTPDoer
}

func NewBasicAuthStrategy(cfg BasicAuthStrategyConfig) (*BasicAuthStrategy, error) {
	cfg.ClientID = strings.TrimSpace(cfg.ClientID)
	cfg.ClientSecret = strings.TrimSpace(cfg.ClientSecret)
	cfg.RedirectURL = strings.TrimSpace(cfg.RedirectURL)
	cfg.AuthURL = strings.TrimRight(strings.TrimSpace(cfg.AuthURL), "/")
	if cfg.ClientID == "" {
		return nil, core.NewConfigError("auth: client id is required")
	}
	if cfg.ClientSecret == "" {
		return nil, core.NewConfigError("auth: client secret is required")
	}
	if cfg.RedirectURL == "" {
		return nil, core.NewConfigError("auth: redirect url is required")
	}
	if cfg.AuthURL == "" {
		return nil, core.NewConfigError("auth: auth url is required")
	}
	if cfg.TokenRequestTimeout <= 0 {
		cfg.TokenRequestTimeout = defaultTokenRequestTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.TokenRequestTimeout}
	}
	return &BasicAuthStrategy{cfg: cfg, httpClient: httpClient}, nil
}

func (s *BasicAuthStrategy) ExchangeAuthorizationCode(ctx context.Context, code string) (core.TokenResponse, error) {
	if strings.TrimSpace(code) == "" {
		return core.TokenResponse{}, core.NewVendorAuthError("auth: authorization code is required", 0)
	}
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", strings.TrimSpace(code))
	return s.exchange(ctx, form)
}

func (s *BasicAuthStrategy) ExchangeRefreshToken(ctx context.Context, refreshToken string) (core.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return core.TokenResponse{}, core.NewVendorAuthError("auth: refresh token is required", 0)
	}
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", strings.TrimSpace(refreshToken))
	return s.exchange(ctx, form)
}

func (s *BasicAuthStrategy) exchange(ctx context.Context, form url.Values) (core.TokenResponse, error) {
	if s == nil {
		return core.TokenResponse{}, fmt.Errorf("auth: basic auth strategy is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	form.Set("redirect_uri", s.cfg.RedirectURL)

	requestCtx, cancel := context.WithTimeout(ctx, s.cfg.TokenRequestTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(
		requestCtx,
		http.MethodPost,
		s.cfg.AuthURL+"/api/oauth2/token",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return core.TokenResponse{}, core.WrapVendorAuthError(err, "auth: create token request")
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(s.cfg.ClientID, s.cfg.ClientSecret)

	return executeTokenRequest(s.httpClient, httpReq)
}

// AuthorizeURL builds the vendor redirect URL. No network call.
func (s *BasicAuthStrategy) AuthorizeURL() string {
	if s == nil {
		return ""
	}
	values := url.Values{}
	values.Set("client_id", s.cfg.ClientID)
	values.Set("response_type", "code")
	values.Set("redirect_uri", s.cfg.RedirectURL)
	return s.cfg.AuthURL + "/api/oauth2/authorize?" + values.Encode()
}

var _ core.TokenSource = (*BasicAuthStrategy)(nil)

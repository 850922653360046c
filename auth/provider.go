package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-contact-bridge/core"
)

const (
	defaultTokenRequestTimeout = 30 * time.Second
	maxTokenResponseBodyBytes  = 1 << 20 // 1 MiB
)

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Provider decodes caller-supplied API keys and delegates token minting to
// the configured strategy.
type Provider struct {
	strategy core.TokenSource
}

func NewProvider(strategy core.TokenSource) (*Provider, error) {
	if strategy == nil {
		return nil, fmt.Errorf("auth: token strategy is required")
	}
	return &Provider{strategy: strategy}, nil
}

// AuthorizeAPIKey validates the colon-delimited API key, extracts the refresh
// token after the first colon, and exchanges it for an access token.
func (p *Provider) AuthorizeAPIKey(ctx context.Context, apiKey string) (core.Authorization, error) {
	if p == nil || p.strategy == nil {
		return core.Authorization{}, fmt.Errorf("auth: provider strategy is not configured")
	}
	trimmed := strings.TrimSpace(apiKey)
	if trimmed == "" {
		return core.Authorization{}, core.NewInvalidAPIKeyError("auth: api key is required")
	}
	_, refreshToken, found := strings.Cut(trimmed, ":")
	if !found || strings.TrimSpace(refreshToken) == "" {
		return core.Authorization{}, core.NewMissingRefreshTokenError(
			"auth: could not extract refresh token from api key",
		)
	}
	token, err := p.strategy.ExchangeRefreshToken(ctx, strings.TrimSpace(refreshToken))
	if err != nil {
		return core.Authorization{}, err
	}
	return core.Authorization{AccessToken: token.AccessToken}, nil
}

func (p *Provider) AuthorizeURL() string {
	if p == nil || p.strategy == nil {
		return ""
	}
	return p.strategy.AuthorizeURL()
}

func (p *Provider) ExchangeAuthorizationCode(ctx context.Context, code string) (core.TokenResponse, error) {
	if p == nil || p.strategy == nil {
		return core.TokenResponse{}, fmt.Errorf("auth: provider strategy is not configured")
	}
	return p.strategy.ExchangeAuthorizationCode(ctx, code)
}

func (p *Provider) ExchangeRefreshToken(ctx context.Context, refreshToken string) (core.TokenResponse, error) {
	if p == nil || p.strategy == nil {
		return core.TokenResponse{}, fmt.Errorf("auth: provider strategy is not configured")
	}
	return p.strategy.ExchangeRefreshToken(ctx, refreshToken)
}

type tokenEndpointPayload struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
}

// executeTokenRequest runs one token-endpoint call and decodes the payload.
// Non-2xx statuses and unparsable bodies surface as vendor auth errors.
func executeTokenRequest(client HTTPDoer, req *http.Request) (core.TokenResponse, error) {
	if client == nil {
		return core.TokenResponse{}, fmt.Errorf("auth: http client is not configured")
	}
	response, err := client.Do(req)
	if err != nil {
		return core.TokenResponse{}, core.WrapVendorAuthError(err, "auth: token request failed")
	}
	defer response.Body.Close()

	body, readErr := io.ReadAll(io.LimitReader(response.Body, maxTokenResponseBodyBytes+1))
	if readErr != nil {
		return core.TokenResponse{}, core.WrapVendorAuthError(readErr, "auth: read token response")
	}
	if int64(len(body)) > maxTokenResponseBodyBytes {
		return core.TokenResponse{}, core.NewVendorAuthError(
			fmt.Sprintf("auth: token response exceeds %d bytes", maxTokenResponseBodyBytes),
			response.StatusCode,
		)
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return core.TokenResponse{}, core.NewVendorAuthError(
			fmt.Sprintf("auth: error in vendor response: %s", response.Status),
			response.StatusCode,
		)
	}

	var payload tokenEndpointPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return core.TokenResponse{}, core.WrapVendorAuthError(err, "auth: decode token response")
	}
	if strings.TrimSpace(payload.AccessToken) == "" {
		return core.TokenResponse{}, core.NewVendorAuthError(
			"auth: token response missing access token",
			response.StatusCode,
		)
	}

	return core.TokenResponse{
		AccessToken:  strings.TrimSpace(payload.AccessToken),
		TokenType:    normalizeTokenType(payload.TokenType),
		RefreshToken: strings.TrimSpace(payload.RefreshToken),
		ExpiresIn:    payload.ExpiresIn,
		Scope:        strings.TrimSpace(payload.Scope),
	}, nil
}

func normalizeTokenType(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return "bearer"
	}
	return normalized
}

var _ core.APIKeyAuthorizer = (*Provider)(nil)
var _ core.TokenSource = (*Provider)(nil)

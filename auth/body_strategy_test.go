package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-contact-bridge/core"
	goerrors "github.com/goliatone/go-errors"
)

func newBodyStrategy(t *testing.T, baseURL string) *BodySecretStrategy {
	t.Helper()
	strategy, err := NewBodySecretStrategy(BodySecretStrategyConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "https://bridge.example/callback",
		BaseURL:      baseURL,
	})
	if err != nil {
		t.Fatalf("new body strategy: %v", err)
	}
	return strategy
}

func TestBodySecretStrategy_ExchangeRefreshTokenSendsCredentialsInBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oauth/tokens" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if _, _, ok := r.BasicAuth(); ok {
			http.Error(w, "unexpected basic auth", http.StatusBadRequest)
			return
		}
		if ct := r.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
			http.Error(w, "expected json body", http.StatusBadRequest)
			return
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if payload["grant_type"] != "refresh_token" || payload["refresh_token"] != "rt_1" {
			http.Error(w, "bad grant", http.StatusBadRequest)
			return
		}
		if payload["client_id"] != "client" || payload["client_secret"] != "secret" {
			http.Error(w, "missing embedded credentials", http.StatusBadRequest)
			return
		}
		if payload["scope"] != "read" {
			http.Error(w, "missing read scope", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "at_1", "token_type": "bearer"})
	}))
	defer server.Close()

	token, err := newBodyStrategy(t, server.URL).ExchangeRefreshToken(context.Background(), "rt_1")
	if err != nil {
		t.Fatalf("exchange refresh token: %v", err)
	}
	if token.AccessToken != "at_1" {
		t.Fatalf("expected at_1, got %q", token.AccessToken)
	}
}

func TestBodySecretStrategy_ExchangeAuthorizationCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if payload["grant_type"] != "authorization_code" || payload["code"] != "code_1" {
			http.Error(w, "bad grant", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "at_2"})
	}))
	defer server.Close()

	token, err := newBodyStrategy(t, server.URL).ExchangeAuthorizationCode(context.Background(), "code_1")
	if err != nil {
		t.Fatalf("exchange code: %v", err)
	}
	if token.AccessToken != "at_2" {
		t.Fatalf("expected at_2, got %q", token.AccessToken)
	}
}

func TestBodySecretStrategy_MissingAccessTokenFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"token_type": "bearer"})
	}))
	defer server.Close()

	_, err := newBodyStrategy(t, server.URL).ExchangeRefreshToken(context.Background(), "rt_1")
	if err == nil {
		t.Fatalf("expected vendor auth error")
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.TextCode != core.ErrorCodeVendorAuthFailed {
		t.Fatalf("expected %q, got %q", core.ErrorCodeVendorAuthFailed, rich.TextCode)
	}
}

func TestBodySecretStrategy_AuthorizeURL(t *testing.T) {
	strategy := newBodyStrategy(t, "https://api.example")
	raw := strategy.AuthorizeURL()
	if !strings.HasPrefix(raw, "https://api.example/oauth/authorize?") {
		t.Fatalf("unexpected authorize url: %q", raw)
	}
	if !strings.Contains(raw, "response_type=code") {
		t.Fatalf("expected response_type=code in %q", raw)
	}
}

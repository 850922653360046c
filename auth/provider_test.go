package auth

import (
	"context"
	"testing"

	"github.com/goliatone/go-contact-bridge/core"
	goerrors "github.com/goliatone/go-errors"
)

type stubStrategy struct {
	exchangeCodeFn    func(ctx context.Context, code string) (core.TokenResponse, error)
	exchangeRefreshFn func(ctx context.Context, refreshToken string) (core.TokenResponse, error)
	authorizeURL      string
}

func (s stubStrategy) ExchangeAuthorizationCode(ctx context.Context, code string) (core.TokenResponse, error) {
	if s.exchangeCodeFn == nil {
		return core.TokenResponse{}, nil
	}
	return s.exchangeCodeFn(ctx, code)
}

func (s stubStrategy) ExchangeRefreshToken(ctx context.Context, refreshToken string) (core.TokenResponse, error) {
	if s.exchangeRefreshFn == nil {
		return core.TokenResponse{}, nil
	}
	return s.exchangeRefreshFn(ctx, refreshToken)
}

func (s stubStrategy) AuthorizeURL() string {
	return s.authorizeURL
}

func TestProvider_AuthorizeAPIKeyExtractsRefreshToken(t *testing.T) {
	var seen string
	provider, err := NewProvider(stubStrategy{
		exchangeRefreshFn: func(_ context.Context, refreshToken string) (core.TokenResponse, error) {
			seen = refreshToken
			return core.TokenResponse{AccessToken: "at_1", TokenType: "bearer"}, nil
		},
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	authz, err := provider.AuthorizeAPIKey(context.Background(), "abc:refreshtok")
	if err != nil {
		t.Fatalf("authorize api key: %v", err)
	}
	if seen != "refreshtok" {
		t.Fatalf("expected refresh token %q, got %q", "refreshtok", seen)
	}
	if authz.AccessToken != "at_1" {
		t.Fatalf("expected access token at_1, got %q", authz.AccessToken)
	}
}

func TestProvider_AuthorizeAPIKeyTakesSegmentAfterFirstColon(t *testing.T) {
	var seen string
	provider, _ := NewProvider(stubStrategy{
		exchangeRefreshFn: func(_ context.Context, refreshToken string) (core.TokenResponse, error) {
			seen = refreshToken
			return core.TokenResponse{AccessToken: "at"}, nil
		},
	})

	if _, err := provider.AuthorizeAPIKey(context.Background(), "user:part1:part2"); err != nil {
		t.Fatalf("authorize api key: %v", err)
	}
	if seen != "part1:part2" {
		t.Fatalf("expected everything after the first colon, got %q", seen)
	}
}

func TestProvider_AuthorizeAPIKeyRejectsEmptyKey(t *testing.T) {
	provider, _ := NewProvider(stubStrategy{})

	_, err := provider.AuthorizeAPIKey(context.Background(), "   ")
	if err == nil {
		t.Fatalf("expected invalid api key error")
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.TextCode != core.ErrorCodeAPIKeyInvalid {
		t.Fatalf("expected %q, got %q", core.ErrorCodeAPIKeyInvalid, rich.TextCode)
	}
}

func TestProvider_AuthorizeAPIKeyRejectsMissingTokenSegment(t *testing.T) {
	provider, _ := NewProvider(stubStrategy{})

	for _, key := range []string{"noColonHere", "trailing:"} {
		_, err := provider.AuthorizeAPIKey(context.Background(), key)
		if err == nil {
			t.Fatalf("expected missing refresh token error for %q", key)
		}
		var rich *goerrors.Error
		if !goerrors.As(err, &rich) {
			t.Fatalf("expected go-errors envelope, got %T", err)
		}
		if rich.TextCode != core.ErrorCodeRefreshTokenMissing {
			t.Fatalf("expected %q for %q, got %q", core.ErrorCodeRefreshTokenMissing, key, rich.TextCode)
		}
	}
}

func TestProvider_AuthorizeAPIKeyPropagatesExchangeFailure(t *testing.T) {
	provider, _ := NewProvider(stubStrategy{
		exchangeRefreshFn: func(context.Context, string) (core.TokenResponse, error) {
			return core.TokenResponse{}, core.NewVendorAuthError("auth: error in vendor response: 401 Unauthorized", 401)
		},
	})

	_, err := provider.AuthorizeAPIKey(context.Background(), "abc:tok")
	if err == nil {
		t.Fatalf("expected exchange failure to propagate")
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.TextCode != core.ErrorCodeVendorAuthFailed {
		t.Fatalf("expected %q, got %q", core.ErrorCodeVendorAuthFailed, rich.TextCode)
	}
}

func TestProvider_ExchangeAuthorizationCodeDelegates(t *testing.T) {
	var seen string
	provider, err := NewProvider(stubStrategy{
		exchangeCodeFn: func(_ context.Context, code string) (core.TokenResponse, error) {
			seen = code
			return core.TokenResponse{AccessToken: "at_1", RefreshToken: "rt_1"}, nil
		},
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	token, err := provider.ExchangeAuthorizationCode(context.Background(), "code_1")
	if err != nil {
		t.Fatalf("exchange authorization code: %v", err)
	}
	if seen != "code_1" {
		t.Fatalf("expected code %q to reach the strategy, got %q", "code_1", seen)
	}
	if token.AccessToken != "at_1" || token.RefreshToken != "rt_1" {
		t.Fatalf("unexpected token response: %#v", token)
	}
}

func TestProvider_ExchangeRefreshTokenDelegates(t *testing.T) {
	var seen string
	provider, _ := NewProvider(stubStrategy{
		exchangeRefreshFn: func(_ context.Context, refreshToken string) (core.TokenResponse, error) {
			seen = refreshToken
			return core.TokenResponse{}, core.NewVendorAuthError("auth: error in vendor response: 400 Bad Request", 400)
		},
	})

	_, err := provider.ExchangeRefreshToken(context.Background(), "rt_raw")
	if err == nil {
		t.Fatalf("expected strategy failure to propagate")
	}
	if seen != "rt_raw" {
		t.Fatalf("expected refresh token %q to reach the strategy, got %q", "rt_raw", seen)
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.TextCode != core.ErrorCodeVendorAuthFailed {
		t.Fatalf("expected %q, got %q", core.ErrorCodeVendorAuthFailed, rich.TextCode)
	}
}

func TestProvider_AuthorizeURLDelegates(t *testing.T) {
	provider, _ := NewProvider(stubStrategy{authorizeURL: "https://auth.example/api/oauth2/authorize?client_id=c"})

	if got := provider.AuthorizeURL(); got != "https://auth.example/api/oauth2/authorize?client_id=c" {
		t.Fatalf("unexpected authorize url: %q", got)
	}
}

func TestNewProvider_RequiresStrategy(t *testing.T) {
	if _, err := NewProvider(nil); err == nil {
		t.Fatalf("expected error for nil strategy")
	}
}

package core

import (
	"context"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

// Adapter is the inbound contract exposed to the hosting bridge framework.
type Adapter interface {
	GetContacts(ctx context.Context, apiKey string) ([]Contact, error)
	CreateContact(ctx context.Context, apiKey string, template ContactTemplate) (*Contact, error)
	UpdateContact(ctx context.Context, apiKey string, update ContactUpdate) (*Contact, error)
	DeleteContact(ctx context.Context, apiKey string, id string) error
	OAuth2RedirectURL() (string, error)
}

// TokenSource exchanges vendor OAuth2 grants for short-lived access tokens.
type TokenSource interface {
	ExchangeAuthorizationCode(ctx context.Context, code string) (TokenResponse, error)
	ExchangeRefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)
	AuthorizeURL() string
}

// APIKeyAuthorizer decodes a caller-supplied API key into a fresh access token.
type APIKeyAuthorizer interface {
	AuthorizeAPIKey(ctx context.Context, apiKey string) (Authorization, error)
	AuthorizeURL() string
}

type TransportRequest struct {
	Method               string
	URL                  string
	Query                map[string]string
	Headers              map[string]string
	Body                 []byte
	Timeout              time.Duration
	MaxResponseBodyBytes int64
}

type TransportResponse struct {
	StatusCode int
	Status     string
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

// TransportAdapter executes one vendor request. Implementations perform a
// single attempt; retry policy is out of scope for this module.
type TransportAdapter interface {
	Kind() string
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger

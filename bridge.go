// Package bridge assembles the vendor contact adapter: a token provider
// selected by auth style, an API dialect selected by configuration, and a
// REST transport, exposed through the normalized adapter contract and a
// command/query facade.
package bridge

import (
	"context"
	"net/http"

	"github.com/goliatone/go-contact-bridge/auth"
	"github.com/goliatone/go-contact-bridge/core"
	"github.com/goliatone/go-contact-bridge/lexoffice"
	"github.com/goliatone/go-contact-bridge/transport"
	glog "github.com/goliatone/go-logger/glog"
)

type Option func(*builder)

type builder struct {
	logger          core.Logger
	loggerProvider  core.LoggerProvider
	httpClient      *http.Client
	transport       core.TransportAdapter
	configProvider  core.ConfigProvider
	optionsResolver core.OptionsResolver
}

func WithLogger(logger core.Logger) Option {
	return func(b *builder) {
		b.logger = logger
	}
}

func WithLoggerProvider(provider core.LoggerProvider) Option {
	return func(b *builder) {
		b.loggerProvider = provider
	}
}

// WithHTTPClient sets the client used for both token exchanges and vendor
// CRUD calls. Ignored for CRUD when a transport adapter is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(b *builder) {
		b.httpClient = client
	}
}

func WithTransport(adapter core.TransportAdapter) Option {
	return func(b *builder) {
		b.transport = adapter
	}
}

// WithConfigProvider loads configuration over the defaults before anything is
// validated. The Config handed to New then acts as runtime overrides, merged
// on top of the loaded values.
func WithConfigProvider(provider core.ConfigProvider) Option {
	return func(b *builder) {
		b.configProvider = provider
	}
}

func WithOptionsResolver(resolver core.OptionsResolver) Option {
	return func(b *builder) {
		b.optionsResolver = resolver
	}
}

// New validates the configuration and wires the adapter service.
func New(cfg core.Config, opts ...Option) (*lexoffice.Client, error) {
	b := builder{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&b)
	}
	if b.configProvider != nil {
		defaults := core.DefaultConfig()
		loaded, err := b.configProvider.Load(context.Background(), defaults)
		if err != nil {
			return nil, err
		}
		resolver := b.optionsResolver
		if resolver == nil {
			resolver = core.GoOptionsResolver{}
		}
		cfg, err = resolver.Resolve(defaults, loaded, cfg)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, logger := glog.Resolve("bridge", b.loggerProvider, b.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("bridge"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	strategy, err := tokenStrategy(cfg, b.httpClient)
	if err != nil {
		return nil, err
	}
	authorizer, err := auth.NewProvider(strategy)
	if err != nil {
		return nil, core.WrapConfigError(err, "bridge: build token provider")
	}

	transportAdapter := b.transport
	if transportAdapter == nil {
		if b.httpClient != nil {
			transportAdapter = transport.NewRESTAdapter(b.httpClient)
		} else {
			transportAdapter = transport.NewRESTAdapter(nil)
		}
	}

	return lexoffice.NewClient(
		lexoffice.ClientConfig{
			BaseURL:           cfg.BaseURL,
			Dialect:           cfg.Dialect,
			DefaultSalutation: cfg.DefaultSalutation,
		},
		authorizer,
		transportAdapter,
		lexoffice.WithClientLogger(logger),
	)
}

func tokenStrategy(cfg core.Config, httpClient *http.Client) (core.TokenSource, error) {
	switch cfg.AuthStyle {
	case core.AuthStyleBody:
		return auth.NewBodySecretStrategy(auth.BodySecretStrategyConfig{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			BaseURL:      cfg.BaseURL,
			HTTPClient:   httpDoer(httpClient),
		})
	default:
		return auth.NewBasicAuthStrategy(auth.BasicAuthStrategyConfig{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			AuthURL:      cfg.AuthURL,
			HTTPClient:   httpDoer(httpClient),
		})
	}
}

func httpDoer(client *http.Client) auth.HTTPDoer {
	if client == nil {
		return nil
	}
	return client
}

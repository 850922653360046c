package core

import (
	"fmt"
	"strings"
)

// Dialect selects which generation of the vendor contact API the client talks
// to. The two generations are not wire compatible.
type Dialect string

const (
	DialectContacts Dialect = "contacts"
	DialectUsers    Dialect = "users"
)

// AuthStyle selects the token-exchange payload shape. The legacy endpoint
// takes client credentials via HTTP basic auth; the newer one embeds them in
// a JSON body.
type AuthStyle string

const (
	AuthStyleBasic AuthStyle = "basic"
	AuthStyleBody  AuthStyle = "body"
)

type Config struct {
	ClientID          string    `koanf:"client_id" mapstructure:"client_id" env:"LEXOFFICE_CLIENT_ID,required"`
	ClientSecret      string    `koanf:"client_secret" mapstructure:"client_secret" env:"LEXOFFICE_CLIENT_SECRET,required"`
	RedirectURL       string    `koanf:"redirect_url" mapstructure:"redirect_url" env:"LEXOFFICE_REDIRECT_URL,required"`
	BaseURL           string    `koanf:"base_url" mapstructure:"base_url" env:"LEXOFFICE_BASE_URL,required"`
	AuthURL           string    `koanf:"auth_url" mapstructure:"auth_url" env:"LEXOFFICE_AUTH_URL"`
	Dialect           Dialect   `koanf:"dialect" mapstructure:"dialect" env:"LEXOFFICE_DIALECT" envDefault:"contacts"`
	AuthStyle         AuthStyle `koanf:"auth_style" mapstructure:"auth_style" env:"LEXOFFICE_AUTH_STYLE" envDefault:"basic"`
	DefaultSalutation string    `koanf:"default_salutation" mapstructure:"default_salutation" env:"LEXOFFICE_DEFAULT_SALUTATION" envDefault:"Herr"`
}

func DefaultConfig() Config {
	return Config{
		Dialect:           DialectContacts,
		AuthStyle:         AuthStyleBasic,
		DefaultSalutation: "Herr",
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return NewConfigError("core: client_id is required")
	}
	if strings.TrimSpace(c.ClientSecret) == "" {
		return NewConfigError("core: client_secret is required")
	}
	if strings.TrimSpace(c.RedirectURL) == "" {
		return NewConfigError("core: redirect_url is required")
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		return NewConfigError("core: base_url is required")
	}
	switch c.Dialect {
	case DialectContacts, DialectUsers:
	default:
		return NewConfigError(fmt.Sprintf("core: unknown dialect %q", string(c.Dialect)))
	}
	switch c.AuthStyle {
	case AuthStyleBasic:
		if strings.TrimSpace(c.AuthURL) == "" {
			return NewConfigError("core: auth_url is required for basic auth style")
		}
	case AuthStyleBody:
	default:
		return NewConfigError(fmt.Sprintf("core: unknown auth style %q", string(c.AuthStyle)))
	}
	return nil
}

// Package query exposes the adapter's reads as go-command queriers.
package query

import "strings"

const (
	TypeListContacts = "bridge.query.contact.list"
	TypeRedirectURL  = "bridge.query.oauth2.redirect_url"
)

type ListContactsMessage struct {
	APIKey string
}

func (ListContactsMessage) Type() string { return TypeListContacts }

func (m ListContactsMessage) Validate() error {
	if strings.TrimSpace(m.APIKey) == "" {
		return queryValidationError("api_key", "api key is required")
	}
	return nil
}

// RedirectURLMessage has no inputs; the consent URL is built from
// configuration alone.
type RedirectURLMessage struct{}

func (RedirectURLMessage) Type() string { return TypeRedirectURL }

func (RedirectURLMessage) Validate() error { return nil }

package query

import (
	"context"

	"github.com/goliatone/go-contact-bridge/core"
)

// ContactReader is the read-only slice of the adapter contract.
type ContactReader interface {
	GetContacts(ctx context.Context, apiKey string) ([]core.Contact, error)
}

// RedirectURLSource builds the vendor consent URL from configuration.
type RedirectURLSource interface {
	OAuth2RedirectURL() (string, error)
}

type ListContactsQuery struct {
	reader ContactReader
}

func NewListContactsQuery(reader ContactReader) *ListContactsQuery {
	return &ListContactsQuery{reader: reader}
}

func (q *ListContactsQuery) Query(ctx context.Context, msg ListContactsMessage) ([]core.Contact, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: contact reader is required")
	}
	return q.reader.GetContacts(ctx, msg.APIKey)
}

type RedirectURLQuery struct {
	source RedirectURLSource
}

func NewRedirectURLQuery(source RedirectURLSource) *RedirectURLQuery {
	return &RedirectURLQuery{source: source}
}

func (q *RedirectURLQuery) Query(_ context.Context, _ RedirectURLMessage) (string, error) {
	if q == nil || q.source == nil {
		return "", queryDependencyError("query: redirect url source is required")
	}
	return q.source.OAuth2RedirectURL()
}

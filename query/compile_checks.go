package query

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-contact-bridge/core"
)

var (
	_ gocmd.Querier[ListContactsMessage, []core.Contact] = (*ListContactsQuery)(nil)
	_ gocmd.Querier[RedirectURLMessage, string]          = (*RedirectURLQuery)(nil)
)

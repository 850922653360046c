package bridge

import (
	"fmt"

	bridgecommand "github.com/goliatone/go-contact-bridge/command"
	bridgequery "github.com/goliatone/go-contact-bridge/query"
)

// AdapterService is the full inbound contract the facade wires up. The
// lexoffice client satisfies it.
type AdapterService interface {
	bridgecommand.ContactWriter
	bridgequery.ContactReader
	bridgequery.RedirectURLSource
}

type Commands struct {
	CreateContact *bridgecommand.CreateContactCommand
	UpdateContact *bridgecommand.UpdateContactCommand
	DeleteContact *bridgecommand.DeleteContactCommand
}

type Queries struct {
	ListContacts *bridgequery.ListContactsQuery
	RedirectURL  *bridgequery.RedirectURLQuery
}

type Facade struct {
	service  AdapterService
	commands Commands
	queries  Queries
}

func NewFacade(service AdapterService) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("bridge: adapter service is required")
	}

	facade := &Facade{service: service}
	facade.commands = Commands{
		CreateContact: bridgecommand.NewCreateContactCommand(service),
		UpdateContact: bridgecommand.NewUpdateContactCommand(service),
		DeleteContact: bridgecommand.NewDeleteContactCommand(service),
	}
	facade.queries = Queries{
		ListContacts: bridgequery.NewListContactsQuery(service),
		RedirectURL:  bridgequery.NewRedirectURLQuery(service),
	}
	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() AdapterService {
	if f == nil {
		return nil
	}
	return f.service
}

package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-contact-bridge/core"
)

// ContactWriter is the mutating slice of the adapter contract.
type ContactWriter interface {
	CreateContact(ctx context.Context, apiKey string, template core.ContactTemplate) (*core.Contact, error)
	UpdateContact(ctx context.Context, apiKey string, update core.ContactUpdate) (*core.Contact, error)
	DeleteContact(ctx context.Context, apiKey string, id string) error
}

type CreateContactCommand struct {
	writer ContactWriter
}

func NewCreateContactCommand(writer ContactWriter) *CreateContactCommand {
	return &CreateContactCommand{writer: writer}
}

func (c *CreateContactCommand) Execute(ctx context.Context, msg CreateContactMessage) error {
	if c == nil || c.writer == nil {
		return commandDependencyError("command: contact writer is required")
	}
	out, err := c.writer.CreateContact(ctx, msg.APIKey, msg.Template)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type UpdateContactCommand struct {
	writer ContactWriter
}

func NewUpdateContactCommand(writer ContactWriter) *UpdateContactCommand {
	return &UpdateContactCommand{writer: writer}
}

func (c *UpdateContactCommand) Execute(ctx context.Context, msg UpdateContactMessage) error {
	if c == nil || c.writer == nil {
		return commandDependencyError("command: contact writer is required")
	}
	out, err := c.writer.UpdateContact(ctx, msg.APIKey, msg.Update)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type DeleteContactCommand struct {
	writer ContactWriter
}

func NewDeleteContactCommand(writer ContactWriter) *DeleteContactCommand {
	return &DeleteContactCommand{writer: writer}
}

func (c *DeleteContactCommand) Execute(ctx context.Context, msg DeleteContactMessage) error {
	if c == nil || c.writer == nil {
		return commandDependencyError("command: contact writer is required")
	}
	return c.writer.DeleteContact(ctx, msg.APIKey, msg.ContactID)
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}

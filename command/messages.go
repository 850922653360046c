// Package command exposes the adapter's mutations as go-command handlers.
package command

import (
	"strings"

	"github.com/goliatone/go-contact-bridge/core"
)

const (
	TypeCreateContact = "bridge.command.contact.create"
	TypeUpdateContact = "bridge.command.contact.update"
	TypeDeleteContact = "bridge.command.contact.delete"
)

type CreateContactMessage struct {
	APIKey   string
	Template core.ContactTemplate
}

func (CreateContactMessage) Type() string { return TypeCreateContact }

func (m CreateContactMessage) Validate() error {
	if strings.TrimSpace(m.APIKey) == "" {
		return commandValidationError("api_key", "api key is required")
	}
	return validatePhoneLabels(m.Template.PhoneNumbers)
}

type UpdateContactMessage struct {
	APIKey string
	Update core.ContactUpdate
}

func (UpdateContactMessage) Type() string { return TypeUpdateContact }

func (m UpdateContactMessage) Validate() error {
	if strings.TrimSpace(m.APIKey) == "" {
		return commandValidationError("api_key", "api key is required")
	}
	if err := m.Update.Validate(); err != nil {
		return commandWrapValidation(err, "command: invalid contact update")
	}
	return validatePhoneLabels(m.Update.PhoneNumbers)
}

type DeleteContactMessage struct {
	APIKey    string
	ContactID string
}

func (DeleteContactMessage) Type() string { return TypeDeleteContact }

func (m DeleteContactMessage) Validate() error {
	if strings.TrimSpace(m.APIKey) == "" {
		return commandValidationError("api_key", "api key is required")
	}
	if strings.TrimSpace(m.ContactID) == "" {
		return commandValidationError("contact_id", "contact id is required")
	}
	return nil
}

func validatePhoneLabels(numbers []core.PhoneNumber) error {
	for _, phone := range numbers {
		if err := phone.Label.Validate(); err != nil {
			return commandWrapValidation(err, "command: invalid phone number label")
		}
	}
	return nil
}

package lexoffice

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-contact-bridge/core"
)

// APIDialect shapes URLs and single-record payloads for one generation of the
// vendor API. The paginated listing envelope is shared across generations.
type APIDialect interface {
	Name() string
	CollectionURL(baseURL string) string
	ItemURL(baseURL string, id string) string
	EncodeRecord(record Record) ([]byte, error)
	DecodeRecord(body []byte) (Record, error)
}

// DialectFor selects the dialect implementation for the configured API
// generation.
func DialectFor(dialect core.Dialect) (APIDialect, error) {
	switch dialect {
	case core.DialectContacts:
		return contactsDialect{}, nil
	case core.DialectUsers:
		return usersDialect{}, nil
	default:
		return nil, core.NewConfigError(fmt.Sprintf("lexoffice: unknown dialect %q", string(dialect)))
	}
}

// contactsDialect is the v1 API. Records travel bare.
type contactsDialect struct{}

func (contactsDialect) Name() string {
	return string(core.DialectContacts)
}

func (contactsDialect) CollectionURL(baseURL string) string {
	return trimBaseURL(baseURL) + "/v1/contacts/"
}

func (contactsDialect) ItemURL(baseURL string, id string) string {
	return trimBaseURL(baseURL) + "/v1/contacts/" + id
}

func (contactsDialect) EncodeRecord(record Record) ([]byte, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, core.WrapMappingError(err, "lexoffice: encode contact record")
	}
	return body, nil
}

func (contactsDialect) DecodeRecord(body []byte) (Record, error) {
	var record Record
	if err := json.Unmarshal(body, &record); err != nil {
		return Record{}, core.WrapMappingError(err, "lexoffice: decode contact record")
	}
	return record, nil
}

// usersDialect is the v2 API. Single records travel inside a "user" envelope.
type usersDialect struct{}

type userEnvelope struct {
	User Record `json:"user"`
}

func (usersDialect) Name() string {
	return string(core.DialectUsers)
}

func (usersDialect) CollectionURL(baseURL string) string {
	return trimBaseURL(baseURL) + "/api/v2/users.json"
}

func (usersDialect) ItemURL(baseURL string, id string) string {
	return trimBaseURL(baseURL) + "/api/v2/users/" + id + ".json"
}

func (usersDialect) EncodeRecord(record Record) ([]byte, error) {
	body, err := json.Marshal(userEnvelope{User: record})
	if err != nil {
		return nil, core.WrapMappingError(err, "lexoffice: encode user record")
	}
	return body, nil
}

func (usersDialect) DecodeRecord(body []byte) (Record, error) {
	var envelope userEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Record{}, core.WrapMappingError(err, "lexoffice: decode user record")
	}
	return envelope.User, nil
}

func decodePage(body []byte) (Page, error) {
	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return Page{}, core.WrapMappingError(err, "lexoffice: decode contact page")
	}
	return page, nil
}

func trimBaseURL(baseURL string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/")
}

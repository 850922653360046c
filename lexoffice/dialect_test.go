package lexoffice

import (
	"strings"
	"testing"

	"github.com/goliatone/go-contact-bridge/core"
)

func TestDialectFor(t *testing.T) {
	if _, err := DialectFor(core.DialectContacts); err != nil {
		t.Fatalf("contacts dialect: %v", err)
	}
	if _, err := DialectFor(core.DialectUsers); err != nil {
		t.Fatalf("users dialect: %v", err)
	}
	if _, err := DialectFor(core.Dialect("v3")); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}

func TestContactsDialectURLs(t *testing.T) {
	dialect := contactsDialect{}
	if got := dialect.CollectionURL("https://api.example/"); got != "https://api.example/v1/contacts/" {
		t.Fatalf("unexpected collection url: %q", got)
	}
	if got := dialect.ItemURL("https://api.example", "c_1"); got != "https://api.example/v1/contacts/c_1" {
		t.Fatalf("unexpected item url: %q", got)
	}
}

func TestContactsDialectRecordsTravelBare(t *testing.T) {
	dialect := contactsDialect{}
	body, err := dialect.EncodeRecord(Record{ID: "c_1", Version: 2})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.Contains(string(body), `"user"`) {
		t.Fatalf("expected bare record, got %s", body)
	}
	record, err := dialect.DecodeRecord(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record.ID != "c_1" || record.Version != 2 {
		t.Fatalf("unexpected record: %#v", record)
	}
}

func TestUsersDialectEnvelope(t *testing.T) {
	dialect := usersDialect{}
	if got := dialect.CollectionURL("https://api.example"); got != "https://api.example/api/v2/users.json" {
		t.Fatalf("unexpected collection url: %q", got)
	}
	if got := dialect.ItemURL("https://api.example", "u_1"); got != "https://api.example/api/v2/users/u_1.json" {
		t.Fatalf("unexpected item url: %q", got)
	}

	body, err := dialect.EncodeRecord(Record{ID: "u_1"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(body), `"user"`) {
		t.Fatalf("expected user envelope, got %s", body)
	}
	record, err := dialect.DecodeRecord(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record.ID != "u_1" {
		t.Fatalf("unexpected record: %#v", record)
	}
}

func TestDecodePageRejectsGarbage(t *testing.T) {
	if _, err := decodePage([]byte("not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}

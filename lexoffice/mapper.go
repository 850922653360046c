package lexoffice

import (
	"strings"
	"unicode"

	"github.com/goliatone/go-contact-bridge/core"
)

// labelMapping pairs a canonical phone label with the vendor's list key.
// Order matters: ToContact emits phone numbers in this declaration order.
type labelMapping struct {
	label core.PhoneNumberLabel
	key   string
}

var phoneLabelMappings = []labelMapping{
	{core.PhoneLabelWork, "business"},
	{core.PhoneLabelMobile, "mobile"},
	{core.PhoneLabelHome, "private"},
	{core.PhoneLabelFax, "fax"},
	{core.PhoneLabelOther, "other"},
}

// emailKeyPriority is the fixed scan order over the vendor's labeled email
// lists when no contact person carries an address.
var emailKeyPriority = []string{"business", "office", "private", "other"}

const fallbackSalutation = "Herr"

// Mapper translates between vendor records and the canonical contact model.
type Mapper struct {
	// DefaultSalutation fills the person subject's required salutation field
	// when the canonical model, which has no such field, cannot supply one.
	DefaultSalutation string
}

func NewMapper(defaultSalutation string) *Mapper {
	if strings.TrimSpace(defaultSalutation) == "" {
		defaultSalutation = fallbackSalutation
	}
	return &Mapper{DefaultSalutation: defaultSalutation}
}

// ToContact converts a vendor record into the canonical model. Archived
// records and records without an id are filtered here and yield nil.
func (m *Mapper) ToContact(record Record) *core.Contact {
	if strings.TrimSpace(record.ID) == "" || record.Archived {
		return nil
	}

	contact := &core.Contact{
		ID:           record.ID,
		Email:        collectEmail(record),
		PhoneNumbers: collectPhoneNumbers(record),
	}
	if record.Company != nil {
		contact.Organization = record.Company.Name
	}
	if person := firstContactPerson(record); person != nil {
		contact.FirstName = person.FirstName
		contact.LastName = person.LastName
	} else if record.Person != nil {
		contact.FirstName = record.Person.FirstName
		contact.LastName = record.Person.LastName
	}
	return contact
}

// FromTemplate builds a fresh vendor record for creation.
func (m *Mapper) FromTemplate(template core.ContactTemplate) Record {
	record := NewRecord()
	first, last := resolveNames(template)

	if strings.TrimSpace(template.Organization) != "" {
		record.SetSubject(CompanySubject{Company: Company{
			Name:           template.Organization,
			ContactPersons: []ContactPerson{{FirstName: first, LastName: last}},
		}})
	} else {
		record.SetSubject(PersonSubject{Person: Person{
			Salutation: m.salutation(),
			FirstName:  first,
			LastName:   last,
		}})
	}

	applyContactDetails(&record, template)
	return record
}

// FromUpdate builds the full record for a PUT from the previously fetched
// one. The vendor replaces the whole record, so everything the caller did
// not touch is carried over from the deep copy.
func (m *Mapper) FromUpdate(update core.ContactUpdate, previous Record) Record {
	record := previous.Clone()
	first, last := resolveNames(update.ContactTemplate)

	if strings.TrimSpace(update.Organization) != "" {
		record.SetSubject(CompanySubject{Company: Company{
			Name:           update.Organization,
			ContactPersons: []ContactPerson{{FirstName: first, LastName: last}},
		}})
	} else if record.Person != nil {
		record.Person.FirstName = first
		record.Person.LastName = last
	}

	applyContactDetails(&record, update.ContactTemplate)
	return record
}

func (m *Mapper) salutation() string {
	if m == nil || strings.TrimSpace(m.DefaultSalutation) == "" {
		return fallbackSalutation
	}
	return m.DefaultSalutation
}

func applyContactDetails(record *Record, template core.ContactTemplate) {
	if strings.TrimSpace(template.Email) != "" {
		record.setLabeledEmail("business", template.Email)
	}
	for _, phone := range template.PhoneNumbers {
		if key, ok := vendorPhoneKey(phone.Label); ok {
			record.setLabeledPhone(key, phone.Number)
		}
	}
}

// resolveNames returns the template's first/last pair, deriving it from the
// combined name when the split fields are empty. "Last, First" wins over the
// whitespace split; a single token becomes the last name.
func resolveNames(template core.ContactTemplate) (string, string) {
	if template.FirstName != "" || template.LastName != "" || template.Name == "" {
		return template.FirstName, template.LastName
	}

	name := strings.TrimSpace(template.Name)
	if before, after, found := strings.Cut(name, ","); found {
		return strings.TrimSpace(after), strings.TrimSpace(before)
	}
	if i := strings.IndexFunc(name, unicode.IsSpace); i >= 0 {
		return name[:i], strings.TrimSpace(name[i:])
	}
	return "", name
}

func collectEmail(record Record) string {
	if person := firstContactPerson(record); person != nil && person.EmailAddress != "" {
		return person.EmailAddress
	}
	for _, key := range emailKeyPriority {
		if addresses := record.EmailAddresses[key]; len(addresses) > 0 {
			return addresses[0]
		}
	}
	return ""
}

func collectPhoneNumbers(record Record) []core.PhoneNumber {
	var numbers []core.PhoneNumber
	if person := firstContactPerson(record); person != nil && person.PhoneNumber != "" {
		numbers = append(numbers, core.PhoneNumber{
			Label:  core.PhoneLabelWork,
			Number: person.PhoneNumber,
		})
	}
	for _, mapping := range phoneLabelMappings {
		for _, number := range record.PhoneNumbers[mapping.key] {
			numbers = append(numbers, core.PhoneNumber{
				Label:  mapping.label,
				Number: number,
			})
		}
	}
	return numbers
}

func firstContactPerson(record Record) *ContactPerson {
	if record.Company == nil || len(record.Company.ContactPersons) == 0 {
		return nil
	}
	return &record.Company.ContactPersons[0]
}

func vendorPhoneKey(label core.PhoneNumberLabel) (string, bool) {
	for _, mapping := range phoneLabelMappings {
		if mapping.label == label {
			return mapping.key, true
		}
	}
	return "", false
}

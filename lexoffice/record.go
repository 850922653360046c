// Package lexoffice talks to the vendor contact API. It holds the wire-level
// record types, the bidirectional mapper between vendor records and the
// canonical contact model, and a CRUD client with sequential pagination.
package lexoffice

// Record is the vendor contact as it travels on the wire. A record is either
// company shaped or person shaped; on write the subject helpers keep the two
// mutually exclusive, on read both may be absent.
type Record struct {
	ID             string              `json:"id,omitempty"`
	OrganizationID string              `json:"organizationId,omitempty"`
	Version        int64               `json:"version"`
	Roles          *Roles              `json:"roles,omitempty"`
	Company        *Company            `json:"company,omitempty"`
	Person         *Person             `json:"person,omitempty"`
	EmailAddresses map[string][]string `json:"emailAddresses,omitempty"`
	PhoneNumbers   map[string][]string `json:"phoneNumbers,omitempty"`
	Archived       bool                `json:"archived,omitempty"`
}

type Roles struct {
	Customer *CustomerRole `json:"customer,omitempty"`
}

type CustomerRole struct {
	Number int64 `json:"number,omitempty"`
}

type Company struct {
	Name           string          `json:"name,omitempty"`
	ContactPersons []ContactPerson `json:"contactPersons,omitempty"`
}

type ContactPerson struct {
	Salutation   string `json:"salutation,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
}

type Person struct {
	Salutation string `json:"salutation,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
}

// Page is one slice of the vendor's paginated contact listing.
type Page struct {
	Content       []Record `json:"content"`
	TotalPages    int      `json:"totalPages"`
	TotalElements int      `json:"totalElements"`
	Size          int      `json:"size"`
	Number        int      `json:"number"`
	First         bool     `json:"first"`
	Last          bool     `json:"last"`
}

// NewRecord returns a fresh record at version zero carrying the customer role
// marker the vendor requires on create.
func NewRecord() Record {
	return Record{
		Version: 0,
		Roles:   &Roles{Customer: &CustomerRole{}},
	}
}

// Clone deep copies the record. Updates must PUT the full record, so the
// mapper starts from a copy of the previously fetched one and never mutates
// the original.
func (r Record) Clone() Record {
	clone := r
	if r.Roles != nil {
		roles := *r.Roles
		if r.Roles.Customer != nil {
			customer := *r.Roles.Customer
			roles.Customer = &customer
		}
		clone.Roles = &roles
	}
	if r.Company != nil {
		company := *r.Company
		if len(r.Company.ContactPersons) > 0 {
			company.ContactPersons = append([]ContactPerson(nil), r.Company.ContactPersons...)
		}
		clone.Company = &company
	}
	if r.Person != nil {
		person := *r.Person
		clone.Person = &person
	}
	clone.EmailAddresses = cloneLabeledLists(r.EmailAddresses)
	clone.PhoneNumbers = cloneLabeledLists(r.PhoneNumbers)
	return clone
}

// Subject assigns the record's company or person shape. Applying one clears
// the other so a record never carries both on write.
type Subject interface {
	applyTo(record *Record)
}

type CompanySubject struct {
	Company Company
}

func (s CompanySubject) applyTo(record *Record) {
	company := s.Company
	if len(company.ContactPersons) > 0 {
		company.ContactPersons = append([]ContactPerson(nil), company.ContactPersons...)
	}
	record.Company = &company
	record.Person = nil
}

type PersonSubject struct {
	Person Person
}

func (s PersonSubject) applyTo(record *Record) {
	person := s.Person
	record.Person = &person
	record.Company = nil
}

func (r *Record) SetSubject(subject Subject) {
	if r == nil || subject == nil {
		return
	}
	subject.applyTo(r)
}

func (r *Record) setLabeledEmail(label string, address string) {
	if r.EmailAddresses == nil {
		r.EmailAddresses = map[string][]string{}
	}
	r.EmailAddresses[label] = []string{address}
}

func (r *Record) setLabeledPhone(label string, number string) {
	if r.PhoneNumbers == nil {
		r.PhoneNumbers = map[string][]string{}
	}
	r.PhoneNumbers[label] = []string{number}
}

func cloneLabeledLists(lists map[string][]string) map[string][]string {
	if lists == nil {
		return nil
	}
	clone := make(map[string][]string, len(lists))
	for label, values := range lists {
		clone[label] = append([]string(nil), values...)
	}
	return clone
}

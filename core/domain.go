package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPhoneNumberLabel = errors.New("core: invalid phone number label")
	ErrContactIDRequired       = errors.New("core: contact id is required")
)

// PhoneNumberLabel is the canonical label set the bridge framework understands.
type PhoneNumberLabel string

const (
	PhoneLabelWork   PhoneNumberLabel = "WORK"
	PhoneLabelMobile PhoneNumberLabel = "MOBILE"
	PhoneLabelHome   PhoneNumberLabel = "HOME"
	PhoneLabelFax    PhoneNumberLabel = "FAX"
	PhoneLabelOther  PhoneNumberLabel = "OTHER"
)

func (l PhoneNumberLabel) Validate() error {
	switch l {
	case PhoneLabelWork, PhoneLabelMobile, PhoneLabelHome, PhoneLabelFax, PhoneLabelOther:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPhoneNumberLabel, string(l))
	}
}

type PhoneNumber struct {
	Label  PhoneNumberLabel
	Number string
}

// Contact is the normalized representation handed to the bridge framework.
// It is produced from vendor data and never persisted by this module.
type Contact struct {
	ID           string
	Name         string
	FirstName    string
	LastName     string
	Email        string
	Organization string
	ContactURL   string
	AvatarURL    string
	PhoneNumbers []PhoneNumber
}

// ContactTemplate is partial contact data supplied by the caller on create.
// It may carry only a combined Name without a first/last split.
type ContactTemplate struct {
	Name         string
	FirstName    string
	LastName     string
	Email        string
	Organization string
	PhoneNumbers []PhoneNumber
}

// ContactUpdate is a template addressed at an existing vendor contact.
type ContactUpdate struct {
	ID string
	ContactTemplate
}

func (u ContactUpdate) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return ErrContactIDRequired
	}
	return nil
}

// TokenResponse is the vendor token endpoint payload. It is held only for the
// duration of one adapter operation; there is no caching layer.
type TokenResponse struct {
	AccessToken  string
	TokenType    string
	RefreshToken string
	ExpiresIn    int64
	Scope        string
}

// Authorization carries the short-lived access token minted for one operation.
type Authorization struct {
	AccessToken string
}

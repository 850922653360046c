package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorCodeBadInput            = "CONTACTS_BAD_INPUT"
	ErrorCodeConfigInvalid       = "CONTACTS_CONFIG_INVALID"
	ErrorCodeAPIKeyInvalid       = "CONTACTS_API_KEY_INVALID"
	ErrorCodeRefreshTokenMissing = "CONTACTS_REFRESH_TOKEN_MISSING"
	ErrorCodeVendorAuthFailed    = "CONTACTS_VENDOR_AUTH_FAILED"
	ErrorCodeVendorRequestFailed = "CONTACTS_VENDOR_REQUEST_FAILED"
	ErrorCodeMappingFailed       = "CONTACTS_MAPPING_FAILED"
	ErrorCodeInternal            = "CONTACTS_INTERNAL_ERROR"
)

// NewConfigError reports missing or inconsistent configuration. Fatal for the
// operation that tripped it.
func NewConfigError(message string) error {
	return ensureErrorEnvelope(
		goerrors.New(message, goerrors.CategoryValidation).
			WithTextCode(ErrorCodeConfigInvalid).
			WithCode(http.StatusInternalServerError),
	)
}

func WrapConfigError(source error, message string) error {
	if source == nil {
		return NewConfigError(message)
	}
	return ensureErrorEnvelope(
		goerrors.Wrap(source, goerrors.CategoryValidation, message).
			WithTextCode(ErrorCodeConfigInvalid).
			WithCode(http.StatusInternalServerError),
	)
}

// NewInvalidAPIKeyError reports a malformed caller-supplied credential.
func NewInvalidAPIKeyError(message string) error {
	return ensureErrorEnvelope(
		goerrors.New(message, goerrors.CategoryBadInput).
			WithTextCode(ErrorCodeAPIKeyInvalid).
			WithCode(http.StatusBadRequest),
	)
}

// NewMissingRefreshTokenError reports an API key without a token segment.
func NewMissingRefreshTokenError(message string) error {
	return ensureErrorEnvelope(
		goerrors.New(message, goerrors.CategoryBadInput).
			WithTextCode(ErrorCodeRefreshTokenMissing).
			WithCode(http.StatusBadRequest),
	)
}

// NewVendorAuthError reports a non-success status or unparsable body from the
// vendor token endpoint.
func NewVendorAuthError(message string, statusCode int) error {
	err := goerrors.New(message, goerrors.CategoryAuth).
		WithTextCode(ErrorCodeVendorAuthFailed).
		WithCode(http.StatusUnauthorized)
	if statusCode > 0 {
		err.WithMetadata(map[string]any{"vendor_status": statusCode})
	}
	return ensureErrorEnvelope(err)
}

func WrapVendorAuthError(source error, message string) error {
	if source == nil {
		return NewVendorAuthError(message, 0)
	}
	return ensureErrorEnvelope(
		goerrors.Wrap(source, goerrors.CategoryAuth, message).
			WithTextCode(ErrorCodeVendorAuthFailed).
			WithCode(http.StatusUnauthorized),
	)
}

// NewVendorRequestError reports a non-success status from a vendor CRUD or
// list call. The message carries the vendor's status text.
func NewVendorRequestError(message string, statusCode int) error {
	err := goerrors.New(message, goerrors.CategoryExternal).
		WithTextCode(ErrorCodeVendorRequestFailed).
		WithCode(http.StatusBadGateway)
	if statusCode > 0 {
		err.WithMetadata(map[string]any{"vendor_status": statusCode})
	}
	return ensureErrorEnvelope(err)
}

// NewMappingError reports a vendor record that could not be translated into
// the canonical model.
func NewMappingError(message string) error {
	return ensureErrorEnvelope(
		goerrors.New(message, goerrors.CategoryOperation).
			WithTextCode(ErrorCodeMappingFailed).
			WithCode(http.StatusBadGateway),
	)
}

func WrapMappingError(source error, message string) error {
	if source == nil {
		return NewMappingError(message)
	}
	return ensureErrorEnvelope(
		goerrors.Wrap(source, goerrors.CategoryOperation, message).
			WithTextCode(ErrorCodeMappingFailed).
			WithCode(http.StatusBadGateway),
	)
}

// AdapterErrorMapper normalizes any error into the module's envelope shape.
func AdapterErrorMapper(err error) *goerrors.Error {
	if err == nil {
		return nil
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureRichEnvelope(richErr)
	}
	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureRichEnvelope(mapped)
}

func ensureErrorEnvelope(err *goerrors.Error) error {
	return ensureRichEnvelope(err)
}

func ensureRichEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = adapterHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultAdapterTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultAdapterTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput:
		return ErrorCodeBadInput
	case goerrors.CategoryValidation:
		return ErrorCodeConfigInvalid
	case goerrors.CategoryAuth, goerrors.CategoryAuthz:
		return ErrorCodeVendorAuthFailed
	case goerrors.CategoryExternal:
		return ErrorCodeVendorRequestFailed
	case goerrors.CategoryOperation:
		return ErrorCodeMappingFailed
	default:
		return ErrorCodeInternal
	}
}

func adapterHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryExternal, goerrors.CategoryOperation:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

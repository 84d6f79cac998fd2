package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
)

// PublicHTTPErrorType discriminates machine-readable error classes exposed to
// API consumers.
type PublicHTTPErrorType string

const (
	// PublicHTTPErrorTypeGeneric is the default error type.
	PublicHTTPErrorTypeGeneric PublicHTTPErrorType = "generic"
	// PublicHTTPErrorTypeKeyringLocked marks operations attempted before the
	// keyring was initialized.
	PublicHTTPErrorTypeKeyringLocked PublicHTTPErrorType = "KEYRING_LOCKED"
	// PublicHTTPErrorTypeKeyNotFound marks operations on a public key no
	// source owns.
	PublicHTTPErrorTypeKeyNotFound PublicHTTPErrorType = "KEY_NOT_FOUND"
)

// PublicHTTPError is the wire form of a plain HTTP error.
type PublicHTTPError struct {
	// HTTP status code
	Code *int64 `json:"status"`
	// Machine-readable error type
	Type *string `json:"type"`
	// Human-readable title
	Title *string `json:"title"`
	// Optional human-readable detail
	Detail string `json:"detail,omitempty"`
}

// Validate validates this public HTTP error.
func (m *PublicHTTPError) Validate(_ strfmt.Registry) error {
	if m.Code == nil {
		return errors.Required("status", "body", nil)
	}

	if m.Type == nil {
		return errors.Required("type", "body", nil)
	}

	if m.Title == nil {
		return errors.Required("title", "body", nil)
	}

	return nil
}

// HTTPValidationErrorDetail describes one failed payload field.
type HTTPValidationErrorDetail struct {
	// Name of the offending field
	Key *string `json:"key"`
	// Location of the offending field
	In *string `json:"in"`
	// Description of the failure
	Error *string `json:"error"`
}

// PublicHTTPValidationError is the wire form of a payload validation failure.
type PublicHTTPValidationError struct {
	PublicHTTPError

	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

// Validate validates this public HTTP validation error.
func (m *PublicHTTPValidationError) Validate(formats strfmt.Registry) error {
	return m.PublicHTTPError.Validate(formats)
}

// NewValidationErrorDetail builds a single validation error detail for a body
// field.
func NewValidationErrorDetail(key string, reason string) *HTTPValidationErrorDetail {
	return &HTTPValidationErrorDetail{
		Key:   swag.String(key),
		In:    swag.String("body"),
		Error: swag.String(reason),
	}
}

package wifiqr

import (
	"errors"
	"strings"
)

// Build errors. BuildError.Kind is always one of these.
var (
	ErrMissingSSID              = errors.New("missing ssid")
	ErrMissingPassword          = errors.New("missing password")
	ErrMissingSSIDAndPassword   = errors.New("missing ssid and password")
	ErrMissingIdentity          = errors.New("missing identity")
	ErrMissingAnonymousIdentity = errors.New("missing anonymous identity")
)

// Field names a required configuration field.
type Field uint8

const (
	FieldSSID Field = iota
	FieldIdentity
	FieldAnonymousIdentity
	FieldPassword
)

// String returns the field name as used in payload descriptions.
func (f Field) String() string {
	switch f {
	case FieldSSID:
		return "ssid"
	case FieldIdentity:
		return "identity"
	case FieldAnonymousIdentity:
		return "anonymous_identity"
	case FieldPassword:
		return "password"
	default:
		return "unknown"
	}
}

// BuildError reports required fields that were never set on a builder.
type BuildError struct {
	// Scheme of the builder that failed.
	Scheme Scheme

	// Kind is the sentinel error selected for this failure.
	Kind error

	// Missing holds every absent required field in validation order.
	Missing []Field
}

// Error implements error.
func (e *BuildError) Error() string {
	return strings.ToLower(e.Scheme.String()) + ": " + e.Kind.Error()
}

// Unwrap returns Kind so callers can use errors.Is.
func (e *BuildError) Unwrap() error {
	return e.Kind
}

// Has reports whether f is among the missing fields.
func (e *BuildError) Has(f Field) bool {
	for _, m := range e.Missing {
		if m == f {
			return true
		}
	}
	return false
}

// MissingNames returns the missing field names.
func (e *BuildError) MissingNames() []string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.String()
	}
	return names
}

// credentialError selects the kind for schemes that require ssid and password.
func credentialError(scheme Scheme, hasSSID, hasPassword bool) error {
	switch {
	case !hasSSID && !hasPassword:
		return &BuildError{Scheme: scheme, Kind: ErrMissingSSIDAndPassword, Missing: []Field{FieldSSID, FieldPassword}}
	case !hasSSID:
		return &BuildError{Scheme: scheme, Kind: ErrMissingSSID, Missing: []Field{FieldSSID}}
	case !hasPassword:
		return &BuildError{Scheme: scheme, Kind: ErrMissingPassword, Missing: []Field{FieldPassword}}
	default:
		return nil
	}
}

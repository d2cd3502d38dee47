package eflr

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by *ValueError.
var (
	ErrInvalidCount      = errors.New("invalid count")
	ErrInvalidCode       = errors.New("invalid representation code")
	ErrInvalidCharset    = errors.New("invalid character set")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrOutOfRange        = errors.New("out of range")
	ErrUnitNotRecognized = errors.New("unit not recognized")
)

// ValueError reports an attribute value outside its domain.
type ValueError struct {
	Label string
	Kind  error
	Cause string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("eflr: attribute %s: %s: %s", e.Label, e.Kind, e.Cause)
}

func (e *ValueError) Unwrap() error { return e.Kind }

func valueErr(label string, kind error, cause string) error {
	return &ValueError{Label: label, Kind: kind, Cause: cause}
}

// SchemaError reports a structural inconsistency in a set: an unknown
// attribute label, or items whose templates disagree.
type SchemaError struct {
	SetType string
	Detail  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("eflr: set %s: %s", e.SetType, e.Detail)
}

// ReferenceError reports a reference that cannot be emitted: a dangling
// object or an unassigned origin.
type ReferenceError struct {
	Object string
	Detail string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("eflr: %s: %s", e.Object, e.Detail)
}

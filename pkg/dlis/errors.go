package dlis

import (
	"fmt"

	"github.com/samcharles93/dlis/pkg/dlis/eflr"
	"github.com/samcharles93/dlis/pkg/dlis/frames"
	"github.com/samcharles93/dlis/pkg/rp66"
)

// Error types surfaced by the lower layers, re-exported so callers can
// match the whole taxonomy from this package.
type (
	// ValueError reports an attribute or name outside its domain.
	ValueError = eflr.ValueError
	// SchemaError reports items of a set with mismatched templates.
	SchemaError = eflr.SchemaError
	// ReferenceError reports a dangling object or origin reference.
	ReferenceError = eflr.ReferenceError
	// DataError reports a missing or misshapen source dataset.
	DataError = frames.DataError
	// EncodeError reports a value outside the domain of its code.
	EncodeError = rp66.EncodeError
)

// ConfigError reports an impossible writer setup, such as a visible
// record length outside the standard's bounds.
type ConfigError struct {
	Detail string
}

func (e *ConfigError) Error() string {
	return "dlis: " + e.Detail
}

func configErr(format string, args ...any) error {
	return &ConfigError{Detail: fmt.Sprintf(format, args...)}
}

// OrderError reports a record ordering violation: a referent that would
// be emitted after its referrer.
type OrderError struct {
	Detail string
}

func (e *OrderError) Error() string {
	return "dlis: " + e.Detail
}

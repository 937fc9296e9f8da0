// Package memerr defines the error taxonomy shared by the tool layer, the
// CLI, and the engines. Every failure that crosses a package boundary is
// classified by Kind so callers can map it to an exit code or tool error
// without string matching.
package memerr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for boundary handling.
type Kind string

const (
	// KindValidation marks caller mistakes: bad arguments, out-of-range
	// limits, wrong slot counts.
	KindValidation Kind = "validation"

	// KindNotFound marks lookups of unknown template or category IDs.
	KindNotFound Kind = "not_found"

	// KindUpstream marks failures of external collaborators: the render
	// service or a fetched URL.
	KindUpstream Kind = "upstream"

	// KindConsistency marks internal catalog corruption detected at
	// startup. It is never the caller's fault.
	KindConsistency Kind = "consistency"
)

// Error carries a kind, the offending field or subject, and an optional
// wrapped cause.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validationf builds a validation error for the named argument.
func Validationf(field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error for the named subject.
func NotFoundf(field, format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Upstreamf builds an upstream error, wrapping the transport cause when one
// exists.
func Upstreamf(err error, field, format string, args ...any) *Error {
	return &Error{Kind: KindUpstream, Field: field, Message: fmt.Sprintf(format, args...), Err: err}
}

// Consistencyf builds a consistency error for corrupt catalog data.
func Consistencyf(field, format string, args ...any) *Error {
	return &Error{Kind: KindConsistency, Field: field, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err, or an empty Kind for errors outside the
// taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsUpstream reports whether err is an upstream error.
func IsUpstream(err error) bool { return KindOf(err) == KindUpstream }

// IsConsistency reports whether err is a consistency error.
func IsConsistency(err error) bool { return KindOf(err) == KindConsistency }

package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode  Phase = "decode"  // wire bytes to value
	PhaseEncode  Phase = "encode"  // value to wire bytes
	PhaseScan    Phase = "scan"    // TLV container framing
	PhaseCompare Phase = "compare" // value comparison
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedLength Kind = "malformed_length"
	KindTruncated       Kind = "truncated"
	KindUnencodable     Kind = "unencodable"
	KindUnsupported     Kind = "unsupported"
	KindInvalidData     Kind = "invalid_data"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindOverflow        Kind = "overflow"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Code   uint16 // TLV type code, 0 when not tied to one TLV
	Offset int    // byte offset of the failure, -1 when unknown
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Code != 0 {
		fmt.Fprintf(&b, " (tlv %d)", e.Code)
	}
	if e.Offset > 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// TypeCode sets the TLV type code
func (b *Builder) TypeCode(code uint16) *Builder {
	b.err.Code = code
	return b
}

// Offset sets the byte offset of the failure
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedLength reports a payload whose length cannot hold a whole number
// of fixed-size records.
func MalformedLength(code uint16, length int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedLength,
		Code:   code,
		Offset: -1,
		Detail: fmt.Sprintf("payload length %d is not a multiple of the record size", length),
		Value:  length,
	}
}

// Truncated reports input that ended before a complete field could be read.
func Truncated(phase Phase, offset, need, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Offset: offset,
		Detail: fmt.Sprintf("need %d bytes, have %d", need, have),
	}
}

// Unencodable reports a value that has no packed form to re-emit.
func Unencodable(code uint16) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnencodable,
		Code:   code,
		Offset: -1,
		Detail: "value was not decoded from wire bytes and cannot be packed",
	}
}

// UnsupportedOrdering reports an ordering comparison on a type that defines
// no total order.
func UnsupportedOrdering(code uint16) *Error {
	return &Error{
		Phase:  PhaseCompare,
		Kind:   KindUnsupported,
		Code:   code,
		Offset: -1,
		Detail: "no ordering is defined for this type",
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Offset: -1,
		Detail: detail,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Offset: -1,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, value any, targetType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Offset: -1,
		Detail: fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:  value,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}

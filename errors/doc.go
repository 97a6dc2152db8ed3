// Package errors provides structured error types for the bgpls library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes codec context: the TLV type
// code, the byte offset of the failure, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindMalformedLength).
//		TypeCode(263).
//		Detail("payload length %d is odd", n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MalformedLength(263, n)
//	err := errors.Truncated(errors.PhaseScan, offset, need, have)
//
// All errors implement the standard error interface and support
// errors.Is/As; Is matches on Phase and Kind so callers can test for an
// error category without comparing message text.
package errors

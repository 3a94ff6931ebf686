// Package errors provides error handling for the spaces library.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Structured assertion failures for contract violations
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := decode(data); err != nil {
//	    return errors.Wrap(err, "failed to decode descriptor")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrMissingField) {
//	    // handle malformed input
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions and panics
var (
	AssertionFailedf    = crdb.AssertionFailedf
	HasAssertionFailure = crdb.HasAssertionFailure
)

// Common sentinel errors for the spaces library.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrMissingField indicates a serialized record lacks a required field
	ErrMissingField = New("missing field")

	// ErrDuplicateField indicates a serialized record repeats a field
	ErrDuplicateField = New("duplicate field")

	// ErrUnknownField indicates a serialized record carries a field the
	// type contract does not define
	ErrUnknownField = New("unknown field")

	// ErrUnknownKind indicates a descriptor names a space type that does
	// not exist
	ErrUnknownKind = New("unknown space kind")

	// ErrUnsupportedSample indicates a space has no uniform sampling
	// procedure over its value set
	ErrUnsupportedSample = New("sampling not supported")

	// ErrEmptySpace indicates an operation that is undefined on a space
	// with no values
	ErrEmptySpace = New("empty space")

	// ErrDimMismatch indicates two spaces of different dimensionality were
	// combined
	ErrDimMismatch = New("dimensionality mismatch")
)

// Package errors provides error handling for webidl.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//   - Assertion failures for broken internal invariants
//
// Usage:
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnresolvedType) {
//	    // skip the declaration
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
	Mark         = crdb.Mark
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
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf   = crdb.AssertionFailedf
	IsAssertionFailure = crdb.IsAssertionFailure
)

// Sentinel errors shared by the resolver, the lowering pass and the document
// decoder. Wrap them with errors.Wrap to add context while keeping errors.Is.
// Sentinels match by message, so every message here must stay distinct.
var (
	// ErrUnresolvedType indicates an identifier that is not a typedef,
	// interface, dictionary or enum
	ErrUnresolvedType = New("unresolved type")

	// ErrTypedefCycle indicates a typedef that expands back into itself
	ErrTypedefCycle = New("typedef cycle")

	// ErrUnrepresentable indicates a canonical type with no target type mapping
	ErrUnrepresentable = New("unrepresentable type")

	// ErrDuplicateDefinition indicates a name registered twice in the symbol table
	ErrDuplicateDefinition = New("duplicate definition")

	// ErrInvalidDocument indicates a malformed declaration document
	ErrInvalidDocument = New("invalid document")

	// ErrUnsupportedFormat indicates a document format version this build cannot read
	ErrUnsupportedFormat = New("unsupported document format")
)

// IsUnresolvedTypeError checks if an error is or wraps ErrUnresolvedType
func IsUnresolvedTypeError(err error) bool {
	return err != nil && Is(err, ErrUnresolvedType)
}

// IsUnrepresentableError checks if an error is or wraps ErrUnrepresentable
func IsUnrepresentableError(err error) bool {
	return err != nil && Is(err, ErrUnrepresentable)
}

// IsInvalidDocumentError checks if an error is or wraps ErrInvalidDocument
func IsInvalidDocumentError(err error) bool {
	return err != nil && Is(err, ErrInvalidDocument)
}

// NewUnresolvedTypeError creates an unresolved-type error naming the identifier
func NewUnresolvedTypeError(name string) error {
	return Wrapf(ErrUnresolvedType, "%q", name)
}

// NewInvalidDocumentError creates an invalid-document error with a formatted message
func NewInvalidDocumentError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidDocument, Newf(format, args...).Error())
}

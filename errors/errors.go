// Package errors provides error handling for Lattix.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := buildType(); err != nil {
//	    return errors.Wrap(err, "failed to build type")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrCyclicInheritance) {
//	    // reject the definition
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
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	Mark       = crdb.Mark
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll
)

// Assertions and diagnostics
var (
	AssertionFailedf        = crdb.AssertionFailedf
	GetReportableStackTrace = crdb.GetReportableStackTrace
)

// GetStack is an alias for GetReportableStackTrace for convenience.
var GetStack = crdb.GetReportableStackTrace

// Sentinel errors for the trait composition engine.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNotFound indicates a type name could not be resolved
	ErrNotFound = New("type not found")

	// ErrDuplicateAttribute indicates two attributes declared directly on the
	// same type share a name
	ErrDuplicateAttribute = New("duplicate attribute")

	// ErrUnsupportedCategory indicates an attribute's data category is outside
	// the recognized set
	ErrUnsupportedCategory = New("unsupported data category")

	// ErrCyclicInheritance indicates a supertrait chain revisits a type
	ErrCyclicInheritance = New("cyclic inheritance")

	// ErrUnknownAncestor indicates a downcast target is not a reachable ancestor
	ErrUnknownAncestor = New("unknown ancestor")

	// ErrAmbiguousDowncast indicates more than one inheritance path reaches
	// the downcast target
	ErrAmbiguousDowncast = New("ambiguous downcast")

	// ErrTypeMismatch indicates an instance's declared type differs from the
	// type performing the cast
	ErrTypeMismatch = New("type mismatch")

	// ErrReadOnlyFacet indicates a write was attempted through a facet view
	ErrReadOnlyFacet = New("facet views are read-only")

	// ErrDuplicateType indicates a type name is already registered
	ErrDuplicateType = New("type already registered")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsDefinitionError checks if an error signals an invalid type definition
// (as opposed to an invalid call site).
func IsDefinitionError(err error) bool {
	return err != nil && IsAny(err,
		ErrDuplicateAttribute,
		ErrUnsupportedCategory,
		ErrCyclicInheritance,
		ErrDuplicateType,
	)
}

// IsCastError checks if an error signals an invalid downcast call.
func IsCastError(err error) bool {
	return err != nil && IsAny(err,
		ErrUnknownAncestor,
		ErrAmbiguousDowncast,
		ErrTypeMismatch,
	)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

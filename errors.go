// Package sdx compiles SHACL shape declarations into a GraphQL schema.
//
// The heavy lifting lives in the sub packages:
//
//	rdf              statement model, decoding and the triple index
//	compiler/load    reading shape documents from a file or directory
//	compiler/gen     shape extraction, property resolution, schema synthesis
//	contrib/graphql  SDL printing and gqlgen integration
//	compiler         the end-to-end generate run
//
// This package only holds the errors shared between them.
package sdx

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common operations.
var (
	// ErrNoShapes is returned when the source holds no shape documents or no
	// node shapes. Callers usually react by removing previously generated output
	// rather than reporting a failure.
	ErrNoShapes = errors.New("sdx: no shacl shapes")

	// ErrNotSingular is returned when a lookup that expects exactly one result
	// returns zero or multiple results.
	ErrNotSingular = errors.New("sdx: lookup not singular")
)

// IsNoShapes reports whether err is, or wraps, ErrNoShapes.
func IsNoShapes(err error) bool {
	return errors.Is(err, ErrNoShapes)
}

// NotSingularError represents a lookup that expected a single match
// but found zero or several.
type NotSingularError struct {
	label string
	count int
}

// Error returns the error string.
func (e *NotSingularError) Error() string {
	return fmt.Sprintf("sdx: %s not singular (got %d matches, expected 1)", e.label, e.count)
}

// Is reports whether the target error matches NotSingularError.
// This allows errors.Is(notSingularErr, ErrNotSingular) to return true.
func (e *NotSingularError) Is(err error) bool {
	return err == ErrNotSingular
}

// Label returns the looked up label.
func (e *NotSingularError) Label() string {
	return e.label
}

// Count returns the number of matches.
func (e *NotSingularError) Count() int {
	return e.count
}

// NewNotSingularError returns a new NotSingularError with the match count.
func NewNotSingularError(label string, count int) *NotSingularError {
	return &NotSingularError{label: label, count: count}
}

// IsNotSingular returns true if the error is a NotSingularError.
func IsNotSingular(err error) bool {
	if err == nil {
		return false
	}
	var e *NotSingularError
	return errors.As(err, &e) || errors.Is(err, ErrNotSingular)
}

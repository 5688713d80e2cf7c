package network

import (
	"errors"
	"fmt"
)

// Domain errors for reaction-network operations.
var (
	// ErrUnknownPID indicates a query referenced a PID not in the network.
	ErrUnknownPID = errors.New("network: unknown PID")

	// ErrDuplicatePID indicates a catalog tried to register the same PID twice.
	ErrDuplicatePID = errors.New("network: duplicate PID")

	// ErrEmptyReactants indicates a reaction was built with no reactants.
	ErrEmptyReactants = errors.New("network: reaction has no reactants")

	// ErrEmptyProducts indicates a reaction was built with no products.
	ErrEmptyProducts = errors.New("network: reaction has no products")

	// ErrSelfLoop indicates a decay product references its own parent.
	ErrSelfLoop = errors.New("network: decay product is its own parent")

	// ErrNegativeRate indicates a reaction was built with rate < 0.
	ErrNegativeRate = errors.New("network: negative reaction rate")
)

// ParseError wraps a catalog line that failed to parse, reporting the
// offending file, line number, and text alongside the underlying cause.
type ParseError struct {
	File    string
	Line    int
	Text    string
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v (%q)", e.File, e.Line, e.Wrapped, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

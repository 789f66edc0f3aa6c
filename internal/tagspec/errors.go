package tagspec

import (
	"errors"
	"fmt"
)

// Sentinel parse failures. Match them with errors.Is against a *ParseError.
var (
	// ErrMalformedName is returned when input ends before an unescaped '='
	// terminates the tag name.
	ErrMalformedName = errors.New("missing '=' after tag name")

	// ErrUnterminatedQuote is returned when a quoted value has no closing quote.
	ErrUnterminatedQuote = errors.New("unterminated quoted value")

	// ErrTrailingContent is returned when something other than ';' follows a
	// quoted value list.
	ErrTrailingContent = errors.New("unexpected content after quoted values")
)

// ParseError reports where in a tag specification parsing stopped.
//
// Offset counts runes from the start of the input, not bytes, so it lines up
// with what the user typed on the command line.
type ParseError struct {
	Offset int   // Rune offset of the failing entry or character
	Err    error // One of the Err* sentinels
}

// Error returns the error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("tagspec: offset %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying sentinel so errors.Is works.
func (e *ParseError) Unwrap() error {
	return e.Err
}

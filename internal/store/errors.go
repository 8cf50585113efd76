// ABOUTME: Error kinds raised by the study log store
// ABOUTME: Each kind reports a stable name used by the error journal
package store

import (
	"errors"
	"fmt"
)

// ErrInvalidHours is returned by Append when hours is negative, NaN or infinite.
var ErrInvalidHours = errors.New("hours must be a non-negative finite number")

// InputFormatError reports user input that does not match the expected shape.
type InputFormatError struct {
	Field  string
	Input  string
	Reason string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Reason)
}

// Kind returns the journal name of the error.
func (e *InputFormatError) Kind() string { return "InputFormatError" }

// ParseError reports a data row that cannot be decoded.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("line %d: invalid %s %q", e.Line, e.Field, e.Value)
	}
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Kind returns the journal name of the error.
func (e *ParseError) Kind() string { return "ParseError" }

// MissingFileError is returned when the data file has not been initialized.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("data file not found: %s", e.Path)
}

// Kind returns the journal name of the error.
func (e *MissingFileError) Kind() string { return "MissingFileError" }

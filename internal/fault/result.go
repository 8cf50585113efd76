// ABOUTME: Discriminated success/failure result of a wrapped call
// ABOUTME: Failure carries the journaled entry and renders the user message
package fault

import "fmt"

// Failure describes a wrapped call that failed and was journaled.
type Failure struct {
	Operation string
	Err       error
	Entry     Entry
	// JournalErr is set when the entry could not be written.
	JournalErr error
}

// Error returns the one-line message shown to the user.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s resulted in an error: %v", f.Operation, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Result is either a value or a Failure, never both.
type Result[T any] struct {
	value   T
	failure *Failure
}

// Succeeded wraps value as a successful Result.
func Succeeded[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failed wraps f as a failed Result.
func Failed[T any](f *Failure) Result[T] {
	return Result[T]{failure: f}
}

// Ok reports whether the call succeeded.
func (r Result[T]) Ok() bool {
	return r.failure == nil
}

// Value returns the call's value, the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Failure returns the failure, nil on success.
func (r Result[T]) Failure() *Failure {
	return r.failure
}

// Unwrap converts the result back to Go's (value, error) form.
func (r Result[T]) Unwrap() (T, error) {
	if r.failure != nil {
		return r.value, r.failure
	}
	return r.value, nil
}

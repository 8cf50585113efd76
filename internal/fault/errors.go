// ABOUTME: Errors produced by the interceptor itself
// ABOUTME: Argument binding failures and recovered panics
package fault

import "fmt"

// ArgumentError reports a call whose arguments do not fit the declared params.
type ArgumentError struct {
	Operation string
	Reason    string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s() %s", e.Operation, e.Reason)
}

// Kind returns the journal name of the error.
func (e *ArgumentError) Kind() string { return "ArgumentError" }

// PanicError wraps a value recovered from a panicking operation.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Kind returns the journal name of the error.
func (e *PanicError) Kind() string { return "Panic" }

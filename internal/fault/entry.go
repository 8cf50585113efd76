// ABOUTME: Error journal entry model
// ABOUTME: One entry per captured failure of a wrapped operation
package fault

import (
	"errors"
	"reflect"
	"unicode"
)

// Entry is one captured failure. Args holds the bound arguments as an object,
// or the raw positional list when binding failed (LoggingError is then set and
// Module is left empty).
type Entry struct {
	ID           string `json:"id,omitempty"`
	Timestamp    string `json:"timestamp"`
	Function     string `json:"function"`
	Module       string `json:"module,omitempty"`
	Args         any    `json:"args"`
	Kwargs       any    `json:"kwargs"`
	Error        string `json:"error"`
	ErrorType    string `json:"error_type"`
	LoggingError string `json:"logging_error,omitempty"`
}

type kinder interface {
	Kind() string
}

// ErrorType names the kind of err for the journal. Errors anywhere in the
// chain that expose Kind() win; otherwise the innermost error's exported type
// name is used, and "Error" when it has none.
func ErrorType(err error) string {
	if err == nil {
		return ""
	}
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}

	root := err
	for {
		next := errors.Unwrap(root)
		if next == nil {
			break
		}
		root = next
	}

	t := reflect.TypeOf(root)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" || !unicode.IsUpper([]rune(name)[0]) {
		return "Error"
	}
	return name
}

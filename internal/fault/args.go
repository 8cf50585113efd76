// ABOUTME: Call arguments and their binding to declared parameter names
// ABOUTME: Binding is explicit data on the operation, never reflection
package fault

import (
	"fmt"
	"strings"
)

// Args is the argument set of one call.
type Args struct {
	Positional []any
	Named      map[string]any
}

// Bound holds arguments keyed by parameter name, in declaration order.
type Bound struct {
	names  []string
	values map[string]any
}

// Names returns the parameter names in declaration order.
func (b Bound) Names() []string {
	return append([]string(nil), b.names...)
}

// Get returns the value bound to name.
func (b Bound) Get(name string) any {
	return b.values[name]
}

// String returns the value bound to name, formatted with fmt when it is not
// already a string. Unbound names yield "".
func (b Bound) String(name string) string {
	v, ok := b.values[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// bind assigns positional values to params in order, then named values by
// name. Every param must end up bound exactly once.
func bind(params []string, args Args) (Bound, error) {
	if len(args.Positional) > len(params) {
		return Bound{}, fmt.Errorf("takes %d positional arguments but %d were given", len(params), len(args.Positional))
	}

	values := make(map[string]any, len(params))
	for i, v := range args.Positional {
		values[params[i]] = v
	}

	declared := make(map[string]bool, len(params))
	for _, p := range params {
		declared[p] = true
	}
	for name, v := range args.Named {
		if !declared[name] {
			return Bound{}, fmt.Errorf("got an unexpected argument %q", name)
		}
		if _, dup := values[name]; dup {
			return Bound{}, fmt.Errorf("got multiple values for argument %q", name)
		}
		values[name] = v
	}

	var missing []string
	for _, p := range params {
		if _, ok := values[p]; !ok {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return Bound{}, fmt.Errorf("missing required arguments: %s", strings.Join(missing, ", "))
	}

	return Bound{names: append([]string(nil), params...), values: values}, nil
}

// ABOUTME: Fault interceptor wrapping user-facing operations
// ABOUTME: Captures errors and panics, journals them and returns a Failure result
package fault

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Op declares an operation: its identity, its parameter names and its body.
type Op[T any] struct {
	Name   string
	Module string
	Params []string
	Run    func(ctx context.Context, in Bound) (T, error)
}

// Interceptor journals failures of the operations it wraps.
type Interceptor struct {
	journal    *Journal
	serializer *Serializer
	logger     *log.Logger
	now        func() time.Time

	mu   sync.Mutex
	last time.Time
}

// Option configures an Interceptor.
type Option func(*Interceptor)

// WithClock sets the time source for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(ic *Interceptor) {
		ic.now = now
	}
}

// WithSerializer replaces the argument serializer.
func WithSerializer(s *Serializer) Option {
	return func(ic *Interceptor) {
		ic.serializer = s
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(ic *Interceptor) {
		ic.logger = l
	}
}

// New returns an Interceptor writing to journal.
func New(journal *Journal, opts ...Option) *Interceptor {
	ic := &Interceptor{
		journal:    journal,
		serializer: NewSerializer(),
		logger:     log.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(ic)
	}
	return ic
}

// Journal returns the journal failures are written to.
func (ic *Interceptor) Journal() *Journal {
	return ic.journal
}

// Wrapped is an operation guarded by an Interceptor. On success it behaves
// exactly like the operation.
type Wrapped[T any] struct {
	ic *Interceptor
	op Op[T]
}

// Wrap guards op with ic. It panics if op has no body.
func Wrap[T any](ic *Interceptor, op Op[T]) *Wrapped[T] {
	if op.Run == nil {
		panic("fault: Wrap called with nil Run for " + op.Name)
	}
	op.Params = append([]string(nil), op.Params...)
	return &Wrapped[T]{ic: ic, op: op}
}

// Name returns the operation name.
func (w *Wrapped[T]) Name() string { return w.op.Name }

// Module returns the operation's module.
func (w *Wrapped[T]) Module() string { return w.op.Module }

// Params returns the declared parameter names.
func (w *Wrapped[T]) Params() []string { return append([]string(nil), w.op.Params...) }

// Call invokes the operation with positional arguments.
func (w *Wrapped[T]) Call(ctx context.Context, positional ...any) Result[T] {
	return w.CallArgs(ctx, Args{Positional: positional})
}

// CallArgs invokes the operation. Errors and panics never escape; they are
// journaled and returned as a Failure.
func (w *Wrapped[T]) CallArgs(ctx context.Context, args Args) Result[T] {
	bound, err := bind(w.op.Params, args)
	if err != nil {
		cause := &ArgumentError{Operation: w.op.Name, Reason: err.Error()}
		return Failed[T](w.ic.capture(w.op.Name, "", args, nil, cause, "failed to bind arguments: "+err.Error()))
	}

	value, err := w.run(ctx, bound)
	if err != nil {
		return Failed[T](w.ic.capture(w.op.Name, w.op.Module, args, &bound, err, ""))
	}
	return Succeeded(value)
}

// Go runs the operation on its own goroutine and delivers the single result
// on the returned channel.
func (w *Wrapped[T]) Go(ctx context.Context, args Args) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		ch <- w.CallArgs(ctx, args)
	}()
	return ch
}

func (w *Wrapped[T]) run(ctx context.Context, bound Bound) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return w.op.Run(ctx, bound)
}

// capture builds and journals the entry for a failed call.
func (ic *Interceptor) capture(name, module string, args Args, bound *Bound, cause error, loggingErr string) *Failure {
	ic.mu.Lock()
	defer ic.mu.Unlock()

	entry := Entry{
		ID:           uuid.New().String(),
		Timestamp:    ic.stamp().Format(time.RFC3339Nano),
		Function:     name,
		Module:       module,
		Kwargs:       ic.serializer.Value(namedOrEmpty(args.Named)),
		Error:        cause.Error(),
		ErrorType:    ErrorType(cause),
		LoggingError: loggingErr,
	}
	if bound != nil {
		obj := make(object, 0, len(bound.names))
		for _, n := range bound.names {
			obj = append(obj, field{Key: n, Value: ic.serializer.Value(bound.values[n])})
		}
		entry.Args = obj
	} else {
		entry.Args = ic.serializer.Value(positionalOrEmpty(args.Positional))
	}

	ic.logger.Debug("operation failed", "function", name, "error_type", entry.ErrorType, "err", cause)

	failure := &Failure{Operation: name, Err: cause, Entry: entry}
	corrupt, err := ic.journal.Append(entry)
	if corrupt {
		ic.logger.Debug("journal unreadable, starting over", "path", ic.journal.Path())
	}
	if err != nil {
		ic.logger.Error("failed to write error journal", "path", ic.journal.Path(), "err", err)
		failure.JournalErr = err
	}
	return failure
}

// stamp returns the current time, nudged forward so that timestamps from one
// Interceptor are strictly increasing.
func (ic *Interceptor) stamp() time.Time {
	t := ic.now()
	if !ic.last.IsZero() && !t.After(ic.last) {
		t = ic.last.Add(time.Microsecond)
	}
	ic.last = t
	return t
}

func namedOrEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func positionalOrEmpty(p []any) []any {
	if p == nil {
		return []any{}
	}
	return p
}

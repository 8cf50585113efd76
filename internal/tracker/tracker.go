// ABOUTME: User-facing study log operations, each guarded by the fault interceptor
// ABOUTME: Declares parameter names so failed calls are journaled with their arguments
package tracker

import (
	"context"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/harper/studylog/internal/fault"
	"github.com/harper/studylog/internal/report"
	"github.com/harper/studylog/internal/store"
)

const module = "github.com/harper/studylog/internal/tracker"

// Tracker exposes the study log operations. Every field operation returns a
// fault.Result and never an escaping error.
type Tracker struct {
	store *store.Store
	now   func() time.Time

	// Init creates the data file if needed and reports whether it did.
	Init *fault.Wrapped[bool]
	// LogStudy appends today's entry from a subject and an hrs:mins string.
	LogStudy *fault.Wrapped[store.Record]
	// ReportToday totals today's records.
	ReportToday *fault.Wrapped[report.Summary]
	// ReportDate totals the records of a user-entered date.
	ReportDate *fault.Wrapped[report.Summary]
	// ReportAll totals every record.
	ReportAll *fault.Wrapped[report.Summary]
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock sets the source of "today".
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New builds a Tracker over s with operations wrapped by ic.
func New(s *store.Store, ic *fault.Interceptor, opts ...Option) *Tracker {
	t := &Tracker{store: s, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}

	t.Init = fault.Wrap(ic, fault.Op[bool]{
		Name:   "init_store",
		Module: module,
		Run: func(ctx context.Context, in fault.Bound) (bool, error) {
			return t.store.EnsureInitialized()
		},
	})
	t.LogStudy = fault.Wrap(ic, fault.Op[store.Record]{
		Name:   "log_study",
		Module: module,
		Params: []string{"subject", "hours"},
		Run: func(ctx context.Context, in fault.Bound) (store.Record, error) {
			return t.logStudy(in.String("subject"), in.String("hours"))
		},
	})
	t.ReportToday = fault.Wrap(ic, fault.Op[report.Summary]{
		Name:   "report_today",
		Module: module,
		Run: func(ctx context.Context, in fault.Bound) (report.Summary, error) {
			today := t.Today()
			return t.summarize(&today)
		},
	})
	t.ReportDate = fault.Wrap(ic, fault.Op[report.Summary]{
		Name:   "report_date",
		Module: module,
		Params: []string{"date"},
		Run: func(ctx context.Context, in fault.Bound) (report.Summary, error) {
			d, err := ParseDateInput(in.String("date"))
			if err != nil {
				return report.Summary{}, err
			}
			return t.summarize(&d)
		},
	})
	t.ReportAll = fault.Wrap(ic, fault.Op[report.Summary]{
		Name:   "report_all",
		Module: module,
		Run: func(ctx context.Context, in fault.Bound) (report.Summary, error) {
			return t.summarize(nil)
		},
	})

	return t
}

// Store returns the underlying log store.
func (t *Tracker) Store() *store.Store {
	return t.store
}

// Today returns the current calendar day.
func (t *Tracker) Today() store.Date {
	return store.DateOf(t.now())
}

func (t *Tracker) logStudy(subject, hours string) (store.Record, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return store.Record{}, &store.InputFormatError{Field: "subject", Input: subject, Reason: "must not be empty"}
	}
	h, err := store.ParseHours(hours)
	if err != nil {
		return store.Record{}, err
	}
	return t.store.Append(t.Today(), subject, h)
}

// summarize initializes the store before reading so a fresh install reports
// zero instead of failing.
func (t *Tracker) summarize(filter *store.Date) (report.Summary, error) {
	if _, err := t.store.EnsureInitialized(); err != nil {
		return report.Summary{}, err
	}
	return report.Summarize(t.store.ReadAll(), filter)
}

// ParseDateInput reads a user-entered date. DD-MM-YYYY is tried first; other
// layouts go through dateparse with day-first ordering for ambiguous input.
func ParseDateInput(input string) (store.Date, error) {
	s := strings.TrimSpace(input)
	if d, err := store.ParseDate(s); err == nil {
		return d, nil
	}
	parsed, err := dateparse.ParseAny(s, dateparse.PreferMonthFirst(false))
	if err != nil {
		return store.Date{}, &store.InputFormatError{Field: "date", Input: input, Reason: "expected dd-mm-yyyy"}
	}
	return store.DateOf(parsed), nil
}

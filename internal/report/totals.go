// ABOUTME: Per-subject aggregation of study records
// ABOUTME: Sums hours in input order so rounding is reproducible
package report

import (
	"iter"

	"github.com/harper/studylog/internal/store"
)

// SubjectTotal is the summed hours of one subject.
type SubjectTotal struct {
	Subject string  `json:"subject"`
	Hours   float64 `json:"hours"`
}

// Totals maps subjects to summed hours, remembering first-seen order.
type Totals struct {
	order []string
	hours map[string]float64
}

func (t *Totals) add(subject string, hours float64) {
	if t.hours == nil {
		t.hours = make(map[string]float64)
	}
	if _, ok := t.hours[subject]; !ok {
		t.order = append(t.order, subject)
	}
	t.hours[subject] += hours
}

// Len returns the number of subjects.
func (t Totals) Len() int {
	return len(t.order)
}

// Hours returns the total for subject and whether the subject was seen.
func (t Totals) Hours(subject string) (float64, bool) {
	h, ok := t.hours[subject]
	return h, ok
}

// Subjects returns subjects in first-seen order.
func (t Totals) Subjects() []string {
	return append([]string(nil), t.order...)
}

// Entries returns the totals in first-seen order.
func (t Totals) Entries() []SubjectTotal {
	out := make([]SubjectTotal, 0, len(t.order))
	for _, s := range t.order {
		out = append(out, SubjectTotal{Subject: s, Hours: t.hours[s]})
	}
	return out
}

// TotalsBySubject sums hours per subject over records. A non-nil filter keeps
// only records on that exact date. The first error from records is returned.
func TotalsBySubject(records iter.Seq2[store.Record, error], filter *store.Date) (Totals, error) {
	var totals Totals
	for rec, err := range records {
		if err != nil {
			return Totals{}, err
		}
		if filter != nil && rec.Date != *filter {
			continue
		}
		totals.add(rec.Subject, rec.Hours)
	}
	return totals, nil
}

// GrandTotal sums every subject total in first-seen order.
func GrandTotal(totals Totals) float64 {
	var sum float64
	for _, s := range totals.order {
		sum += totals.hours[s]
	}
	return sum
}

// FromSlice adapts a slice of records to the sequence TotalsBySubject reads.
func FromSlice(records []store.Record) iter.Seq2[store.Record, error] {
	return func(yield func(store.Record, error) bool) {
		for _, rec := range records {
			if !yield(rec, nil) {
				return
			}
		}
	}
}

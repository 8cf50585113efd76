// ABOUTME: Report summaries and their terminal rendering
// ABOUTME: Prints per-subject lines followed by the grand total
package report

import (
	"fmt"
	"io"
	"iter"

	"github.com/fatih/color"
	"github.com/harper/studylog/internal/store"
)

// Summary is a rendered-ready report for one date or for all dates.
type Summary struct {
	Date     *store.Date    `json:"date,omitempty"`
	Subjects []SubjectTotal `json:"subjects"`
	Total    float64        `json:"total"`
}

// Summarize aggregates records into a Summary.
func Summarize(records iter.Seq2[store.Record, error], filter *store.Date) (Summary, error) {
	totals, err := TotalsBySubject(records, filter)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Date:     filter,
		Subjects: totals.Entries(),
		Total:    GrandTotal(totals),
	}, nil
}

// Title is the heading printed above a summary.
func (s Summary) Title() string {
	if s.Date == nil {
		return "Study summary for all dates"
	}
	return "Study summary for " + s.Date.String()
}

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	totalColor   = color.New(color.FgGreen)
)

// Render writes the summary as plain lines:
//
//	Math: 3.5 hours
//	Total: 3.5 hours
func Render(w io.Writer, s Summary) {
	_, _ = headingColor.Fprintf(w, "\n%s\n\n", s.Title())
	if len(s.Subjects) == 0 {
		fmt.Fprintln(w, "No study time logged.")
	}
	for _, st := range s.Subjects {
		fmt.Fprintf(w, "%s: %s hours\n", st.Subject, store.FormatHours(st.Hours))
	}
	_, _ = totalColor.Fprintf(w, "\nTotal: %s hours\n", store.FormatHours(s.Total))
}

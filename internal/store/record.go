// ABOUTME: Study record model and the value types it is built from
// ABOUTME: Dates use the DD-MM-YYYY layout, subjects are title cased
package store

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateLayout is the on-disk and display form of a Date.
const DateLayout = "02-01-2006"

// Date is a calendar day without time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses s strictly as DD-MM-YYYY.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, int(d.Month), d.Year)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Record is one logged study session.
type Record struct {
	Date    Date    `json:"date"`
	Subject string  `json:"subject"`
	Hours   float64 `json:"hours"`
}

// NormalizeSubject title cases a subject label ("linear algebra" -> "Linear Algebra").
// A Caser is stateful, so each call builds its own.
func NormalizeSubject(subject string) string {
	return cases.Title(language.Und).String(subject)
}

// FormatHours renders hours in shortest round-trip form, keeping a ".0" on
// integral values so "2" is written as "2.0". Magnitudes of 1e16 and above or
// below 1e-4 use exponent form ("1e+20", "1e-05").
func FormatHours(hours float64) string {
	if math.IsInf(hours, 0) || math.IsNaN(hours) {
		return strconv.FormatFloat(hours, 'f', -1, 64)
	}
	if abs := math.Abs(hours); abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(hours, 'e', -1, 64)
	}
	s := strconv.FormatFloat(hours, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

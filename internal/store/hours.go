// ABOUTME: Conversion of hrs:mins input into decimal hours
// ABOUTME: Uses exact decimal arithmetic, rounded to two places
package store

import (
	"strings"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// ParseHours converts "hrs:mins" into hours rounded to two decimal places.
// "1:30" is 1.5 and "0:20" is 0.33.
func ParseHours(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	hrs, mins, ok := strings.Cut(trimmed, ":")
	if !ok {
		return 0, &InputFormatError{Field: "hours", Input: input, Reason: "expected hrs:mins"}
	}

	h, err := decimal.NewFromString(strings.TrimSpace(hrs))
	if err != nil {
		return 0, &InputFormatError{Field: "hours", Input: input, Reason: "hours part is not a number"}
	}
	m, err := decimal.NewFromString(strings.TrimSpace(mins))
	if err != nil {
		return 0, &InputFormatError{Field: "hours", Input: input, Reason: "minutes part is not a number"}
	}
	if h.IsNegative() || m.IsNegative() {
		return 0, &InputFormatError{Field: "hours", Input: input, Reason: "must not be negative"}
	}

	total, _ := h.Add(m.Div(sixty)).Round(2).Float64()
	return total, nil
}

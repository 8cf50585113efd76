// ABOUTME: Append-only CSV persistence for study records
// ABOUTME: Every call opens, uses and closes the file; nothing is cached
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

var header = []string{"Date", "Subject", "Hours"}

// Store is the study log backed by a CSV file with a Date,Subject,Hours header.
// It assumes exclusive single-process access.
type Store struct {
	path string
}

// New returns a Store for the CSV file at path. The file is not touched.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// EnsureInitialized writes the header row when the data file does not exist
// or is empty. It reports whether the header was written by this call and
// never truncates an existing file.
func (s *Store) EnsureInitialized() (bool, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return false, err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644) //nolint:gosec // User data file
	if errors.Is(err, fs.ErrExist) {
		return s.initEmpty()
	}
	if err != nil {
		return false, err
	}
	if err := writeHeader(f); err != nil {
		_ = f.Close()
		return false, err
	}
	return true, f.Close()
}

// initEmpty writes the header into an existing zero-length file. Non-empty
// files are only stat'ed, so read-only data files stay readable.
func (s *Store) initEmpty() (bool, error) {
	info, err := os.Stat(s.path)
	if err != nil || info.Size() > 0 {
		return false, err
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0644) //nolint:gosec // User data file
	if err != nil {
		return false, err
	}
	if err := writeHeader(f); err != nil {
		_ = f.Close()
		return false, err
	}
	return true, f.Close()
}

func writeHeader(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// Append writes one record. The subject is title cased before writing.
func (s *Store) Append(date Date, subject string, hours float64) (Record, error) {
	if hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return Record{}, ErrInvalidHours
	}
	if _, err := s.EnsureInitialized(); err != nil {
		return Record{}, err
	}

	rec := Record{Date: date, Subject: NormalizeSubject(subject), Hours: hours}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644) //nolint:gosec // User data file
	if err != nil {
		return Record{}, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{rec.Date.String(), rec.Subject, FormatHours(rec.Hours)}); err != nil {
		return Record{}, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Record{}, err
	}
	return rec, f.Close()
}

// ReadAll returns a lazy sequence over the records in file order. Each
// iteration re-reads the file. Iteration stops after the first error.
func (s *Store) ReadAll() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		f, err := os.Open(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			yield(Record{}, &MissingFileError{Path: s.path})
			return
		}
		if err != nil {
			yield(Record{}, err)
			return
		}
		defer f.Close()

		r := csv.NewReader(f)
		r.FieldsPerRecord = -1

		head, err := r.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			yield(Record{}, fmt.Errorf("read header: %w", err))
			return
		}
		cols, err := columnIndex(head)
		if err != nil {
			yield(Record{}, err)
			return
		}

		line := 1
		for {
			row, err := r.Read()
			if err == io.EOF {
				return
			}
			line++
			if err != nil {
				yield(Record{}, err)
				return
			}
			rec, err := decodeRow(row, cols, line)
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// Records collects ReadAll into a slice.
func (s *Store) Records() ([]Record, error) {
	var out []Record
	for rec, err := range s.ReadAll() {
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

type columns struct {
	date, subject, hours int
}

func columnIndex(head []string) (columns, error) {
	idx := map[string]int{}
	for i, name := range head {
		idx[name] = i
	}
	var cols columns
	for i, dst := range []*int{&cols.date, &cols.subject, &cols.hours} {
		pos, ok := idx[header[i]]
		if !ok {
			return columns{}, &ParseError{Line: 1, Field: "header", Value: fmt.Sprint(head), Err: fmt.Errorf("missing column %s", header[i])}
		}
		*dst = pos
	}
	return cols, nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func decodeRow(row []string, cols columns, line int) (Record, error) {
	rawDate := field(row, cols.date)
	date, err := ParseDate(rawDate)
	if err != nil {
		return Record{}, &ParseError{Line: line, Field: "date", Value: rawDate, Err: err}
	}

	rawHours := field(row, cols.hours)
	hours, err := strconv.ParseFloat(rawHours, 64)
	if err != nil {
		return Record{}, &ParseError{Line: line, Field: "hours", Value: rawHours, Err: err}
	}

	return Record{Date: date, Subject: field(row, cols.subject), Hours: hours}, nil
}

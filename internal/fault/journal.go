// ABOUTME: Durable JSON-array journal of captured failures
// ABOUTME: Reads tolerate missing or corrupt files, writes replace the file atomically
package fault

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Journal is an append-only JSON array file. It assumes exclusive
// single-process access.
type Journal struct {
	path string
}

// NewJournal returns a Journal stored at path. The file is not touched.
func NewJournal(path string) *Journal {
	return &Journal{path: path}
}

// Path returns the journal file path.
func (j *Journal) Path() string {
	return j.path
}

// read returns the raw entries on disk. A missing file is an empty journal.
// A file that is not valid JSON returns an error. A non-array document is
// treated as a single entry.
func (j *Journal) read() ([]json.RawMessage, error) {
	data, err := os.ReadFile(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return nil, &CorruptJournalError{Path: j.path}
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, &CorruptJournalError{Path: j.path, Err: err}
		}
		return raw, nil
	}
	return []json.RawMessage{json.RawMessage(trimmed)}, nil
}

// Entries decodes the journal. Missing or corrupt files yield no entries, and
// individual elements that are not entry objects are skipped.
func (j *Journal) Entries() []Entry {
	raw, err := j.read()
	if err != nil {
		return nil
	}
	entries := make([]Entry, 0, len(raw))
	for _, r := range raw {
		var e Entry
		if err := json.Unmarshal(r, &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// Len returns the number of elements in the journal.
func (j *Journal) Len() int {
	raw, _ := j.read()
	return len(raw)
}

// Append adds e after the existing elements and rewrites the file. An
// unreadable journal is started over; the returned corrupt flag reports it.
func (j *Journal) Append(e Entry) (corrupt bool, err error) {
	raw, readErr := j.read()
	if readErr != nil {
		raw = nil
		corrupt = true
	}

	data, err := json.Marshal(e)
	if err != nil {
		return corrupt, err
	}
	raw = append(raw, data)

	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return corrupt, err
	}
	return corrupt, j.replace(append(out, '\n'))
}

// replace writes data to a temp file next to the journal and renames it over.
func (j *Journal) replace(data []byte) error {
	dir := filepath.Dir(j.path)
	if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(j.path)+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil { //nolint:gosec // Journal is plain user data
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, j.path); err != nil {
		cleanup()
		return err
	}
	return nil
}

// CorruptJournalError reports a journal file that does not hold valid JSON.
type CorruptJournalError struct {
	Path string
	Err  error
}

func (e *CorruptJournalError) Error() string {
	if e.Err != nil {
		return "corrupt journal " + e.Path + ": " + e.Err.Error()
	}
	return "corrupt journal " + e.Path
}

func (e *CorruptJournalError) Unwrap() error { return e.Err }

// Kind returns the journal name of the error.
func (e *CorruptJournalError) Kind() string { return "JournalCorruptionError" }

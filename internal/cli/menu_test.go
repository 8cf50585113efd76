// ABOUTME: Tests for the interactive menu
// ABOUTME: Drives the loop with scripted stdin and checks output and files
package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harper/studylog/internal/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuLogAndReport(t *testing.T) {
	env := setupEnv(t)

	out, err := runCLI(t, "1\nmath\n1:30\n1\nMath\n2:00\n2\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Data file created successfully")
	assert.Contains(t, out, "Study time for Math logged successfully for 1.5 hours on 01-01-2025")
	assert.Contains(t, out, "Study time for Math logged successfully for 2.0 hours on 01-01-2025")
	assert.Contains(t, out, "Study summary for 01-01-2025")
	assert.Contains(t, out, "Math: 3.5 hours")
	assert.Contains(t, out, "Total: 3.5 hours")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
	assert.Equal(t, 1, strings.Count(out, "Data file created"))

	content, err := os.ReadFile(env.dataFile)
	require.NoError(t, err)
	assert.Equal(t, "Date,Subject,Hours\n01-01-2025,Math,1.5\n01-01-2025,Math,2.0\n", string(content))
}

func TestMenuSpecificDateAndAll(t *testing.T) {
	setupEnv(t)

	_, err := runCLI(t, "1\nphysics\n0:45\n5\n")
	require.NoError(t, err)

	out, err := runCLI(t, "3\n01-01-2025\n3\n02-01-2025\n4\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Study summary for 01-01-2025")
	assert.Contains(t, out, "Physics: 0.75 hours")
	assert.Contains(t, out, "Study summary for 02-01-2025")
	assert.Contains(t, out, "No study time logged.")
	assert.Contains(t, out, "Study summary for all dates")
}

func TestMenuInvalidChoice(t *testing.T) {
	setupEnv(t)

	out, err := runCLI(t, "9\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid choice")
	assert.Equal(t, 2, strings.Count(out, "Enter your choice"))
}

func TestMenuFailureIsContained(t *testing.T) {
	env := setupEnv(t)

	out, err := runCLI(t, "1\nmath\n90\n2\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, `log_study resulted in an error: invalid hours "90": expected hrs:mins`)
	assert.Contains(t, out, "Total: 0.0 hours")
	assert.Contains(t, out, "Exiting...")

	entries := fault.NewJournal(env.journalFile).Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "log_study", entries[0].Function)
	assert.Equal(t, "InputFormatError", entries[0].ErrorType)
}

func TestMenuEndOfInput(t *testing.T) {
	setupEnv(t)

	t.Run("at the menu prompt", func(t *testing.T) {
		_, err := runCLI(t, "")
		assert.NoError(t, err)
	})

	t.Run("inside a prompt", func(t *testing.T) {
		out, err := runCLI(t, "1\nmath")
		assert.NoError(t, err)
		assert.NotContains(t, out, "logged successfully")
	})

	t.Run("last line without newline", func(t *testing.T) {
		out, err := runCLI(t, "5")
		assert.NoError(t, err)
		assert.Contains(t, out, "Exiting...")
	})
}

func TestMenuParseErrorIsContained(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(env.dataFile), 0755))
	require.NoError(t, os.WriteFile(env.dataFile, []byte("Date,Subject,Hours\n01-01-2025,Math,lots\n"), 0644))

	out, err := runCLI(t, "2\n4\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "report_today resulted in an error")
	assert.Contains(t, out, "report_all resulted in an error")

	assert.Equal(t, 2, fault.NewJournal(env.journalFile).Len())
}

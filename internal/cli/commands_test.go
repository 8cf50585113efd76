// ABOUTME: Tests for the log, report and errors subcommands
// ABOUTME: Checks output formats and journaling of failures
package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/harper/studylog/internal/fault"
	"github.com/harper/studylog/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogCommand(t *testing.T) {
	t.Run("logs an entry", func(t *testing.T) {
		setupEnv(t)
		out, err := runCLI(t, "", "log", "organic chemistry", "1:15")
		require.NoError(t, err)
		assert.Contains(t, out, "Study time for Organic Chemistry logged successfully for 1.25 hours on 01-01-2025")
	})

	t.Run("returns and journals failures", func(t *testing.T) {
		env := setupEnv(t)
		_, err := runCLI(t, "", "log", "math", "1.5")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log_study resulted in an error")
		assert.Equal(t, 1, fault.NewJournal(env.journalFile).Len())
	})

	t.Run("rejects wrong argument count", func(t *testing.T) {
		setupEnv(t)
		_, err := runCLI(t, "", "log", "math")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "accepts 2 arg(s)")
	})
}

func TestReportCommand(t *testing.T) {
	setupEnv(t)
	for _, args := range [][]string{{"log", "math", "1:30"}, {"log", "Math", "2:00"}, {"log", "art", "0:06"}} {
		_, err := runCLI(t, "", args...)
		require.NoError(t, err)
	}

	t.Run("today as text", func(t *testing.T) {
		out, err := runCLI(t, "", "report")
		require.NoError(t, err)
		assert.Contains(t, out, "Math: 3.5 hours")
		assert.Contains(t, out, "Art: 0.1 hours")
		assert.Contains(t, out, "Total: 3.6 hours")
	})

	t.Run("date as json", func(t *testing.T) {
		out, err := runCLI(t, "", "report", "--date", "2025-01-01", "--json")
		require.NoError(t, err)

		var summary struct {
			Date     string                `json:"date"`
			Subjects []report.SubjectTotal `json:"subjects"`
			Total    float64               `json:"total"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &summary))
		assert.Equal(t, "01-01-2025", summary.Date)
		assert.Equal(t, []report.SubjectTotal{{Subject: "Math", Hours: 3.5}, {Subject: "Art", Hours: 0.1}}, summary.Subjects)
	})

	t.Run("all dates", func(t *testing.T) {
		out, err := runCLI(t, "", "report", "--all")
		require.NoError(t, err)
		assert.Contains(t, out, "Study summary for all dates")
	})

	t.Run("date and all are exclusive", func(t *testing.T) {
		_, err := runCLI(t, "", "report", "--date", "01-01-2025", "--all")
		require.Error(t, err)
	})
}

func TestReportCommandFreshInstall(t *testing.T) {
	env := setupEnv(t)

	for _, args := range [][]string{{"report"}, {"report", "--all"}, {"report", "--date", "01-01-2025"}} {
		out, err := runCLI(t, "", args...)
		require.NoError(t, err, "%v", args)
		assert.Contains(t, out, "No study time logged.")
		assert.Contains(t, out, "Total: 0.0 hours")
	}
	assert.Equal(t, 0, fault.NewJournal(env.journalFile).Len())
}

func TestErrorsCommand(t *testing.T) {
	t.Run("empty journal", func(t *testing.T) {
		setupEnv(t)
		out, err := runCLI(t, "", "errors")
		require.NoError(t, err)
		assert.Contains(t, out, "No errors recorded.")
	})

	t.Run("lists failures", func(t *testing.T) {
		setupEnv(t)
		_, err := runCLI(t, "", "log", "math", "x")
		require.Error(t, err)
		_, err = runCLI(t, "", "report", "--date", "someday")
		require.Error(t, err)

		out, err := runCLI(t, "", "errors")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 4)
		assert.Contains(t, lines[2], "log_study")
		assert.Contains(t, lines[3], "report_date")

		out, err = runCLI(t, "", "errors", "-n", "1", "--json")
		require.NoError(t, err)
		var entries []fault.Entry
		require.NoError(t, json.Unmarshal([]byte(out), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "report_date", entries[0].Function)
		assert.Equal(t, map[string]any{"date": "someday"}, entries[0].Args)
	})

	t.Run("since filter", func(t *testing.T) {
		setupEnv(t)
		_, err := runCLI(t, "", "log", "math", "x")
		require.Error(t, err)

		out, err := runCLI(t, "", "errors", "--since", "2030-01-01")
		require.NoError(t, err)
		assert.Contains(t, out, "No errors recorded.")

		out, err = runCLI(t, "", "errors", "--since", "2024-12-31")
		require.NoError(t, err)
		assert.Contains(t, out, "log_study")
	})
}

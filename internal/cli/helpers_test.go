// ABOUTME: Shared helpers for CLI tests
// ABOUTME: Isolates files via env vars and resets cobra flag state between runs
package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harper/studylog/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var testNow = time.Date(2025, 1, 1, 9, 30, 0, 0, time.Local)

type testEnv struct {
	dataFile    string
	journalFile string
}

// setupEnv points studylog at temp files and pins the clock.
func setupEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	env := testEnv{
		dataFile:    filepath.Join(dir, "data", "study_data.csv"),
		journalFile: filepath.Join(dir, "data", "error_log.json"),
	}
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv(config.EnvDataFile, env.dataFile)
	t.Setenv(config.EnvJournalFile, env.journalFile)
	t.Setenv(config.EnvLogLevel, "error")

	clock = func() time.Time { return testNow }
	t.Cleanup(func() { clock = time.Now })
	return env
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes the root command with args and stdin, returning stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

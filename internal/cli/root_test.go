// ABOUTME: Unit tests for the root command
// ABOUTME: Tests Execute function and command registration
package cli

import (
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	t.Run("runs help without error", func(t *testing.T) {
		setupEnv(t)
		out, err := runCLI(t, "", "--help")
		if err != nil {
			t.Fatalf("expected help to run without error, got: %v", err)
		}
		if !strings.Contains(out, "studylog") {
			t.Errorf("expected help output to mention studylog, got: %s", out)
		}
	})
}

func TestRootCommand(t *testing.T) {
	t.Run("has correct metadata", func(t *testing.T) {
		if rootCmd.Use != "studylog" {
			t.Errorf("expected Use to be 'studylog', got: %s", rootCmd.Use)
		}
		if rootCmd.Short != "Study time tracker" {
			t.Errorf("expected Short description, got: %s", rootCmd.Short)
		}
	})

	t.Run("has subcommands registered", func(t *testing.T) {
		want := map[string]bool{"log": false, "report": false, "errors": false, "mcp": false}
		for _, cmd := range rootCmd.Commands() {
			if _, ok := want[cmd.Name()]; ok {
				want[cmd.Name()] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected root command to have %q subcommand registered", name)
			}
		}
	})

	t.Run("rejects unknown arguments", func(t *testing.T) {
		setupEnv(t)
		if _, err := runCLI(t, "", "bogus"); err == nil {
			t.Fatal("expected error for unknown command")
		}
	})

	t.Run("explicit missing config fails", func(t *testing.T) {
		setupEnv(t)
		if _, err := runCLI(t, "5\n", "--config", "/nonexistent/studylog.toml"); err == nil {
			t.Fatal("expected error for missing config file")
		}
	})
}

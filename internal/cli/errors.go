// ABOUTME: Errors command for reading the failure journal
// ABOUTME: Lists journaled failures oldest first, optionally filtered by time
package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/harper/studylog/internal/fault"
	"github.com/spf13/cobra"
)

var (
	errorsLimit      int
	errorsSince      string
	errorsJSONOutput bool
)

var errorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "List journaled failures",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		entries := a.journal.Entries()

		if errorsSince != "" {
			since, err := dateparse.ParseAny(errorsSince)
			if err != nil {
				return fmt.Errorf("invalid --since date: %w", err)
			}
			entries = entriesSince(entries, since)
		}

		if errorsLimit > 0 && len(entries) > errorsLimit {
			entries = entries[len(entries)-errorsLimit:]
		}

		out := cmd.OutOrStdout()
		if errorsJSONOutput {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if len(entries) == 0 {
			fmt.Fprintln(out, "No errors recorded.")
			return nil
		}
		fmt.Fprintln(out, "Timestamp\t\t\tFunction\tType\t\tError")
		fmt.Fprintln(out, "---------\t\t\t--------\t----\t\t-----")
		for _, e := range entries {
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", displayTimestamp(e.Timestamp), e.Function, e.ErrorType, e.Error)
		}
		return nil
	},
}

// entriesSince keeps entries at or after since. Entries whose timestamp
// cannot be read are kept.
func entriesSince(entries []fault.Entry, since time.Time) []fault.Entry {
	var kept []fault.Entry
	for _, e := range entries {
		ts, err := time.Parse(time.RFC3339Nano, e.Timestamp)
		if err != nil {
			ts, err = dateparse.ParseAny(e.Timestamp)
		}
		if err != nil || !ts.Before(since) {
			kept = append(kept, e)
		}
	}
	return kept
}

func displayTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func init() {
	errorsCmd.Flags().IntVarP(&errorsLimit, "limit", "n", 20, "Number of most recent entries to show")
	errorsCmd.Flags().StringVar(&errorsSince, "since", "", "Only entries at or after this date (natural language or ISO)")
	errorsCmd.Flags().BoolVar(&errorsJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(errorsCmd)
}

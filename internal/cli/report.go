// ABOUTME: Report command for study totals
// ABOUTME: Supports today, a specific date or all dates, as text or JSON
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/harper/studylog/internal/fault"
	"github.com/harper/studylog/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportDate       string
	reportAll        bool
	reportJSONOutput bool
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"r"},
	Short:   "Show study totals per subject",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		var res fault.Result[report.Summary]
		switch {
		case reportAll:
			res = a.tracker.ReportAll.Call(cmd.Context())
		case reportDate != "":
			res = a.tracker.ReportDate.Call(cmd.Context(), reportDate)
		default:
			res = a.tracker.ReportToday.Call(cmd.Context())
		}
		if !res.Ok() {
			return res.Failure()
		}

		if reportJSONOutput {
			data, err := json.MarshalIndent(res.Value(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		report.Render(cmd.OutOrStdout(), res.Value())
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportDate, "date", "d", "", "Date to report (dd-mm-yyyy or natural format)")
	reportCmd.Flags().BoolVarP(&reportAll, "all", "a", false, "Report across all dates")
	reportCmd.Flags().BoolVar(&reportJSONOutput, "json", false, "Output as JSON")
	reportCmd.MarkFlagsMutuallyExclusive("date", "all")
	rootCmd.AddCommand(reportCmd)
}

// ABOUTME: Log command for recording study time without the menu
// ABOUTME: Takes a subject and an hrs:mins duration as arguments
package cli

import (
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:     "log SUBJECT HRS:MINS",
	Aliases: []string{"l"},
	Short:   "Log study time for today",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		res := a.tracker.LogStudy.Call(cmd.Context(), args[0], args[1])
		if !res.Ok() {
			return res.Failure()
		}
		printLogged(cmd.OutOrStdout(), res.Value())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}

// ABOUTME: Root command definition and CLI setup
// ABOUTME: Running studylog with no subcommand opens the interactive menu
package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "studylog",
	Short: "Study time tracker",
	Long: `Studylog records time spent per subject in a CSV log and reports totals.

Run without arguments for the interactive menu. Failures are written to a
JSON error journal instead of stopping the program.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return a.runMenu(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/studylog/config.toml)")
}

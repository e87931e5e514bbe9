package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd renders the default report when invoked without a subcommand,
// so a bare `benchplot` produces the chart with built-in defaults.
var rootCmd = &cobra.Command{
	Use:          "benchplot",
	Short:        "Render baseline vs candidate performance comparison charts",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender()
	},
}

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

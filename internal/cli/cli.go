// Package cli wires the sysgauge root command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/sysgauge/internal/config"
	"github.com/Dicklesworthstone/sysgauge/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "sysgauge",
	Short: "Live CPU and memory gauges for the local host",
	Long: `sysgauge draws live CPU and memory utilization gauges in the terminal,
refreshing four times a second until 'q' is pressed.

It takes no flags or arguments and reads no environment variables.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.Run(config.Default())
	},
}

// Execute runs the root command, mapping any failure to a non-zero exit.
// By the time an error reaches here the terminal has already been restored.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sysgauge:", err)
		os.Exit(1)
	}
}

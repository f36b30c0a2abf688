// Package cli wires the dashboard commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "anthropic-dashboard",
	Short: "Usage and cost dashboard for the Anthropic admin API",
	Long: `anthropic-dashboard serves a local web dashboard visualizing token usage
and cost data from the Anthropic admin API.

Without an ANTHROPIC_ADMIN_KEY the dashboard runs on generated demo data,
so it is fully explorable before any credentials are configured.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package cli provides the command-line interface for watchgate.
package cli

import (
	"github.com/spf13/cobra"

	"watchgate/internal/platform/config"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	cfg config.Server
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "watchgate",
	Short: "Screen names against public sanctions watchlists",
	Long: `Watchgate screens a person or entity name against public watchlists
(OFAC SDN, UN Consolidated Sanctions) using approximate string matching,
and combines the hits with jurisdiction risk flags into a single
explainable 0-100 score.

Configuration comes from WATCHGATE_* environment variables; see the
server command for the full list.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.FromEnv()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(jurisdictionsCmd)
	rootCmd.AddCommand(tokenCmd)
}

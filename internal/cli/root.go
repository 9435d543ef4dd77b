// Package cli implements the ech-client CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ech-client",
	Short: "Control the ech-workers proxy and the system proxy setting",
	Long: `ech-client talks to the ech-clientd daemon, which runs the ech-workers
proxy and points the operating system's proxy setting at it.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(outputCmd)
	rootCmd.AddCommand(proxyCmd)
	rootCmd.AddCommand(serversCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(versionCmd)
}

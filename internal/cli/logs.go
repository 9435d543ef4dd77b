package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ech-workers/ech-client/internal/config"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Browse past proxy worker sessions",
}

var logsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List session logs, newest first",
	Args:    cobra.NoArgs,
	RunE:    runLogsList,
}

var logsShowCmd = &cobra.Command{
	Use:   "show log-id",
	Short: "Print a session log",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogsShow,
}

func init() {
	logsCmd.AddCommand(logsListCmd)
	logsCmd.AddCommand(logsShowCmd)
}

func runLogsList(cmd *cobra.Command, args []string) error {
	logs, err := config.ListSessionLogs()
	if err != nil {
		return fmt.Errorf("failed to list logs: %w", err)
	}
	if len(logs) == 0 {
		fmt.Println("No session logs yet.")
		return nil
	}
	for _, l := range logs {
		status := render(styleSuccess, l.Status)
		if l.Status != "stopped" {
			status = render(styleError, fmt.Sprintf("%s (%d)", l.Status, l.ExitCode))
		}
		fmt.Printf("%s  %s  %s\n", render(styleValue, l.LogID), status, render(styleHint, l.Server))
	}
	return nil
}

func runLogsShow(cmd *cobra.Command, args []string) error {
	entry, body, err := config.ReadSessionLog(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", render(styleLabel, "Server: "), entry.Server)
	fmt.Printf("%s %d\n", render(styleLabel, "PID:    "), entry.PID)
	fmt.Printf("%s %s\n", render(styleLabel, "Started:"), entry.StartedAt)
	fmt.Printf("%s %s\n", render(styleLabel, "Ended:  "), entry.EndedAt)
	fmt.Printf("%s %s (exit code %d)\n\n", render(styleLabel, "Status: "), entry.Status, entry.ExitCode)
	fmt.Print(body)
	return nil
}

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ech-workers/ech-client/internal/tui"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch the proxy and its output in an interactive view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if plainOutput {
			return errors.New("monitor needs an interactive terminal")
		}
		c, err := dialDaemon()
		if err != nil {
			return err
		}
		defer c.Close()
		return tui.Run(tui.NewClient(c.conn))
	},
}

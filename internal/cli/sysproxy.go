package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/ech-workers/ech-client/proto"
)

var proxyCmd = &cobra.Command{
	Use:     "proxy",
	Aliases: []string{"system-proxy"},
	Short:   "Manage the operating system proxy setting",
}

var proxyOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Point the system proxy at the local worker",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return setSystemProxy(true) },
}

var proxyOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Turn the system proxy off",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return setSystemProxy(false) },
}

var proxyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the system proxy setting",
	Args:  cobra.NoArgs,
	RunE:  runProxyStatus,
}

func init() {
	proxyCmd.AddCommand(proxyOffCmd)
	proxyCmd.AddCommand(proxyOnCmd)
	proxyCmd.AddCommand(proxyStatusCmd)
}

func setSystemProxy(enabled bool) error {
	return withDaemon(func(ctx context.Context, c *daemonClients) error {
		sp, err := c.supervisor.SetSystemProxy(ctx, &pb.SystemProxyRequest{Enabled: enabled})
		if err != nil {
			return err
		}
		if sp.Enabled {
			fmt.Printf("%s System proxy set to %s.\n", render(styleSuccess, "✓"), sp.Endpoint)
		} else {
			fmt.Printf("%s System proxy turned off.\n", render(styleSuccess, "✓"))
		}
		return nil
	})
}

func runProxyStatus(cmd *cobra.Command, args []string) error {
	return withDaemon(func(ctx context.Context, c *daemonClients) error {
		sp, err := c.supervisor.GetSystemProxy(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}
		ls, err := c.supervisor.GetLastState(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}

		if sp.Enabled {
			fmt.Printf("%s %s %s\n", render(styleLabel, "System proxy:"), render(badgeRunning, "on"), sp.Endpoint)
		} else {
			fmt.Printf("%s %s\n", render(styleLabel, "System proxy:"), render(badgeStopped, "off"))
		}
		fmt.Printf("%s worker %s, system proxy %s\n", render(styleLabel, "Resume:      "),
			onOff(ls.WasRunning), onOff(ls.SystemProxyEnabled))
		return nil
	})
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

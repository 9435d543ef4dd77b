package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/ech-workers/ech-client/internal/models"
	"github.com/ech-workers/ech-client/internal/rpc"
	pb "github.com/ech-workers/ech-client/proto"
)

var serversCmd = &cobra.Command{
	Use:     "servers",
	Aliases: []string{"server"},
	Short:   "Manage server profiles",
}

var serversListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List server profiles",
	Args:    cobra.NoArgs,
	RunE:    runServersList,
}

var serversAddCmd = &cobra.Command{
	Use:   "add name server-address [key=value...]",
	Short: "Add a server profile",
	Long: `Add a server profile. Other settings start from the defaults and can be
given as key=value pairs (see 'ech-client config set --help').`,
	Args: cobra.MinimumNArgs(2),
	RunE: runServersAdd,
}

var serversRemoveCmd = &cobra.Command{
	Use:     "remove id",
	Aliases: []string{"rm"},
	Short:   "Remove a server profile",
	Args:    cobra.ExactArgs(1),
	RunE:    runServersRemove,
}

var serversUseCmd = &cobra.Command{
	Use:   "use id",
	Short: "Select the server profile used by start",
	Args:  cobra.ExactArgs(1),
	RunE:  runServersUse,
}

func init() {
	serversCmd.AddCommand(serversAddCmd)
	serversCmd.AddCommand(serversListCmd)
	serversCmd.AddCommand(serversRemoveCmd)
	serversCmd.AddCommand(serversUseCmd)
}

func runServersList(cmd *cobra.Command, args []string) error {
	return withDaemon(func(ctx context.Context, c *daemonClients) error {
		list, err := c.config.ListServers(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}
		if len(list.Servers) == 0 {
			fmt.Println("No servers. Run 'ech-client servers add' to create one.")
			return nil
		}
		for _, s := range list.Servers {
			marker := " "
			if s.Current {
				marker = render(styleSuccess, "*")
			}
			fmt.Printf("%s %s  %s  %s\n", marker, render(styleValue, s.Name), render(styleHint, s.GetConfig().GetServer()), render(styleLabel, s.Id))
		}
		return nil
	})
}

func runServersAdd(cmd *cobra.Command, args []string) error {
	cfg := rpc.FromProxyConfig(models.DefaultProxyConfig())
	cfg.Server = args[1]
	if err := applyConfigArgs(cfg, args[2:]); err != nil {
		return err
	}

	return withDaemon(func(ctx context.Context, c *daemonClients) error {
		added, err := c.config.UpsertServer(ctx, &pb.Server{Name: args[0], Config: cfg})
		if err != nil {
			return err
		}
		fmt.Printf("%s Added %s (%s).\n", render(styleSuccess, "✓"), added.Name, added.Id)
		return nil
	})
}

func runServersRemove(cmd *cobra.Command, args []string) error {
	return withDaemon(func(ctx context.Context, c *daemonClients) error {
		if _, err := c.config.DeleteServer(ctx, &pb.ServerId{Id: args[0]}); err != nil {
			return err
		}
		fmt.Printf("%s Removed %s.\n", render(styleSuccess, "✓"), args[0])
		return nil
	})
}

func runServersUse(cmd *cobra.Command, args []string) error {
	return withDaemon(func(ctx context.Context, c *daemonClients) error {
		cur, err := c.config.SetCurrentServer(ctx, &pb.ServerId{Id: args[0]})
		if err != nil {
			return err
		}
		fmt.Printf("%s Using %s. Restart the proxy to switch.\n", render(styleSuccess, "✓"), cur.Name)
		return nil
	})
}

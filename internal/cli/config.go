package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/ech-workers/ech-client/proto"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the current server's proxy settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current proxy settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set key=value...",
	Short: "Change proxy settings",
	Long: `Change one or more proxy settings of the current server.

Keys: listen, server, server_ip, token, dns, ech, routing.
An empty value clears an optional setting, e.g. "server_ip=".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
}

// configFields maps a settings key to its field in pb.ProxyConfig.
var configFields = map[string]func(*pb.ProxyConfig) *string{
	"listen":    func(c *pb.ProxyConfig) *string { return &c.Listen },
	"server":    func(c *pb.ProxyConfig) *string { return &c.Server },
	"server_ip": func(c *pb.ProxyConfig) *string { return &c.ServerIp },
	"token":     func(c *pb.ProxyConfig) *string { return &c.Token },
	"dns":       func(c *pb.ProxyConfig) *string { return &c.Dns },
	"ech":       func(c *pb.ProxyConfig) *string { return &c.Ech },
	"routing":   func(c *pb.ProxyConfig) *string { return &c.Routing },
}

// applyConfigArgs applies key=value assignments to cfg.
func applyConfigArgs(cfg *pb.ProxyConfig, args []string) error {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", arg)
		}
		key = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
		field, ok := configFields[key]
		if !ok {
			return fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(configKeys(), ", "))
		}
		*field(cfg) = strings.TrimSpace(value)
	}
	return nil
}

func configKeys() []string {
	keys := make([]string, 0, len(configFields))
	for k := range configFields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	return withDaemon(func(ctx context.Context, c *daemonClients) error {
		cfg, err := c.config.GetConfig(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}
		printProxyConfig(cfg)
		return nil
	})
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	return withDaemon(func(ctx context.Context, c *daemonClients) error {
		cfg, err := c.config.GetConfig(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}
		if err := applyConfigArgs(cfg, args); err != nil {
			return err
		}
		saved, err := c.config.SaveConfig(ctx, cfg)
		if err != nil {
			return err
		}
		fmt.Printf("%s Settings saved. Restart the proxy to apply them.\n", render(styleSuccess, "✓"))
		printProxyConfig(saved)
		return nil
	})
}

func printProxyConfig(cfg *pb.ProxyConfig) {
	row := func(label, value string) {
		if value == "" {
			value = render(styleHint, "(not set)")
		} else {
			value = render(styleValue, value)
		}
		fmt.Printf("  %s %s\n", render(styleLabel, fmt.Sprintf("%-10s", label)), value)
	}
	row("listen", cfg.GetListen())
	row("server", cfg.GetServer())
	row("server_ip", cfg.GetServerIp())
	row("token", maskToken(cfg.GetToken()))
	row("dns", cfg.GetDns())
	row("ech", cfg.GetEch())
	row("routing", cfg.GetRouting())
}

func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 4 {
		return "****"
	}
	return token[:2] + strings.Repeat("*", len(token)-4) + token[len(token)-2:]
}

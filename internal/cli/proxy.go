package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/ech-workers/ech-client/proto"
)

var (
	startServerID string
	startProxy    bool
	stopAll       bool
	statusJSON    bool
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the proxy worker",
	Long: `Start the ech-workers proxy with the current server's settings.

If a worker started outside this daemon is already running, nothing is
spawned and the existing one is reported.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the proxy worker and turn the system proxy off",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show worker and system proxy status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	startCmd.Flags().StringVarP(&startServerID, "server", "s", "", "Server profile id to start with")
	startCmd.Flags().BoolVarP(&startProxy, "system-proxy", "p", false, "Also point the system proxy at the worker")
	stopCmd.Flags().BoolVar(&stopAll, "all", false, "Also terminate workers this daemon did not start")
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Print status as JSON")
}

func runStart(cmd *cobra.Command, args []string) error {
	return withDaemon(func(ctx context.Context, c *daemonClients) error {
		res, err := c.supervisor.Start(ctx, &pb.StartRequest{ServerId: startServerID})
		if err != nil {
			return err
		}
		if res.External {
			fmt.Println(render(styleWarning, "!"), res.Message)
		} else {
			fmt.Printf("%s Proxy started (PID %d).\n", render(styleSuccess, "✓"), res.GetPid())
		}

		if startProxy {
			sp, err := c.supervisor.SetSystemProxy(ctx, &pb.SystemProxyRequest{Enabled: true})
			if err != nil {
				return err
			}
			fmt.Printf("%s System proxy set to %s.\n", render(styleSuccess, "✓"), sp.Endpoint)
		}
		return nil
	})
}

func runStop(cmd *cobra.Command, args []string) error {
	return withDaemon(func(ctx context.Context, c *daemonClients) error {
		if _, err := c.supervisor.Stop(ctx, &pb.StopRequest{All: stopAll}); err != nil {
			return err
		}
		fmt.Printf("%s Proxy stopped.\n", render(styleSuccess, "✓"))
		return nil
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withDaemon(func(ctx context.Context, c *daemonClients) error {
		st, err := c.supervisor.GetStatus(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}
		if statusJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(statusView(st))
		}
		printStatus(st)
		return nil
	})
}

// statusJSONView is the stable JSON shape of `status --json`.
type statusJSONView struct {
	State              string     `json:"state"`
	Running            bool       `json:"running"`
	ManagedRunning     bool       `json:"managed_running"`
	ExternalRunning    bool       `json:"external_running"`
	SystemProxyEnabled bool       `json:"system_proxy_enabled"`
	PID                int32      `json:"pid,omitempty"`
	StartedAt          *time.Time `json:"started_at,omitempty"`
	Server             string     `json:"server,omitempty"`
	Listen             string     `json:"listen,omitempty"`
}

func statusView(st *pb.Status) statusJSONView {
	v := statusJSONView{
		State:              st.State,
		Running:            st.Running,
		ManagedRunning:     st.ManagedRunning,
		ExternalRunning:    st.ExternalRunning,
		SystemProxyEnabled: st.SystemProxyEnabled,
		PID:                st.Pid,
		Server:             st.Server,
		Listen:             st.Listen,
	}
	if st.StartedAt != nil {
		t := st.StartedAt.AsTime()
		v.StartedAt = &t
	}
	return v
}

func printStatus(st *pb.Status) {
	var badge string
	switch {
	case st.ManagedRunning:
		badge = render(badgeRunning, "running")
	case st.ExternalRunning:
		badge = render(badgeExternal, "running (external)")
	default:
		badge = render(badgeStopped, "stopped")
	}
	fmt.Printf("%s %s\n", render(styleLabel, "Proxy:       "), badge)

	if st.ManagedRunning {
		fmt.Printf("%s %d\n", render(styleLabel, "PID:         "), st.Pid)
		if st.StartedAt != nil {
			uptime := time.Since(st.StartedAt.AsTime()).Truncate(time.Second)
			fmt.Printf("%s %s\n", render(styleLabel, "Uptime:      "), uptime)
		}
		fmt.Printf("%s %s\n", render(styleLabel, "Server:      "), render(styleValue, st.Server))
		fmt.Printf("%s %s\n", render(styleLabel, "Listen:      "), render(styleValue, st.Listen))
	}
	if st.ManagedRunning && st.ExternalRunning {
		fmt.Println(render(styleWarning, "Another ech-workers process is also running."))
	}

	proxy := render(badgeStopped, "off")
	if st.SystemProxyEnabled {
		proxy = render(badgeRunning, "on")
	}
	fmt.Printf("%s %s\n", render(styleLabel, "System proxy:"), proxy)
}

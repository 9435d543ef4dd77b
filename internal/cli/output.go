package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/ech-workers/ech-client/internal/daemon/worker"
	pb "github.com/ech-workers/ech-client/proto"
)

var (
	outputClear  bool
	outputFollow bool
	outputSince  uint64
)

const followInterval = 500 * time.Millisecond

var outputCmd = &cobra.Command{
	Use:   "output",
	Short: "Show the proxy worker's captured output",
	Long: `Show the last lines printed by the proxy worker. The daemon keeps the
most recent 1000 lines across restarts of the worker.`,
	Args: cobra.NoArgs,
	RunE: runOutput,
}

func init() {
	outputCmd.Flags().BoolVar(&outputClear, "clear", false, "Clear the captured output")
	outputCmd.Flags().BoolVarP(&outputFollow, "follow", "f", false, "Keep printing new lines")
	outputCmd.Flags().Uint64Var(&outputSince, "since", 0, "Only lines after this sequence number")
}

func runOutput(cmd *cobra.Command, args []string) error {
	if outputClear {
		return withDaemon(func(ctx context.Context, c *daemonClients) error {
			if _, err := c.supervisor.ClearOutput(ctx, &emptypb.Empty{}); err != nil {
				return err
			}
			fmt.Printf("%s Output cleared.\n", render(styleSuccess, "✓"))
			return nil
		})
	}

	c, err := dialDaemon()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seq := outputSince
	for {
		callCtx, cancel := context.WithTimeout(ctx, rpcTimeout)
		out, err := c.supervisor.GetOutput(callCtx, &pb.OutputRequest{Since: seq})
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return rpcError(err)
		}
		for _, line := range out.Lines {
			fmt.Println(formatOutputLine(line))
		}
		seq = out.Seq

		if !outputFollow {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(followInterval):
		}
	}
}

// formatOutputLine dims the stdout tag so stderr lines stand out.
func formatOutputLine(line string) string {
	if rest, ok := strings.CutPrefix(line, worker.StdoutTag); ok {
		return render(styleHint, strings.TrimSpace(worker.StdoutTag)) + " " + rest
	}
	return line
}

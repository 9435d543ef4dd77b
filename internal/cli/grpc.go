package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/ech-workers/ech-client/internal/config"
	"github.com/ech-workers/ech-client/internal/rpc"
	pb "github.com/ech-workers/ech-client/proto"
)

// rpcTimeout bounds every CLI call. Start and stop may wait on the worker.
const rpcTimeout = 30 * time.Second

// connectDaemon establishes a gRPC connection to the running daemon.
func connectDaemon() (*grpc.ClientConn, error) {
	info, err := config.LoadDaemonInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to load daemon info: %w", err)
	}
	if info == nil {
		return nil, fmt.Errorf("daemon not running")
	}

	return rpc.Dial(net.JoinHostPort(info.Host, strconv.Itoa(info.Port)))
}

// daemonClients bundles the typed clients for one connection.
type daemonClients struct {
	conn       *grpc.ClientConn
	supervisor pb.SupervisorServiceClient
	config     pb.ConfigServiceClient
	daemon     pb.DaemonServiceClient
}

func (c *daemonClients) Close() error {
	return c.conn.Close()
}

// dialDaemon starts the daemon if needed and connects to it.
func dialDaemon() (*daemonClients, error) {
	if err := EnsureDaemon(); err != nil {
		return nil, err
	}
	conn, err := connectDaemon()
	if err != nil {
		return nil, err
	}
	return &daemonClients{
		conn:       conn,
		supervisor: pb.NewSupervisorServiceClient(conn),
		config:     pb.NewConfigServiceClient(conn),
		daemon:     pb.NewDaemonServiceClient(conn),
	}, nil
}

// withDaemon connects and calls fn with a bounded context.
func withDaemon(fn func(ctx context.Context, c *daemonClients) error) error {
	c, err := dialDaemon()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	return rpcError(fn(ctx, c))
}

// rpcError strips the gRPC framing so users see the daemon's message.
func rpcError(err error) error {
	if err == nil {
		return nil
	}
	if st, ok := status.FromError(err); ok {
		return errors.New(st.Message())
	}
	return err
}

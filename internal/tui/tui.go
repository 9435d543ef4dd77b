// Package tui implements the interactive monitor for the proxy worker.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/ech-workers/ech-client/proto"
)

// Client is the part of the daemon API the monitor uses.
type Client interface {
	Status(ctx context.Context) (*pb.Status, error)
	Output(ctx context.Context, since uint64) (*pb.Output, error)
	Start(ctx context.Context) (*pb.StartResponse, error)
	Stop(ctx context.Context) error
	SetSystemProxy(ctx context.Context, enabled bool) error
	ClearOutput(ctx context.Context) error
}

// NewClient returns a Client over a daemon connection.
func NewClient(cc grpc.ClientConnInterface) Client {
	return &rpcClient{sup: pb.NewSupervisorServiceClient(cc)}
}

type rpcClient struct {
	sup pb.SupervisorServiceClient
}

func (c *rpcClient) Status(ctx context.Context) (*pb.Status, error) {
	return c.sup.GetStatus(ctx, &emptypb.Empty{})
}

func (c *rpcClient) Output(ctx context.Context, since uint64) (*pb.Output, error) {
	return c.sup.GetOutput(ctx, &pb.OutputRequest{Since: since})
}

func (c *rpcClient) Start(ctx context.Context) (*pb.StartResponse, error) {
	return c.sup.Start(ctx, &pb.StartRequest{})
}

func (c *rpcClient) Stop(ctx context.Context) error {
	_, err := c.sup.Stop(ctx, &pb.StopRequest{})
	return err
}

func (c *rpcClient) SetSystemProxy(ctx context.Context, enabled bool) error {
	_, err := c.sup.SetSystemProxy(ctx, &pb.SystemProxyRequest{Enabled: enabled})
	return err
}

func (c *rpcClient) ClearOutput(ctx context.Context) error {
	_, err := c.sup.ClearOutput(ctx, &emptypb.Empty{})
	return err
}

// Run launches the monitor and blocks until the user quits.
func Run(client Client) error {
	p := tea.NewProgram(NewModel(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

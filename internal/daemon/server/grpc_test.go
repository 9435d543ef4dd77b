package server

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/ech-workers/ech-client/internal/buildinfo"
	"github.com/ech-workers/ech-client/internal/models"
	"github.com/ech-workers/ech-client/internal/rpc"
	pb "github.com/ech-workers/ech-client/proto"
)

var empty = &emptypb.Empty{}

type clients struct {
	sup    pb.SupervisorServiceClient
	cfg    pb.ConfigServiceClient
	daemon pb.DaemonServiceClient
}

func dialFixture(t *testing.T, f *fixture) clients {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	g := grpc.NewServer()
	f.svc.register(g)
	go func() { _ = g.Serve(lis) }()
	t.Cleanup(g.Stop)

	conn, err := rpc.Dial("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return clients{
		sup:    pb.NewSupervisorServiceClient(conn),
		cfg:    pb.NewConfigServiceClient(conn),
		daemon: pb.NewDaemonServiceClient(conn),
	}
}

func TestGRPCStartStatusStop(t *testing.T) {
	f := newFixture(t)
	c := dialFixture(t, f)
	ctx := context.Background()

	res, err := c.sup.Start(ctx, &pb.StartRequest{})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if res.GetPid() == 0 || res.External || res.StartedAt == nil {
		t.Errorf("Start() = %v", res)
	}

	_, err = c.sup.Start(ctx, &pb.StartRequest{})
	if status.Code(err) != codes.FailedPrecondition {
		t.Errorf("second Start() code = %v, want FailedPrecondition", status.Code(err))
	}

	st, err := c.sup.GetStatus(ctx, empty)
	if err != nil {
		t.Fatalf("GetStatus() error = %v", err)
	}
	if !st.Running || !st.ManagedRunning || st.GetPid() != res.GetPid() || st.Listen != models.DefaultListen {
		t.Errorf("GetStatus() = %v", st)
	}

	ls, err := c.sup.GetLastState(ctx, empty)
	if err != nil {
		t.Fatalf("GetLastState() error = %v", err)
	}
	if !ls.WasRunning {
		t.Error("WasRunning = false after start")
	}

	if _, err := c.sup.Stop(ctx, &pb.StopRequest{}); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	st, _ = c.sup.GetStatus(ctx, empty)
	if st.Running {
		t.Errorf("GetStatus() after stop = %v", st)
	}
}

func TestGRPCStartInvalidConfig(t *testing.T) {
	f := newFixture(t)
	c := dialFixture(t, f)

	_, err := c.sup.Start(context.Background(), &pb.StartRequest{Config: &pb.ProxyConfig{Listen: models.DefaultListen}})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("Start() code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestGRPCStartUnknownServer(t *testing.T) {
	f := newFixture(t)
	c := dialFixture(t, f)

	_, err := c.sup.Start(context.Background(), &pb.StartRequest{ServerId: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Errorf("Start() code = %v, want NotFound", status.Code(err))
	}
}

func TestGRPCSystemProxy(t *testing.T) {
	f := newFixture(t)
	c := dialFixture(t, f)
	ctx := context.Background()

	sp, err := c.sup.SetSystemProxy(ctx, &pb.SystemProxyRequest{Enabled: true})
	if err != nil {
		t.Fatalf("SetSystemProxy(true) error = %v", err)
	}
	if !sp.Enabled || sp.Endpoint != models.DefaultListen {
		t.Errorf("SetSystemProxy(true) = %v", sp)
	}
	if !f.store.GetLastState().SystemProxyEnabled {
		t.Error("SystemProxyEnabled not recorded")
	}

	sp, err = c.sup.SetSystemProxy(ctx, &pb.SystemProxyRequest{Enabled: false})
	if err != nil {
		t.Fatalf("SetSystemProxy(false) error = %v", err)
	}
	if sp.Enabled {
		t.Errorf("SetSystemProxy(false) = %v", sp)
	}
	if _, reasserts := f.backend.Counts(); reasserts == 0 {
		t.Error("disable did not re-assert the setting")
	}
}

func TestGRPCOutput(t *testing.T) {
	f := newFixture(t)
	c := dialFixture(t, f)
	ctx := context.Background()

	f.output.Append("one")
	f.output.Append("two")

	out, err := c.sup.GetOutput(ctx, &pb.OutputRequest{})
	if err != nil {
		t.Fatalf("GetOutput() error = %v", err)
	}
	if len(out.Lines) != 2 || out.Seq != 2 {
		t.Fatalf("GetOutput(0) = %v", out)
	}

	f.output.Append("three")
	out, _ = c.sup.GetOutput(ctx, &pb.OutputRequest{Since: 2})
	if len(out.Lines) != 1 || out.Lines[0] != "three" || out.Seq != 3 {
		t.Errorf("GetOutput(2) = %v", out)
	}

	if _, err := c.sup.ClearOutput(ctx, empty); err != nil {
		t.Fatalf("ClearOutput() error = %v", err)
	}
	out, _ = c.sup.GetOutput(ctx, &pb.OutputRequest{})
	if len(out.Lines) != 0 {
		t.Errorf("GetOutput() after clear = %v", out)
	}
}

func TestGRPCServers(t *testing.T) {
	f := newFixture(t)
	c := dialFixture(t, f)
	ctx := context.Background()

	list, err := c.cfg.ListServers(ctx, empty)
	if err != nil {
		t.Fatalf("ListServers() error = %v", err)
	}
	if len(list.Servers) != 1 || list.GetCurrentId() == "" {
		t.Fatalf("ListServers() = %v, want the default profile", list)
	}

	cfg := models.DefaultProxyConfig()
	cfg.Server = "b.example:443"
	added, err := c.cfg.UpsertServer(ctx, &pb.Server{Name: "B", Config: rpc.FromProxyConfig(cfg)})
	if err != nil {
		t.Fatalf("UpsertServer() error = %v", err)
	}
	if added.GetId() == "" || added.Current {
		t.Errorf("UpsertServer() = %v", added)
	}

	cur, err := c.cfg.SetCurrentServer(ctx, &pb.ServerId{Id: added.GetId()})
	if err != nil {
		t.Fatalf("SetCurrentServer() error = %v", err)
	}
	if !cur.Current || cur.GetConfig().GetServer() != "b.example:443" {
		t.Errorf("SetCurrentServer() = %v", cur)
	}

	got, _ := c.cfg.GetConfig(ctx, empty)
	if got.Server != "b.example:443" {
		t.Errorf("GetConfig().Server = %q", got.Server)
	}

	if _, err := c.cfg.DeleteServer(ctx, &pb.ServerId{Id: "missing"}); status.Code(err) != codes.NotFound {
		t.Errorf("DeleteServer(missing) code = %v", status.Code(err))
	}
	if _, err := c.cfg.DeleteServer(ctx, &pb.ServerId{Id: added.GetId()}); err != nil {
		t.Fatalf("DeleteServer() error = %v", err)
	}
	list, _ = c.cfg.ListServers(ctx, empty)
	if len(list.Servers) != 1 || list.GetCurrentId() == added.GetId() {
		t.Errorf("ListServers() after delete = %v", list)
	}

	if _, err := c.cfg.UpsertServer(ctx, &pb.Server{Name: "bad", Config: &pb.ProxyConfig{}}); status.Code(err) != codes.InvalidArgument {
		t.Errorf("UpsertServer(invalid) code = %v", status.Code(err))
	}
}

func TestGRPCSaveConfigValidates(t *testing.T) {
	f := newFixture(t)
	c := dialFixture(t, f)
	ctx := context.Background()

	bad := rpc.FromProxyConfig(models.DefaultProxyConfig())
	bad.Listen = "nope"
	if _, err := c.cfg.SaveConfig(ctx, bad); status.Code(err) != codes.InvalidArgument {
		t.Errorf("SaveConfig(invalid) code = %v", status.Code(err))
	}

	good := rpc.FromProxyConfig(models.DefaultProxyConfig())
	good.Listen = "127.0.0.1:31000"
	saved, err := c.cfg.SaveConfig(ctx, good)
	if err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}
	if saved.Listen != "127.0.0.1:31000" || f.store.GetProxyConfig().Listen != "127.0.0.1:31000" {
		t.Errorf("SaveConfig() = %v", saved)
	}
}

func TestGRPCDaemon(t *testing.T) {
	f := newFixture(t)
	c := dialFixture(t, f)
	ctx := context.Background()

	st, err := c.daemon.GetStatus(ctx, empty)
	if err != nil {
		t.Fatalf("GetStatus() error = %v", err)
	}
	if st.Version != buildinfo.Version || st.Port != 50051 || st.GetHttpAddr() != "127.0.0.1:30080" {
		t.Errorf("GetStatus() = %v", st)
	}

	if _, err := c.daemon.Shutdown(ctx, empty); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	select {
	case <-f.shutdown:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown callback not invoked")
	}
}

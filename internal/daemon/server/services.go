package server

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/ech-workers/ech-client/internal/buildinfo"
	"github.com/ech-workers/ech-client/internal/config"
	"github.com/ech-workers/ech-client/internal/daemon/supervisor"
	"github.com/ech-workers/ech-client/internal/daemon/sysproxy"
	"github.com/ech-workers/ech-client/internal/daemon/worker"
	"github.com/ech-workers/ech-client/internal/models"
	"github.com/ech-workers/ech-client/internal/rpc"
	pb "github.com/ech-workers/ech-client/proto"
)

// Services implements every command exposed upward. The gRPC services and
// the HTTP API both call into it.
type Services struct {
	Supervisor *supervisor.Supervisor
	Store      *config.Store
	Output     *worker.OutputLog
	Proxy      *sysproxy.Controller
	// Info returns the running daemon's info; may be nil.
	Info func() *models.DaemonInfo
	// Shutdown asks the daemon to exit.
	Shutdown func()
	Logger   logrus.FieldLogger
}

func (s *Services) register(g grpc.ServiceRegistrar) {
	pb.RegisterSupervisorServiceServer(g, &supervisorService{Services: s})
	pb.RegisterConfigServiceServer(g, &configService{Services: s})
	pb.RegisterDaemonServiceServer(g, &daemonService{Services: s})
}

func (s *Services) log() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}

// statusError maps the error taxonomy onto gRPC codes.
func statusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	code := codes.Internal
	switch {
	case errors.Is(err, supervisor.ErrAlreadyRunning):
		code = codes.FailedPrecondition
	case errors.Is(err, models.ErrInvalidConfig):
		code = codes.InvalidArgument
	case errors.Is(err, config.ErrServerNotFound), errors.Is(err, worker.ErrExecutableNotFound):
		code = codes.NotFound
	case errors.Is(err, sysproxy.ErrSettingsAccessDenied):
		code = codes.PermissionDenied
	case errors.Is(err, sysproxy.ErrUnsupported):
		code = codes.Unimplemented
	}
	return status.Error(code, err.Error())
}

// ============================================================================
// Supervisor
// ============================================================================

type supervisorService struct {
	pb.UnimplementedSupervisorServiceServer
	*Services
}

func (s *supervisorService) Start(ctx context.Context, req *pb.StartRequest) (*pb.StartResponse, error) {
	cfg := s.Store.GetProxyConfig()
	switch {
	case req.Config != nil:
		cfg = rpc.ToProxyConfig(req.Config)
	case req.ServerId != "":
		p, ok := s.Store.GetServer(req.ServerId)
		if !ok {
			return nil, status.Errorf(codes.NotFound, "%v: %s", config.ErrServerNotFound, req.ServerId)
		}
		cfg = p.ProxyConfig
	}

	res, err := s.Supervisor.Start(ctx, cfg)
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.StartResponse{
		Pid:       int32(res.PID),
		StartedAt: rpc.Timestamp(res.StartedAt),
		External:  res.External,
		Message:   res.Message,
	}, nil
}

func (s *supervisorService) Stop(ctx context.Context, req *pb.StopRequest) (*emptypb.Empty, error) {
	var err error
	if req.All {
		err = s.Supervisor.StopAll(ctx)
	} else {
		err = s.Supervisor.Stop(ctx)
	}
	if err != nil {
		return nil, statusError(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *supervisorService) GetStatus(ctx context.Context, _ *emptypb.Empty) (*pb.Status, error) {
	return toStatus(s.Supervisor.Status()), nil
}

func toStatus(st supervisor.Status) *pb.Status {
	return &pb.Status{
		State:              string(st.State),
		Running:            st.Running,
		ManagedRunning:     st.ManagedRunning,
		ExternalRunning:    st.ExternalRunning,
		SystemProxyEnabled: st.SystemProxyEnabled,
		Pid:                int32(st.PID),
		StartedAt:          rpc.Timestamp(st.StartedAt),
		Server:             st.Server,
		Listen:             st.Listen,
	}
}

func (s *supervisorService) SetSystemProxy(ctx context.Context, req *pb.SystemProxyRequest) (*pb.SystemProxyStatus, error) {
	if err := s.Supervisor.SetSystemProxy(req.Enabled); err != nil {
		return nil, statusError(err)
	}
	return s.GetSystemProxy(ctx, nil)
}

func (s *supervisorService) GetSystemProxy(ctx context.Context, _ *emptypb.Empty) (*pb.SystemProxyStatus, error) {
	cur, err := s.Proxy.Current()
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.SystemProxyStatus{Enabled: cur.Enabled, Endpoint: cur.Endpoint}, nil
}

func (s *supervisorService) GetOutput(ctx context.Context, req *pb.OutputRequest) (*pb.Output, error) {
	if req.Since == 0 {
		return &pb.Output{Lines: s.Output.Lines(), Seq: s.Output.Seq()}, nil
	}
	lines, seq := s.Output.Since(req.Since)
	return &pb.Output{Lines: lines, Seq: seq}, nil
}

func (s *supervisorService) ClearOutput(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	s.Output.Clear()
	return &emptypb.Empty{}, nil
}

func (s *supervisorService) GetLastState(ctx context.Context, _ *emptypb.Empty) (*pb.LastState, error) {
	return rpc.FromLastState(s.Store.GetLastState()), nil
}

// ============================================================================
// Config
// ============================================================================

type configService struct {
	pb.UnimplementedConfigServiceServer
	*Services
}

func (s *configService) save() error {
	if err := s.Store.Save(); err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	return nil
}

func (s *configService) GetConfig(ctx context.Context, _ *emptypb.Empty) (*pb.ProxyConfig, error) {
	return rpc.FromProxyConfig(s.Store.GetProxyConfig()), nil
}

func (s *configService) SaveConfig(ctx context.Context, req *pb.ProxyConfig) (*pb.ProxyConfig, error) {
	cfg := rpc.ToProxyConfig(req)
	if err := cfg.Validate(); err != nil {
		return nil, statusError(err)
	}
	s.Store.SetProxyConfig(cfg)
	if err := s.save(); err != nil {
		return nil, err
	}
	return rpc.FromProxyConfig(s.Store.GetProxyConfig()), nil
}

func (s *configService) ListServers(ctx context.Context, _ *emptypb.Empty) (*pb.ServerList, error) {
	current := ""
	if p, ok := s.Store.CurrentServer(); ok {
		current = p.ID
	}
	profiles := s.Store.ListServers()
	list := &pb.ServerList{Servers: make([]*pb.Server, 0, len(profiles)), CurrentId: current}
	for _, p := range profiles {
		list.Servers = append(list.Servers, rpc.FromServerProfile(p, current))
	}
	return list, nil
}

func (s *configService) GetCurrentServer(ctx context.Context, _ *emptypb.Empty) (*pb.Server, error) {
	p, ok := s.Store.CurrentServer()
	if !ok {
		return nil, status.Error(codes.NotFound, "no server selected")
	}
	return rpc.FromServerProfile(p, p.ID), nil
}

func (s *configService) SetCurrentServer(ctx context.Context, req *pb.ServerId) (*pb.Server, error) {
	if err := s.Store.SetCurrentServer(req.GetId()); err != nil {
		return nil, statusError(err)
	}
	if err := s.save(); err != nil {
		return nil, err
	}
	return s.GetCurrentServer(ctx, nil)
}

func (s *configService) UpsertServer(ctx context.Context, req *pb.Server) (*pb.Server, error) {
	p := rpc.ToServerProfile(req)
	if err := p.ProxyConfig.Validate(); err != nil {
		return nil, statusError(err)
	}
	if p.Name == "" {
		p.Name = p.Server
	}
	saved := s.Store.UpsertServer(p)
	if err := s.save(); err != nil {
		return nil, err
	}
	current := ""
	if cur, ok := s.Store.CurrentServer(); ok {
		current = cur.ID
	}
	return rpc.FromServerProfile(saved, current), nil
}

func (s *configService) DeleteServer(ctx context.Context, req *pb.ServerId) (*emptypb.Empty, error) {
	if err := s.Store.DeleteServer(req.GetId()); err != nil {
		return nil, statusError(err)
	}
	if err := s.save(); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

// ============================================================================
// Daemon
// ============================================================================

type daemonService struct {
	pb.UnimplementedDaemonServiceServer
	*Services
}

func (s *daemonService) GetStatus(ctx context.Context, _ *emptypb.Empty) (*pb.DaemonStatus, error) {
	st := &pb.DaemonStatus{
		Version:       buildinfo.Version,
		Pid:           int32(os.Getpid()),
		WorkerRunning: s.Supervisor.Status().Running,
	}
	if s.Info != nil {
		if info := s.Info(); info != nil {
			st.Host = info.Host
			st.Port = int32(info.Port)
			st.HttpAddr = info.HTTPAddr
			st.StartedAt = rpc.Timestamp(info.StartedAt)
		}
	}
	return st, nil
}

func (s *daemonService) Shutdown(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if s.Services.Shutdown == nil {
		return nil, status.Error(codes.Unimplemented, "shutdown not available")
	}
	s.log().Info("shutdown requested over rpc")
	// Let the response go out before the server stops.
	go func() {
		time.Sleep(100 * time.Millisecond)
		s.Services.Shutdown()
	}()
	return &emptypb.Empty{}, nil
}

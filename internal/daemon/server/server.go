// Package server exposes the daemon over gRPC and a local HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	pb "github.com/ech-workers/ech-client/proto"
)

// DefaultHost is the interface both listeners bind to.
const DefaultHost = "127.0.0.1"

// Options configures a Server.
type Options struct {
	Host string
	// Port is the gRPC port; 0 picks a free one.
	Port int
	// HTTPListen is the HTTP API address; empty disables it.
	HTTPListen string
	Metrics    http.Handler
	Logger     logrus.FieldLogger
}

// Server is the daemon's gRPC server plus its HTTP API.
type Server struct {
	grpcServer *grpc.Server
	listener   net.Listener
	port       int

	httpServer   *http.Server
	httpListener net.Listener

	services *Services
	log      logrus.FieldLogger
}

// New creates a server listening on opts.Port and, when configured,
// opts.HTTPListen. Nothing is served until Serve.
func New(svc *Services, opts Options) (*Server, error) {
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	listener, err := (&net.ListenConfig{}).Listen(context.TODO(), "tcp", net.JoinHostPort(opts.Host, fmt.Sprint(opts.Port)))
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	// Get actual port if dynamically allocated
	actualPort := listener.Addr().(*net.TCPAddr).Port

	srv := &Server{
		listener: listener,
		port:     actualPort,
		services: svc,
		log:      log,
	}
	srv.grpcServer = grpc.NewServer(grpc.ChainUnaryInterceptor(srv.logUnary))
	svc.register(srv.grpcServer)

	if opts.HTTPListen != "" {
		hl, err := (&net.ListenConfig{}).Listen(context.TODO(), "tcp", opts.HTTPListen)
		if err != nil {
			listener.Close()
			return nil, fmt.Errorf("failed to listen on %s: %w", opts.HTTPListen, err)
		}
		srv.httpListener = hl
		srv.httpServer = &http.Server{
			Handler:           NewRouter(svc, opts.Metrics, log),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return srv, nil
}

// Port returns the gRPC port.
func (s *Server) Port() int {
	return s.port
}

// HTTPAddr returns the HTTP API address, or "" when disabled.
func (s *Server) HTTPAddr() string {
	if s.httpListener == nil {
		return ""
	}
	return s.httpListener.Addr().String()
}

// Serve serves gRPC and HTTP until Stop is called.
func (s *Server) Serve() error {
	errc := make(chan error, 2)
	if s.httpServer != nil {
		go func() {
			if err := s.httpServer.Serve(s.httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- fmt.Errorf("http: %w", err)
			}
		}()
	}
	go func() {
		errc <- s.grpcServer.Serve(s.listener)
	}()
	return <-errc
}

// Stop gracefully stops both servers.
func (s *Server) Stop() {
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
	}
	s.grpcServer.GracefulStop()
}

func (s *Server) logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	entry := s.log.WithFields(logrus.Fields{"method": info.FullMethod, "duration": time.Since(start)})
	if err != nil {
		entry.WithError(err).Warn("rpc failed")
	} else {
		entry.Debug("rpc")
	}
	return resp, err
}

var (
	_ pb.SupervisorServiceServer = (*supervisorService)(nil)
	_ pb.ConfigServiceServer     = (*configService)(nil)
	_ pb.DaemonServiceServer     = (*daemonService)(nil)
)

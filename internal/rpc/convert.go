package rpc

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/ech-workers/ech-client/internal/models"
	pb "github.com/ech-workers/ech-client/proto"
)

// FromProxyConfig converts a model config.
func FromProxyConfig(c models.ProxyConfig) *pb.ProxyConfig {
	return &pb.ProxyConfig{
		Listen:   c.Listen,
		Server:   c.Server,
		ServerIp: c.ServerIP,
		Token:    c.Token,
		Dns:      c.DNS,
		Ech:      c.ECH,
		Routing:  c.Routing,
	}
}

// ToProxyConfig converts to a model config. A nil message yields the zero
// config.
func ToProxyConfig(c *pb.ProxyConfig) models.ProxyConfig {
	return models.ProxyConfig{
		Listen:   c.GetListen(),
		Server:   c.GetServer(),
		ServerIP: c.GetServerIp(),
		Token:    c.GetToken(),
		DNS:      c.GetDns(),
		ECH:      c.GetEch(),
		Routing:  c.GetRouting(),
	}
}

// FromServerProfile converts a model profile.
func FromServerProfile(p models.ServerProfile, currentID string) *pb.Server {
	return &pb.Server{
		Id:      p.ID,
		Name:    p.Name,
		Config:  FromProxyConfig(p.ProxyConfig),
		Current: p.ID == currentID,
	}
}

// ToServerProfile converts to a model profile.
func ToServerProfile(s *pb.Server) models.ServerProfile {
	return models.ServerProfile{
		ID:          s.GetId(),
		Name:        s.GetName(),
		ProxyConfig: ToProxyConfig(s.GetConfig()),
	}
}

// FromLastState converts a model LastState.
func FromLastState(ls models.LastState) *pb.LastState {
	return &pb.LastState{
		WasRunning:         ls.WasRunning,
		SystemProxyEnabled: ls.SystemProxyEnabled,
		AutoStartChecked:   ls.AutoStartChecked,
		PreferredMode:      int32(ls.PreferredMode),
	}
}

// Timestamp converts t, mapping the zero time to nil.
func Timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

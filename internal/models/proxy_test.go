package models

import (
	"errors"
	"testing"
)

func TestProxyConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ProxyConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *ProxyConfig) {}},
		{name: "empty server", mutate: func(c *ProxyConfig) { c.Server = "" }, wantErr: true},
		{name: "empty listen allowed", mutate: func(c *ProxyConfig) { c.Listen = "" }},
		{name: "listen without port", mutate: func(c *ProxyConfig) { c.Listen = "127.0.0.1" }, wantErr: true},
		{name: "listen without host", mutate: func(c *ProxyConfig) { c.Listen = ":30000" }, wantErr: true},
		{name: "listen bad port", mutate: func(c *ProxyConfig) { c.Listen = "127.0.0.1:http" }, wantErr: true},
		{name: "listen port out of range", mutate: func(c *ProxyConfig) { c.Listen = "127.0.0.1:70000" }, wantErr: true},
		{name: "ipv6 listen", mutate: func(c *ProxyConfig) { c.Listen = "[::1]:30000" }},
		{name: "bypass_cn routing", mutate: func(c *ProxyConfig) { c.Routing = RoutingBypassCN }},
		{name: "empty routing", mutate: func(c *ProxyConfig) { c.Routing = "" }},
		{name: "unknown routing", mutate: func(c *ProxyConfig) { c.Routing = "split" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultProxyConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestSplitListen(t *testing.T) {
	host, port, err := SplitListen("127.0.0.1:30000")
	if err != nil {
		t.Fatalf("SplitListen() error = %v", err)
	}
	if host != "127.0.0.1" || port != "30000" {
		t.Errorf("SplitListen() = %q, %q", host, port)
	}
}

func TestNewServerProfile(t *testing.T) {
	a := NewServerProfile("a", DefaultProxyConfig())
	b := NewServerProfile("b", DefaultProxyConfig())
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a.ID, b.ID)
	}
	if a.Server != DefaultServer {
		t.Errorf("Server = %q, want %q", a.Server, DefaultServer)
	}
}

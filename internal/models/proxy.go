// Package models contains shared data structures used across the application.
package models

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// Routing modes understood by the worker.
const (
	RoutingGlobal   = "global"
	RoutingBypassCN = "bypass_cn"
	RoutingNone     = "none"
)

// Default worker settings.
const (
	DefaultListen  = "127.0.0.1:30000"
	DefaultServer  = "example.workers.dev:443"
	DefaultDNS     = "dns.alidns.com/dns-query"
	DefaultECH     = "cloudflare-ech.com"
	DefaultRouting = RoutingGlobal
)

// ErrInvalidConfig is returned by ProxyConfig.Validate.
var ErrInvalidConfig = errors.New("invalid proxy config")

// ProxyConfig fully determines the worker's argument vector.
type ProxyConfig struct {
	Listen   string `yaml:"listen" json:"listen"`
	Server   string `yaml:"server" json:"server"`
	ServerIP string `yaml:"server_ip" json:"server_ip"`
	Token    string `yaml:"token" json:"token"`
	DNS      string `yaml:"dns" json:"dns"`
	ECH      string `yaml:"ech" json:"ech"`
	Routing  string `yaml:"routing" json:"routing"`
}

// DefaultProxyConfig returns the configuration used for a fresh install.
func DefaultProxyConfig() ProxyConfig {
	return ProxyConfig{
		Listen:  DefaultListen,
		Server:  DefaultServer,
		DNS:     DefaultDNS,
		ECH:     DefaultECH,
		Routing: DefaultRouting,
	}
}

// Validate checks the config before it is handed to the worker.
func (c ProxyConfig) Validate() error {
	if c.Server == "" {
		return fmt.Errorf("%w: server address is required", ErrInvalidConfig)
	}
	if c.Listen != "" {
		if _, _, err := SplitListen(c.Listen); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	switch c.Routing {
	case "", RoutingGlobal, RoutingBypassCN, RoutingNone:
	default:
		return fmt.Errorf("%w: unknown routing mode %q", ErrInvalidConfig, c.Routing)
	}
	return nil
}

// SplitListen splits a listen address into host and port.
func SplitListen(listen string) (host, port string, err error) {
	host, port, err = net.SplitHostPort(listen)
	if err != nil {
		return "", "", fmt.Errorf("listen address %q: %w", listen, err)
	}
	if host == "" {
		return "", "", fmt.Errorf("listen address %q: missing host", listen)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n <= 0 || n > 65535 {
		return "", "", fmt.Errorf("listen address %q: invalid port", listen)
	}
	return host, port, nil
}

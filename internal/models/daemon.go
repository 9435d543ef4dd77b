package models

import "time"

// DaemonInfo represents the daemon connection information.
// This corresponds to ~/.ech-client/daemon.yaml.
type DaemonInfo struct {
	Version   int       `yaml:"version"`
	Host      string    `yaml:"host"`
	Port      int       `yaml:"port"`
	HTTPAddr  string    `yaml:"http_addr,omitempty"`
	PID       int       `yaml:"pid"`
	StartedAt time.Time `yaml:"started_at"`
}

// NewDaemonInfo creates a new daemon info with current values.
func NewDaemonInfo(host string, port int, httpAddr string, pid int) *DaemonInfo {
	return &DaemonInfo{
		Version:   1,
		Host:      host,
		Port:      port,
		HTTPAddr:  httpAddr,
		PID:       pid,
		StartedAt: time.Now().UTC(),
	}
}

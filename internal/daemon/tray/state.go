// Package tray implements the system tray icon and menu for the daemon.
package tray

// DaemonState is what the tray reads from and drives in the daemon.
type DaemonState interface {
	Snapshot() Snapshot
	Servers() []ServerInfo
	Start()
	Stop()
	SetSystemProxy(enabled bool)
	SelectServer(id string)
	RequestShutdown()
}

// Snapshot is the worker and proxy state shown in the menu.
type Snapshot struct {
	Running     bool
	External    bool
	Busy        bool // a start or stop is in progress
	SystemProxy bool
	Server      string
	Listen      string
	HTTPAddr    string
}

// ServerInfo describes a server profile for the server menu.
type ServerInfo struct {
	ID      string
	Name    string
	Current bool
}

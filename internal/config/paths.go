// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the per-user ech-client directory.
	GlobalDirName = ".ech-client"

	// LogsDirName is the name of the logs directory.
	LogsDirName = "logs"

	// SessionsDirName holds one log file per worker session.
	SessionsDirName = "sessions"
)

// File names
const (
	ConfigFileName    = "config.yaml"
	DaemonFileName    = "daemon.yaml"
	DaemonLockName    = "daemon.lock"
	SettingsFileName  = "settings.yaml"
	DaemonLogFileName = "daemon.log"
)

// homeOverride lets tests point the global directory at a temp dir.
var homeOverride string

// GlobalDir returns the path to the global directory (~/.ech-client/).
func GlobalDir() (string, error) {
	if homeOverride != "" {
		return filepath.Join(homeOverride, GlobalDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

func globalFile(name string) (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// GlobalConfigFile returns the path to the config.yaml file.
func GlobalConfigFile() (string, error) { return globalFile(ConfigFileName) }

// GlobalDaemonFile returns the path to the daemon.yaml file.
func GlobalDaemonFile() (string, error) { return globalFile(DaemonFileName) }

// GlobalDaemonLock returns the path to the daemon's instance lock.
func GlobalDaemonLock() (string, error) { return globalFile(DaemonLockName) }

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) { return globalFile(SettingsFileName) }

// GlobalLogsDir returns the path to the logs directory.
func GlobalLogsDir() (string, error) { return globalFile(LogsDirName) }

// GlobalDaemonLogFile returns the path to the daemon's own log file.
func GlobalDaemonLogFile() (string, error) {
	dir, err := GlobalLogsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DaemonLogFileName), nil
}

// GlobalSessionsDir returns the path to the worker session logs.
func GlobalSessionsDir() (string, error) {
	dir, err := GlobalLogsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SessionsDirName), nil
}

// EnsureGlobalDir creates the global directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureGlobalLogsDir creates the logs and session logs directories.
func EnsureGlobalLogsDir() error {
	dir, err := GlobalSessionsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

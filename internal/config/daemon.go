package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"github.com/ech-workers/ech-client/internal/models"
)

// ErrDaemonLocked is returned when another daemon holds the instance lock.
var ErrDaemonLocked = errors.New("daemon already running (lock held by another process)")

// LoadDaemonInfo loads the daemon connection info from ~/.ech-client/daemon.yaml.
// Returns nil if the file doesn't exist.
func LoadDaemonInfo() (*models.DaemonInfo, error) {
	path, err := GlobalDaemonFile()
	if err != nil {
		return nil, err
	}

	if !FileExists(path) {
		return nil, nil
	}

	var info models.DaemonInfo
	if err := LoadYAML(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveDaemonInfo saves the daemon connection info to ~/.ech-client/daemon.yaml.
func SaveDaemonInfo(info *models.DaemonInfo) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := GlobalDaemonFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, info)
}

// RemoveDaemonInfo removes the daemon.yaml file.
func RemoveDaemonInfo() error {
	path, err := GlobalDaemonFile()
	if err != nil {
		return err
	}

	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsDaemonRunning checks if the daemon process is still running.
// Returns true if daemon.yaml exists and the PID is alive.
func IsDaemonRunning() (bool, *models.DaemonInfo, error) {
	info, err := LoadDaemonInfo()
	if err != nil {
		return false, nil, err
	}
	if info == nil {
		return false, nil, nil
	}

	if !pidAlive(info.PID) {
		_ = RemoveDaemonInfo()
		return false, info, nil
	}

	return true, info, nil
}

// DaemonLock is the exclusive per-user lock held for the daemon's lifetime.
type DaemonLock struct {
	fl *flock.Flock
}

// AcquireDaemonLock takes the instance lock without blocking.
func AcquireDaemonLock() (*DaemonLock, error) {
	if err := EnsureGlobalDir(); err != nil {
		return nil, err
	}
	path, err := GlobalDaemonLock()
	if err != nil {
		return nil, err
	}

	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", path, err)
	}
	if !locked {
		return nil, ErrDaemonLocked
	}
	return &DaemonLock{fl: fl}, nil
}

// Release drops the lock.
func (l *DaemonLock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}

package models

import "time"

// DaemonConfig holds settings for the daemon's listeners and background jobs.
type DaemonConfig struct {
	Port            int           `yaml:"port"`        // gRPC, 0 = dynamic
	HTTPListen      string        `yaml:"http_listen"` // empty disables the HTTP API
	PollInterval    time.Duration `yaml:"poll_interval"`
	AutoResumeDelay time.Duration `yaml:"auto_resume_delay"`
}

// WorkerConfig holds settings for locating and stopping the worker.
type WorkerConfig struct {
	Dir             string        `yaml:"dir"` // empty = directory of the running executable
	StopTimeout     time.Duration `yaml:"stop_timeout"`
	CleanupAttempts int           `yaml:"cleanup_attempts"`
	CleanupDelay    time.Duration `yaml:"cleanup_delay"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// Settings represents global application settings.
// This corresponds to ~/.ech-client/settings.yaml.
type Settings struct {
	Version       int          `yaml:"version"`
	Daemon        DaemonConfig `yaml:"daemon"`
	Worker        WorkerConfig `yaml:"worker"`
	Notifications bool         `yaml:"notifications"`
	Log           LogConfig    `yaml:"log"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Daemon: DaemonConfig{
			Port:            0,
			HTTPListen:      "127.0.0.1:30080",
			PollInterval:    2 * time.Second,
			AutoResumeDelay: 3 * time.Second,
		},
		Worker: WorkerConfig{
			StopTimeout:     5 * time.Second,
			CleanupAttempts: 3,
			CleanupDelay:    time.Second,
		},
		Notifications: true,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills zero values left by a partial settings file.
func (s *Settings) ApplyDefaults() {
	d := NewSettings()
	if s.Version == 0 {
		s.Version = d.Version
	}
	if s.Daemon.PollInterval <= 0 {
		s.Daemon.PollInterval = d.Daemon.PollInterval
	}
	if s.Daemon.AutoResumeDelay <= 0 {
		s.Daemon.AutoResumeDelay = d.Daemon.AutoResumeDelay
	}
	if s.Worker.StopTimeout <= 0 {
		s.Worker.StopTimeout = d.Worker.StopTimeout
	}
	if s.Worker.CleanupAttempts <= 0 {
		s.Worker.CleanupAttempts = d.Worker.CleanupAttempts
	}
	if s.Worker.CleanupDelay <= 0 {
		s.Worker.CleanupDelay = d.Worker.CleanupDelay
	}
	if s.Log.Level == "" {
		s.Log.Level = d.Log.Level
	}
}

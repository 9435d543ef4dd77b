package models

// LogEntry represents metadata for a single worker session log.
type LogEntry struct {
	LogID     string `yaml:"log_id"`
	PID       int    `yaml:"pid"`
	Server    string `yaml:"server"`
	StartedAt string `yaml:"started_at"`
	EndedAt   string `yaml:"ended_at"`
	ExitCode  int    `yaml:"exit_code"`
	Status    string `yaml:"status"` // "stopped" | "exited"
}

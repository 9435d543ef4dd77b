package supervisor

import (
	"context"
	"time"

	"github.com/ech-workers/ech-client/internal/daemon/worker"
	"github.com/ech-workers/ech-client/internal/models"
)

// Handle is a worker process this instance spawned.
type Handle interface {
	PID() int
	StartedAt() time.Time
	Config() models.ProxyConfig
	Stop(timeout time.Duration) error
	Poll() (running bool, exitCode int)
	Done() <-chan struct{}
}

// outputReporter is implemented by handles that track their own output.
type outputReporter interface {
	Output() []string
}

// Spawner starts worker processes.
type Spawner interface {
	Spawn(cfg models.ProxyConfig) (Handle, error)
}

// SpawnerFunc adapts a function to Spawner.
type SpawnerFunc func(cfg models.ProxyConfig) (Handle, error)

func (f SpawnerFunc) Spawn(cfg models.ProxyConfig) (Handle, error) { return f(cfg) }

// WorkerSpawner adapts a worker.Spawner.
func WorkerSpawner(s *worker.Spawner) Spawner {
	return SpawnerFunc(func(cfg models.ProxyConfig) (Handle, error) {
		p, err := s.Spawn(cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}

// Census inspects the OS process table for workers.
type Census interface {
	Workers() ([]int, error)
	TerminateAllMatching(ctx context.Context) error
}

// ProxyController switches the OS proxy.
type ProxyController interface {
	EnableListen(listen string) error
	Disable() error
	IsEnabled() (bool, error)
}

// StateStore persists the proxy config and LastState.
type StateStore interface {
	GetProxyConfig() models.ProxyConfig
	GetLastState() models.LastState
	UpdateLastState(fn func(*models.LastState)) models.LastState
	Save() error
}

// Observer receives lifecycle events, for metrics.
type Observer interface {
	StartAttempt(outcome string)
	Stopped()
	WorkerExited(expected bool)
}

// Notifier shows desktop notifications.
type Notifier interface {
	Notify(title, message string)
}

// Start outcomes reported to Observer.
const (
	OutcomeStarted        = "started"
	OutcomeExternal       = "external"
	OutcomeAlreadyRunning = "already_running"
	OutcomeInvalid        = "invalid"
	OutcomeFailed         = "failed"
)

type nopObserver struct{}

func (nopObserver) StartAttempt(string) {}
func (nopObserver) Stopped()            {}
func (nopObserver) WorkerExited(bool)   {}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) {}

package server

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ech-workers/ech-client/internal/config"
	"github.com/ech-workers/ech-client/internal/daemon/supervisor"
	"github.com/ech-workers/ech-client/internal/daemon/sysproxy"
	"github.com/ech-workers/ech-client/internal/daemon/worker"
	"github.com/ech-workers/ech-client/internal/logging"
	"github.com/ech-workers/ech-client/internal/models"
)

type testHandle struct {
	pid       int
	cfg       models.ProxyConfig
	startedAt time.Time
	done      chan struct{}
	once      sync.Once
	onExit    func(pid int)
}

func (h *testHandle) PID() int                   { return h.pid }
func (h *testHandle) StartedAt() time.Time       { return h.startedAt }
func (h *testHandle) Config() models.ProxyConfig { return h.cfg }
func (h *testHandle) Done() <-chan struct{}      { return h.done }

func (h *testHandle) Stop(time.Duration) error {
	h.once.Do(func() {
		h.onExit(h.pid)
		close(h.done)
	})
	return nil
}

func (h *testHandle) Poll() (bool, int) {
	select {
	case <-h.done:
		return false, 0
	default:
		return true, 0
	}
}

// testWorkers spawns testHandles and doubles as their census.
type testWorkers struct {
	mu      sync.Mutex
	nextPID int
	live    map[int]bool
	output  *worker.OutputLog
}

func (w *testWorkers) Spawn(cfg models.ProxyConfig) (supervisor.Handle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextPID++
	w.live[w.nextPID] = true
	w.output.Append(worker.StdoutTag + "listening on " + cfg.Listen)
	return &testHandle{
		pid:       w.nextPID,
		cfg:       cfg,
		startedAt: time.Now(),
		done:      make(chan struct{}),
		onExit: func(pid int) {
			w.mu.Lock()
			delete(w.live, pid)
			w.mu.Unlock()
		},
	}, nil
}

func (w *testWorkers) Workers() ([]int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var pids []int
	for pid := range w.live {
		pids = append(pids, pid)
	}
	return pids, nil
}

func (w *testWorkers) TerminateAllMatching(context.Context) error { return nil }

type fixture struct {
	svc      *Services
	store    *config.Store
	backend  *sysproxy.MemoryBackend
	output   *worker.OutputLog
	shutdown chan struct{}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logging.Discard()

	f := &fixture{
		store:    config.OpenStore(filepath.Join(t.TempDir(), "config.yaml"), config.WithLogger(log)),
		backend:  sysproxy.NewMemoryBackend(),
		output:   worker.NewOutputLog(worker.DefaultOutputCapacity),
		shutdown: make(chan struct{}, 1),
	}
	workers := &testWorkers{nextPID: 4000, live: make(map[int]bool), output: f.output}
	proxy := sysproxy.NewController(f.backend, log)

	sup := supervisor.New(supervisor.Options{
		Spawner:     workers,
		Census:      workers,
		Proxy:       proxy,
		Store:       f.store,
		StopTimeout: 10 * time.Millisecond,
		Logger:      log,
	})
	info := models.NewDaemonInfo("127.0.0.1", 50051, "127.0.0.1:30080", 1)

	f.svc = &Services{
		Supervisor: sup,
		Store:      f.store,
		Output:     f.output,
		Proxy:      proxy,
		Info:       func() *models.DaemonInfo { return info },
		Shutdown:   func() { f.shutdown <- struct{}{} },
		Logger:     log,
	}
	t.Cleanup(func() { _ = sup.Shutdown(context.Background()) })
	return f
}

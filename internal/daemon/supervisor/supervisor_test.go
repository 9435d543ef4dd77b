package supervisor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ech-workers/ech-client/internal/daemon/sysproxy"
	"github.com/ech-workers/ech-client/internal/daemon/worker"
	"github.com/ech-workers/ech-client/internal/logging"
	"github.com/ech-workers/ech-client/internal/models"
)

type fakeHandle struct {
	pid       int
	cfg       models.ProxyConfig
	startedAt time.Time
	done      chan struct{}
	once      sync.Once
	code      atomic.Int64
	stopErr   error
	onStop    func()
	output    []string
}

func (h *fakeHandle) PID() int                   { return h.pid }
func (h *fakeHandle) StartedAt() time.Time       { return h.startedAt }
func (h *fakeHandle) Config() models.ProxyConfig { return h.cfg }
func (h *fakeHandle) Done() <-chan struct{}      { return h.done }
func (h *fakeHandle) Output() []string           { return h.output }

func (h *fakeHandle) exit(code int) {
	h.once.Do(func() {
		h.code.Store(int64(code))
		if h.onStop != nil {
			h.onStop()
		}
		close(h.done)
	})
}

func (h *fakeHandle) Stop(time.Duration) error {
	if h.stopErr != nil {
		return h.stopErr
	}
	h.exit(0)
	return nil
}

func (h *fakeHandle) Poll() (bool, int) {
	select {
	case <-h.done:
		return false, int(h.code.Load())
	default:
		return true, 0
	}
}

// fakeSpawner hands out fakeHandles and tracks how many are alive.
type fakeSpawner struct {
	mu      sync.Mutex
	nextPID int
	spawns  int
	live    map[int]*fakeHandle
	maxLive int
	err     error
	delay   time.Duration
}

func newFakeSpawner() *fakeSpawner {
	return &fakeSpawner{nextPID: 1000, live: make(map[int]*fakeHandle)}
}

func (f *fakeSpawner) Spawn(cfg models.ProxyConfig) (Handle, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.nextPID++
	f.spawns++
	h := &fakeHandle{pid: f.nextPID, cfg: cfg, startedAt: time.Now(), done: make(chan struct{})}
	pid := h.pid
	h.onStop = func() {
		f.mu.Lock()
		delete(f.live, pid)
		f.mu.Unlock()
	}
	f.live[pid] = h
	if len(f.live) > f.maxLive {
		f.maxLive = len(f.live)
	}
	return h, nil
}

func (f *fakeSpawner) spawnCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.spawns
}

func (f *fakeSpawner) handle(pid int) *fakeHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live[pid]
}

// fakeCensus reports live spawned handles plus any external pids.
type fakeCensus struct {
	mu         sync.Mutex
	spawner    *fakeSpawner
	external   []int
	cleanups   int
	cleanupErr error
	ctxErrs    []error
}

func (c *fakeCensus) Workers() ([]int, error) {
	c.mu.Lock()
	pids := append([]int(nil), c.external...)
	c.mu.Unlock()

	c.spawner.mu.Lock()
	defer c.spawner.mu.Unlock()
	for pid := range c.spawner.live {
		pids = append(pids, pid)
	}
	return pids, nil
}

func (c *fakeCensus) TerminateAllMatching(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleanups++
	c.ctxErrs = append(c.ctxErrs, ctx.Err())
	return c.cleanupErr
}

func (c *fakeCensus) cleanupCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cleanups
}

type fakeStore struct {
	mu    sync.Mutex
	cfg   models.ProxyConfig
	ls    models.LastState
	saves int
}

func (s *fakeStore) GetProxyConfig() models.ProxyConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *fakeStore) GetLastState() models.LastState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ls
}

func (s *fakeStore) UpdateLastState(fn func(*models.LastState)) models.LastState {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.ls)
	return s.ls
}

func (s *fakeStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	return nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *fakeNotifier) Notify(_, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.messages)
}

type fixture struct {
	sup      *Supervisor
	spawner  *fakeSpawner
	census   *fakeCensus
	backend  *sysproxy.MemoryBackend
	proxy    *sysproxy.Controller
	store    *fakeStore
	notifier *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		spawner:  newFakeSpawner(),
		backend:  sysproxy.NewMemoryBackend(),
		store:    &fakeStore{cfg: models.DefaultProxyConfig()},
		notifier: &fakeNotifier{},
	}
	f.census = &fakeCensus{spawner: f.spawner}
	f.proxy = sysproxy.NewController(f.backend, logging.Discard())
	f.sup = New(Options{
		Spawner:     f.spawner,
		Census:      f.census,
		Proxy:       f.proxy,
		Store:       f.store,
		StopTimeout: 10 * time.Millisecond,
		Logger:      logging.Discard(),
		Notifier:    f.notifier,
	})
	return f
}

func TestStartStop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.sup.Start(ctx, models.DefaultProxyConfig())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if res.External || res.PID == 0 {
		t.Fatalf("Start() = %+v, want a managed pid", res)
	}

	st := f.sup.Status()
	if !st.ManagedRunning || st.ExternalRunning || !st.Running || st.State != StateRunning {
		t.Errorf("Status() = %+v, want managed running only", st)
	}
	if !f.store.GetLastState().WasRunning {
		t.Error("WasRunning not recorded after start")
	}

	_ = f.proxy.Enable("127.0.0.1", 30000)
	if err := f.sup.Stop(ctx); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	st = f.sup.Status()
	if st.Running || st.SystemProxyEnabled || st.State != StateIdle {
		t.Errorf("Status() after stop = %+v", st)
	}
	ls := f.store.GetLastState()
	if ls.WasRunning || ls.SystemProxyEnabled {
		t.Errorf("LastState after stop = %+v, want both false", ls)
	}
}

func TestStartTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.sup.Start(ctx, models.DefaultProxyConfig()); err != nil {
		t.Fatalf("first Start() error = %v", err)
	}
	if _, err := f.sup.Start(ctx, models.DefaultProxyConfig()); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second Start() error = %v, want ErrAlreadyRunning", err)
	}
	if n := f.spawner.spawnCount(); n != 1 {
		t.Errorf("spawns = %d, want 1", n)
	}
}

func TestStartInvalidConfig(t *testing.T) {
	f := newFixture(t)
	cfg := models.DefaultProxyConfig()
	cfg.Server = ""

	_, err := f.sup.Start(context.Background(), cfg)
	if !errors.Is(err, models.ErrInvalidConfig) {
		t.Fatalf("Start() error = %v, want ErrInvalidConfig", err)
	}
	if f.spawner.spawnCount() != 0 || f.census.cleanupCount() != 0 {
		t.Error("invalid config reached census or spawner")
	}
}

func TestStopWhenIdle(t *testing.T) {
	f := newFixture(t)
	_ = f.proxy.Enable("127.0.0.1", 30000)
	f.store.ls = models.LastState{WasRunning: true, SystemProxyEnabled: true}

	if err := f.sup.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if on, _ := f.proxy.IsEnabled(); on {
		t.Error("system proxy still enabled")
	}
	if ls := f.store.GetLastState(); ls.WasRunning || ls.SystemProxyEnabled {
		t.Errorf("LastState = %+v, want both false", ls)
	}
	if err := f.sup.Stop(context.Background()); err != nil {
		t.Fatalf("second Stop() error = %v", err)
	}
}

func TestStartWithExternalWorker(t *testing.T) {
	f := newFixture(t)
	f.census.external = []int{4242}

	res, err := f.sup.Start(context.Background(), models.DefaultProxyConfig())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !res.External {
		t.Errorf("Start() = %+v, want External", res)
	}
	if f.spawner.spawnCount() != 0 {
		t.Error("worker spawned despite an external one")
	}
	if !f.store.GetLastState().WasRunning {
		t.Error("WasRunning not recorded")
	}
	st := f.sup.Status()
	if st.ManagedRunning || !st.ExternalRunning || !st.Running {
		t.Errorf("Status() = %+v, want external only", st)
	}
}

func TestStartSpawnFailure(t *testing.T) {
	f := newFixture(t)
	f.spawner.err = worker.ErrExecutableNotFound

	_, err := f.sup.Start(context.Background(), models.DefaultProxyConfig())
	if !errors.Is(err, worker.ErrExecutableNotFound) {
		t.Fatalf("Start() error = %v, want ErrExecutableNotFound", err)
	}
	if f.store.GetLastState().WasRunning {
		t.Error("failed start recorded WasRunning")
	}
	if st := f.sup.Status(); st.State != StateIdle {
		t.Errorf("state = %s, want idle", st.State)
	}

	f.spawner.mu.Lock()
	f.spawner.err = nil
	f.spawner.mu.Unlock()
	if _, err := f.sup.Start(context.Background(), models.DefaultProxyConfig()); err != nil {
		t.Fatalf("Start() after failure error = %v", err)
	}
}

func TestStartCleanupFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.census.cleanupErr = errors.New("still alive")

	if _, err := f.sup.Start(context.Background(), models.DefaultProxyConfig()); err == nil {
		t.Fatal("Start() succeeded despite cleanup failure")
	}
	if f.spawner.spawnCount() != 0 {
		t.Error("spawned after cleanup failure")
	}
}

func TestStopKillFailureFallsBackToCensus(t *testing.T) {
	f := newFixture(t)
	res, err := f.sup.Start(context.Background(), models.DefaultProxyConfig())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	f.spawner.handle(res.PID).stopErr = worker.ErrKillFailed
	before := f.census.cleanupCount()

	if err := f.sup.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error = %v, want census fallback to succeed", err)
	}
	if f.census.cleanupCount() != before+1 {
		t.Error("census cleanup not used as fallback")
	}
	if st := f.sup.Status(); st.ManagedRunning {
		t.Error("handle still recorded after failed kill")
	}
}

func TestConcurrentStartStop(t *testing.T) {
	f := newFixture(t)
	f.spawner.delay = time.Millisecond
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = f.sup.Start(ctx, models.DefaultProxyConfig())
			} else {
				_ = f.sup.Stop(ctx)
			}
			_ = f.sup.Status()
		}(i)
	}
	wg.Wait()
	_ = f.sup.Stop(ctx)

	f.spawner.mu.Lock()
	defer f.spawner.mu.Unlock()
	if f.spawner.maxLive > 1 {
		t.Errorf("max live workers = %d, want at most 1", f.spawner.maxLive)
	}
	if len(f.spawner.live) != 0 {
		t.Errorf("%d workers left running", len(f.spawner.live))
	}
}

func TestUnexpectedExit(t *testing.T) {
	f := newFixture(t)
	exits := make(chan ExitEvent, 1)
	f.sup.SetOnExit(func(ev ExitEvent) { exits <- ev })

	res, err := f.sup.Start(context.Background(), models.DefaultProxyConfig())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	f.spawner.handle(res.PID).exit(2)

	select {
	case ev := <-exits:
		if ev.Expected || ev.ExitCode != 2 || ev.PID != res.PID {
			t.Errorf("exit event = %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no exit event")
	}

	if st := f.sup.Status(); st.ManagedRunning || st.State != StateIdle {
		t.Errorf("Status() = %+v, want idle", st)
	}
	if f.notifier.count() != 1 {
		t.Errorf("notifications = %d, want 1", f.notifier.count())
	}
	if !f.store.GetLastState().WasRunning {
		t.Error("crash should not clear WasRunning")
	}
}

func TestStoppedExitIsExpected(t *testing.T) {
	f := newFixture(t)
	exits := make(chan ExitEvent, 1)
	f.sup.SetOnExit(func(ev ExitEvent) { exits <- ev })

	if _, err := f.sup.Start(context.Background(), models.DefaultProxyConfig()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := f.sup.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	select {
	case ev := <-exits:
		if !ev.Expected {
			t.Error("requested stop reported as unexpected")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no exit event")
	}
	if f.notifier.count() != 0 {
		t.Error("requested stop sent a notification")
	}
}

func TestSystemProxyRecordsState(t *testing.T) {
	f := newFixture(t)

	if err := f.sup.EnableSystemProxy(); err != nil {
		t.Fatalf("EnableSystemProxy() error = %v", err)
	}
	s, _ := f.proxy.Current()
	if !s.Enabled || s.Endpoint != models.DefaultListen {
		t.Errorf("setting = %+v, want enabled at %s", s, models.DefaultListen)
	}
	if !f.store.GetLastState().SystemProxyEnabled {
		t.Error("SystemProxyEnabled not recorded")
	}

	if err := f.sup.DisableSystemProxy(); err != nil {
		t.Fatalf("DisableSystemProxy() error = %v", err)
	}
	if f.store.GetLastState().SystemProxyEnabled {
		t.Error("SystemProxyEnabled still recorded")
	}
}

func TestEnableFailureStillRecorded(t *testing.T) {
	f := newFixture(t)
	f.backend.EnableErr = sysproxy.ErrSettingsAccessDenied

	if err := f.sup.EnableSystemProxy(); !errors.Is(err, sysproxy.ErrSettingsAccessDenied) {
		t.Fatalf("EnableSystemProxy() error = %v", err)
	}
	if !f.store.GetLastState().SystemProxyEnabled {
		t.Error("attempted enable not recorded")
	}
}

func TestShutdownKeepsLastState(t *testing.T) {
	f := newFixture(t)
	if _, err := f.sup.Start(context.Background(), models.DefaultProxyConfig()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	_ = f.sup.EnableSystemProxy()

	if err := f.sup.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if st := f.sup.Status(); st.Running || st.SystemProxyEnabled {
		t.Errorf("Status() = %+v, want everything off", st)
	}
	if ls := f.store.GetLastState(); !ls.WasRunning || !ls.SystemProxyEnabled {
		t.Errorf("LastState = %+v, want it preserved", ls)
	}
}

func TestAutoResume(t *testing.T) {
	tests := []struct {
		name        string
		last        models.LastState
		external    []int
		spawnErr    error
		wantRunning bool
		wantProxy   bool
		wantSpawns  int
	}{
		{
			name:        "worker and proxy",
			last:        models.LastState{WasRunning: true, SystemProxyEnabled: true},
			wantRunning: true,
			wantProxy:   true,
			wantSpawns:  1,
		},
		{
			name:        "worker only",
			last:        models.LastState{WasRunning: true},
			wantRunning: true,
			wantSpawns:  1,
		},
		{
			name:      "proxy only",
			last:      models.LastState{SystemProxyEnabled: true},
			wantProxy: true,
		},
		{
			name:     "start failure leaves proxy off",
			last:     models.LastState{WasRunning: true, SystemProxyEnabled: true},
			spawnErr: worker.ErrSpawnFailed,
		},
		{
			name:     "external worker present",
			last:     models.LastState{WasRunning: true, SystemProxyEnabled: true},
			external: []int{77},
		},
		{
			name: "nothing to do",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.store.ls = tt.last
			f.census.external = tt.external
			f.spawner.err = tt.spawnErr

			err := f.sup.AutoResume(context.Background())
			if (err != nil) != (tt.spawnErr != nil) {
				t.Fatalf("AutoResume() error = %v", err)
			}

			st := f.sup.Status()
			if st.ManagedRunning != tt.wantRunning {
				t.Errorf("ManagedRunning = %v, want %v", st.ManagedRunning, tt.wantRunning)
			}
			if st.SystemProxyEnabled != tt.wantProxy {
				t.Errorf("SystemProxyEnabled = %v, want %v", st.SystemProxyEnabled, tt.wantProxy)
			}
			if n := f.spawner.spawnCount(); n != tt.wantSpawns {
				t.Errorf("spawns = %d, want %d", n, tt.wantSpawns)
			}
			if tt.spawnErr != nil && f.notifier.count() != 1 {
				t.Errorf("notifications = %d, want 1", f.notifier.count())
			}
		})
	}
}

func TestAutoResumeRunsOnce(t *testing.T) {
	f := newFixture(t)
	f.store.ls = models.LastState{WasRunning: true}

	_ = f.sup.AutoResume(context.Background())
	_ = f.sup.Stop(context.Background())
	f.store.ls = models.LastState{WasRunning: true}
	_ = f.sup.AutoResume(context.Background())

	if n := f.spawner.spawnCount(); n != 1 {
		t.Errorf("spawns = %d, want 1", n)
	}
}

func TestStartIgnoresCallerCancellation(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := f.sup.Start(ctx, models.DefaultProxyConfig())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if f.spawner.spawnCount() != 1 || res.PID == 0 {
		t.Errorf("spawns = %d, pid = %d; want one worker", f.spawner.spawnCount(), res.PID)
	}

	f.census.mu.Lock()
	defer f.census.mu.Unlock()
	for i, err := range f.census.ctxErrs {
		if err != nil {
			t.Errorf("cleanup %d saw a canceled context: %v", i, err)
		}
	}
}

func TestEnableSystemProxyUsesManagedListen(t *testing.T) {
	f := newFixture(t)
	cfg := models.DefaultProxyConfig()
	cfg.Listen = "127.0.0.1:1081"

	if _, err := f.sup.Start(context.Background(), cfg); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := f.sup.EnableSystemProxy(); err != nil {
		t.Fatalf("EnableSystemProxy() error = %v", err)
	}
	s, _ := f.proxy.Current()
	if s.Endpoint != "127.0.0.1:1081" {
		t.Errorf("endpoint = %q, want the running worker's 127.0.0.1:1081", s.Endpoint)
	}

	if err := f.sup.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if err := f.sup.EnableSystemProxy(); err != nil {
		t.Fatalf("EnableSystemProxy() error = %v", err)
	}
	s, _ = f.proxy.Current()
	if s.Endpoint != models.DefaultListen {
		t.Errorf("endpoint after stop = %q, want configured %q", s.Endpoint, models.DefaultListen)
	}
}

func TestExitEventCarriesWorkerOutput(t *testing.T) {
	f := newFixture(t)
	exits := make(chan ExitEvent, 1)
	f.sup.SetOnExit(func(ev ExitEvent) { exits <- ev })

	res, err := f.sup.Start(context.Background(), models.DefaultProxyConfig())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	h := f.spawner.handle(res.PID)
	h.output = []string{"[STDOUT] listening", "dial failed"}
	h.exit(1)

	select {
	case ev := <-exits:
		if len(ev.Output) != 2 || ev.Output[1] != "dial failed" {
			t.Errorf("Output = %v, want the handle's lines", ev.Output)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no exit event")
	}
}

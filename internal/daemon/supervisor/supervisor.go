// Package supervisor owns the worker process and keeps LastState and the OS
// proxy setting consistent with it.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ech-workers/ech-client/internal/models"
)

// State is the supervisor's lifecycle state.
type State string

const (
	StateIdle     State = "idle"
	StateStarting State = "starting"
	StateRunning  State = "running"
	StateStopping State = "stopping"
)

// DefaultStopTimeout is how long Stop waits for a graceful exit before killing.
const DefaultStopTimeout = 5 * time.Second

// StartResult describes a successful Start.
type StartResult struct {
	PID       int
	StartedAt time.Time
	// External is set when a worker this instance does not own was already
	// running and nothing was spawned.
	External bool
	Message  string
}

// Status is a point-in-time view of the worker and the OS proxy.
type Status struct {
	State              State
	Running            bool
	ManagedRunning     bool
	ExternalRunning    bool
	SystemProxyEnabled bool
	PID                int
	StartedAt          time.Time
	Server             string
	Listen             string
}

// ExitEvent is emitted once per spawned worker when it exits.
type ExitEvent struct {
	PID       int
	Config    models.ProxyConfig
	StartedAt time.Time
	EndedAt   time.Time
	ExitCode  int
	// Expected is false when the worker exited on its own.
	Expected bool
	// Output holds the worker's own retained output lines, when the handle
	// reports them.
	Output []string
}

// Options wires a Supervisor to its collaborators.
type Options struct {
	Spawner     Spawner
	Census      Census
	Proxy       ProxyController
	Store       StateStore
	StopTimeout time.Duration
	Logger      logrus.FieldLogger
	Observer    Observer
	Notifier    Notifier
}

// Supervisor owns at most one worker handle. Its mutex guards only the
// handle slot and the state; nothing blocking runs while it is held.
type Supervisor struct {
	mu     sync.Mutex
	state  State
	handle Handle
	// stopped holds pids taken out of the slot by Stop or Shutdown, so the
	// monitor can tell a requested exit from a crash.
	stopped  map[int]bool
	stopping int

	spawner     Spawner
	census      Census
	proxy       ProxyController
	store       StateStore
	reconciler  *Reconciler
	stopTimeout time.Duration
	log         logrus.FieldLogger
	observer    Observer
	notifier    Notifier

	resumeOnce sync.Once

	cbMu     sync.RWMutex
	onChange func()
	onExit   func(ExitEvent)
}

// New creates an idle Supervisor.
func New(opts Options) *Supervisor {
	s := &Supervisor{
		state:       StateIdle,
		stopped:     make(map[int]bool),
		spawner:     opts.Spawner,
		census:      opts.Census,
		proxy:       opts.Proxy,
		store:       opts.Store,
		stopTimeout: opts.StopTimeout,
		log:         opts.Logger,
		observer:    opts.Observer,
		notifier:    opts.Notifier,
	}
	if s.stopTimeout <= 0 {
		s.stopTimeout = DefaultStopTimeout
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	if s.observer == nil {
		s.observer = nopObserver{}
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	s.reconciler = NewReconciler(opts.Store, s.log)
	return s
}

// SetOnChange sets a callback invoked after every state change.
func (s *Supervisor) SetOnChange(fn func()) {
	s.cbMu.Lock()
	defer s.cbMu.Unlock()
	s.onChange = fn
}

// SetOnExit sets a callback invoked after a spawned worker exits.
func (s *Supervisor) SetOnExit(fn func(ExitEvent)) {
	s.cbMu.Lock()
	defer s.cbMu.Unlock()
	s.onExit = fn
}

func (s *Supervisor) changed() {
	s.cbMu.RLock()
	fn := s.onChange
	s.cbMu.RUnlock()
	if fn != nil {
		fn()
	}
}

// Reconciler returns the LastState writer.
func (s *Supervisor) Reconciler() *Reconciler {
	return s.reconciler
}

// Start spawns a worker with cfg. A worker already running outside this
// instance is reported through StartResult.External, not as an error.
func (s *Supervisor) Start(ctx context.Context, cfg models.ProxyConfig) (StartResult, error) {
	if err := cfg.Validate(); err != nil {
		s.observer.StartAttempt(OutcomeInvalid)
		return StartResult{}, err
	}

	s.mu.Lock()
	switch {
	case s.handle != nil || s.state == StateStarting:
		s.mu.Unlock()
		s.observer.StartAttempt(OutcomeAlreadyRunning)
		return StartResult{}, ErrAlreadyRunning
	case s.state == StateStopping:
		s.mu.Unlock()
		s.observer.StartAttempt(OutcomeAlreadyRunning)
		return StartResult{}, fmt.Errorf("%w: stop in progress", ErrAlreadyRunning)
	}
	s.state = StateStarting
	s.mu.Unlock()

	if pids := s.externalWorkers(0); len(pids) > 0 {
		s.setState(StateIdle)
		s.log.WithField("pids", pids).Info("worker already running externally, not spawning")
		s.reconciler.Record(func(ls *models.LastState) { ls.WasRunning = true })
		s.observer.StartAttempt(OutcomeExternal)
		s.changed()
		return StartResult{External: true, Message: ErrExternallyRunning.Error()}, nil
	}

	// Once claimed, a start runs to completion even if the caller goes away.
	if err := s.census.TerminateAllMatching(context.WithoutCancel(ctx)); err != nil {
		s.setState(StateIdle)
		s.observer.StartAttempt(OutcomeFailed)
		return StartResult{}, fmt.Errorf("orphan cleanup: %w", err)
	}

	h, err := s.spawner.Spawn(cfg)
	if err != nil {
		s.setState(StateIdle)
		s.observer.StartAttempt(OutcomeFailed)
		s.log.WithError(err).Error("failed to start worker")
		return StartResult{}, err
	}

	s.mu.Lock()
	s.handle = h
	s.state = StateRunning
	s.mu.Unlock()

	go s.monitor(h)

	s.reconciler.Record(func(ls *models.LastState) { ls.WasRunning = true })
	s.observer.StartAttempt(OutcomeStarted)
	s.log.WithFields(logrus.Fields{"pid": h.PID(), "server": cfg.Server}).Info("worker started")
	s.changed()

	return StartResult{PID: h.PID(), StartedAt: h.StartedAt()}, nil
}

// Stop stops the managed worker, if any, and disables the system proxy.
// It succeeds when nothing is running.
func (s *Supervisor) Stop(ctx context.Context) error {
	h := s.take()

	var errs []error
	if h != nil {
		if err := s.stopHandle(ctx, h); err != nil {
			errs = append(errs, err)
		}
	}

	if err := s.proxy.Disable(); err != nil {
		s.log.WithError(err).Error("failed to disable system proxy")
		errs = append(errs, err)
	}

	s.reconciler.Record(func(ls *models.LastState) {
		ls.WasRunning = false
		ls.SystemProxyEnabled = false
	})
	s.finishStop(h != nil)
	s.observer.Stopped()
	s.changed()

	return errors.Join(errs...)
}

// StopAll is Stop followed by terminating every worker on the system,
// including ones this instance did not spawn.
func (s *Supervisor) StopAll(ctx context.Context) error {
	err := s.Stop(ctx)
	if cerr := s.census.TerminateAllMatching(ctx); cerr != nil {
		err = errors.Join(err, cerr)
	}
	s.changed()
	return err
}

// take removes the handle from the slot.
func (s *Supervisor) take() Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.handle
	s.handle = nil
	if h != nil {
		s.state = StateStopping
		s.stopping++
		s.stopped[h.PID()] = true
	}
	return h
}

// stopHandle stops h and falls back to the census when the kill fails.
func (s *Supervisor) stopHandle(ctx context.Context, h Handle) error {
	log := s.log.WithField("pid", h.PID())
	err := h.Stop(s.stopTimeout)
	if err == nil {
		log.Info("worker stopped")
		return nil
	}

	log.WithError(err).Error("worker did not stop, falling back to process cleanup")
	if cerr := s.census.TerminateAllMatching(context.WithoutCancel(ctx)); cerr != nil {
		return errors.Join(err, cerr)
	}
	return nil
}

// Shutdown stops the worker and disables the system proxy without touching
// LastState, so the next launch resumes where this one left off.
func (s *Supervisor) Shutdown(ctx context.Context) error {
	h := s.take()

	var errs []error
	if h != nil {
		if err := s.stopHandle(ctx, h); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.proxy.Disable(); err != nil {
		errs = append(errs, err)
	}
	s.finishStop(h != nil)
	return errors.Join(errs...)
}

// monitor waits for h to exit and clears the slot if nobody asked it to stop.
func (s *Supervisor) monitor(h Handle) {
	<-h.Done()
	_, code := h.Poll()

	s.mu.Lock()
	expected := s.stopped[h.PID()]
	delete(s.stopped, h.PID())
	if s.handle == h {
		s.handle = nil
		s.state = StateIdle
	}
	s.mu.Unlock()

	ev := ExitEvent{
		PID:       h.PID(),
		Config:    h.Config(),
		StartedAt: h.StartedAt(),
		EndedAt:   time.Now().UTC(),
		ExitCode:  code,
		Expected:  expected,
	}
	if o, ok := h.(outputReporter); ok {
		ev.Output = o.Output()
	}

	if !expected {
		s.log.WithFields(logrus.Fields{"pid": ev.PID, "exit_code": code}).Warn("worker exited unexpectedly")
		s.notifier.Notify("ech-client", fmt.Sprintf("Proxy worker exited (code %d)", code))
	}
	s.observer.WorkerExited(expected)

	s.cbMu.RLock()
	onExit := s.onExit
	s.cbMu.RUnlock()
	if onExit != nil {
		onExit(ev)
	}
	s.changed()
}

// Status reports the worker and proxy state. It never mutates anything.
func (s *Supervisor) Status() Status {
	s.mu.Lock()
	h := s.handle
	state := s.state
	s.mu.Unlock()

	st := Status{State: state}
	managedPID := 0
	if h != nil {
		if running, _ := h.Poll(); running {
			st.ManagedRunning = true
			st.PID = h.PID()
			st.StartedAt = h.StartedAt()
			managedPID = h.PID()
			cfg := h.Config()
			st.Server = cfg.Server
			st.Listen = cfg.Listen
		}
	}
	st.ExternalRunning = len(s.externalWorkers(managedPID)) > 0

	enabled, err := s.proxy.IsEnabled()
	if err != nil {
		s.log.WithError(err).Debug("failed to read system proxy state")
	}
	st.SystemProxyEnabled = enabled
	st.Running = st.ManagedRunning || st.ExternalRunning
	return st
}

// externalWorkers returns running workers other than managedPID. Census
// errors count as none.
func (s *Supervisor) externalWorkers(managedPID int) []int {
	pids, err := s.census.Workers()
	if err != nil {
		s.log.WithError(err).Warn("process census failed")
		return nil
	}
	return slices.DeleteFunc(pids, func(pid int) bool { return pid == managedPID })
}

// EnableSystemProxy points the OS proxy at the managed worker's listen
// address, or at the configured one when no worker is managed.
func (s *Supervisor) EnableSystemProxy() error {
	listen := s.proxyListen()
	if listen == "" {
		listen = models.DefaultListen
	}
	err := s.proxy.EnableListen(listen)
	if err != nil {
		s.log.WithError(err).Error("failed to enable system proxy")
	}
	s.reconciler.Record(func(ls *models.LastState) { ls.SystemProxyEnabled = true })
	s.changed()
	return err
}

func (s *Supervisor) proxyListen() string {
	s.mu.Lock()
	h := s.handle
	s.mu.Unlock()
	if h != nil {
		if listen := h.Config().Listen; listen != "" {
			return listen
		}
	}
	return s.store.GetProxyConfig().Listen
}

// DisableSystemProxy turns the OS proxy off.
func (s *Supervisor) DisableSystemProxy() error {
	err := s.proxy.Disable()
	if err != nil {
		s.log.WithError(err).Error("failed to disable system proxy")
	}
	s.reconciler.Record(func(ls *models.LastState) { ls.SystemProxyEnabled = false })
	s.changed()
	return err
}

// SetSystemProxy enables or disables the OS proxy.
func (s *Supervisor) SetSystemProxy(enabled bool) error {
	if enabled {
		return s.EnableSystemProxy()
	}
	return s.DisableSystemProxy()
}

func (s *Supervisor) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// finishStop returns to Idle once the last in-flight stop is done.
func (s *Supervisor) finishStop(tookHandle bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tookHandle {
		s.stopping--
	}
	if s.stopping == 0 && s.handle == nil && s.state == StateStopping {
		s.state = StateIdle
	}
}

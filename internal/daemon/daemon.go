// Package daemon wires the supervisor, its collaborators and the servers
// into the running ech-clientd process.
package daemon

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ech-workers/ech-client/internal/config"
	"github.com/ech-workers/ech-client/internal/daemon/census"
	"github.com/ech-workers/ech-client/internal/daemon/jobs"
	"github.com/ech-workers/ech-client/internal/daemon/metrics"
	"github.com/ech-workers/ech-client/internal/daemon/notify"
	"github.com/ech-workers/ech-client/internal/daemon/server"
	"github.com/ech-workers/ech-client/internal/daemon/supervisor"
	"github.com/ech-workers/ech-client/internal/daemon/sysproxy"
	"github.com/ech-workers/ech-client/internal/daemon/tray"
	"github.com/ech-workers/ech-client/internal/daemon/watcher"
	"github.com/ech-workers/ech-client/internal/daemon/worker"
	"github.com/ech-workers/ech-client/internal/logging"
	"github.com/ech-workers/ech-client/internal/models"
)

// shutdownTimeout bounds how long Close waits for the worker to stop.
const shutdownTimeout = 15 * time.Second

// Options are the command line overrides for the daemon.
type Options struct {
	// Port overrides the gRPC port from settings when >= 0.
	Port int
	// HTTPListen overrides the HTTP API address; "off" disables it.
	HTTPListen string
	// WorkerDir overrides where ech-workers is looked up.
	WorkerDir string
	// NoSystemProxy keeps OS proxy settings untouched.
	NoSystemProxy bool
	LogLevel      string
	// LogStderr is where log lines go besides the log file.
	LogStderr io.Writer
}

// App is a running daemon.
type App struct {
	opts     Options
	settings *models.Settings
	log      *logrus.Logger
	logClose io.Closer
	lock     *config.DaemonLock

	store   *config.Store
	output  *worker.OutputLog
	proxy   *sysproxy.Controller
	census  *census.Census
	sup     *supervisor.Supervisor
	metrics *metrics.Metrics
	sched   *jobs.Scheduler
	watcher *watcher.Watcher
	srv     *server.Server

	infoMu sync.RWMutex
	info   *models.DaemonInfo

	done      chan struct{}
	closeOnce sync.Once
	doneOnce  sync.Once
}

// New takes the instance lock and builds every component. Nothing runs
// until Start.
func New(opts Options) (*App, error) {
	if err := config.EnsureGlobalDir(); err != nil {
		return nil, fmt.Errorf("failed to create global directory: %w", err)
	}

	lock, err := config.AcquireDaemonLock()
	if err != nil {
		return nil, err
	}

	a := &App{opts: opts, lock: lock, done: make(chan struct{})}
	if err := a.build(); err != nil {
		a.release()
		return nil, err
	}
	return a, nil
}

func (a *App) build() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	a.settings = settings

	level := settings.Log.Level
	if a.opts.LogLevel != "" {
		level = a.opts.LogLevel
	}
	logFile, err := config.GlobalDaemonLogFile()
	if err != nil {
		return err
	}
	a.log, a.logClose, err = logging.New(logging.Options{Level: level, File: logFile, Stderr: a.opts.LogStderr})
	if err != nil {
		return err
	}

	a.store, err = config.OpenGlobalStore(
		config.WithSecrets(config.NewKeyringSecrets()),
		config.WithLogger(logging.Component(a.log, "config")),
	)
	if err != nil {
		return err
	}

	a.output = worker.NewOutputLog(worker.DefaultOutputCapacity)

	workerDir := settings.Worker.Dir
	if a.opts.WorkerDir != "" {
		workerDir = a.opts.WorkerDir
	}
	spawner := worker.NewSpawner(workerDir, a.output, logging.Component(a.log, "worker"))

	if a.opts.NoSystemProxy {
		a.log.Warn("system proxy changes disabled; using an in-memory backend")
		a.proxy = sysproxy.NewController(sysproxy.NewMemoryBackend(), logging.Component(a.log, "sysproxy"))
	} else {
		a.proxy = sysproxy.NewSystemController(logging.Component(a.log, "sysproxy"))
	}

	a.metrics = metrics.New(a.output)
	a.census = census.NewSystem(
		census.WithAttempts(settings.Worker.CleanupAttempts),
		census.WithDelay(settings.Worker.CleanupDelay),
		census.WithLogger(logging.Component(a.log, "census")),
	)

	a.sup = supervisor.New(supervisor.Options{
		Spawner:     supervisor.WorkerSpawner(spawner),
		Census:      a.census,
		Proxy:       a.proxy,
		Store:       a.store,
		StopTimeout: settings.Worker.StopTimeout,
		Logger:      logging.Component(a.log, "supervisor"),
		Observer:    a.metrics,
		Notifier:    notify.New(settings.Notifications, logging.Component(a.log, "notify")),
	})
	a.sup.SetOnExit(a.writeSessionLog)
	a.sup.SetOnChange(a.refresh)

	a.sched, err = jobs.New(logging.Component(a.log, "jobs"))
	if err != nil {
		return err
	}

	a.watcher, err = watcher.New("", logging.Component(a.log, "watcher"))
	if err != nil {
		a.log.WithError(err).Warn("config watcher unavailable")
		a.watcher = nil
	}
	return nil
}

// Log returns the daemon's logger.
func (a *App) Log() logrus.FieldLogger {
	return a.log
}

// Start opens the listeners, publishes daemon.yaml and starts background
// jobs. The auto-resume job runs once after the configured delay.
func (a *App) Start() error {
	port := a.settings.Daemon.Port
	if a.opts.Port >= 0 {
		port = a.opts.Port
	}
	httpListen := a.settings.Daemon.HTTPListen
	switch a.opts.HTTPListen {
	case "":
	case "off":
		httpListen = ""
	default:
		httpListen = a.opts.HTTPListen
	}

	svc := &server.Services{
		Supervisor: a.sup,
		Store:      a.store,
		Output:     a.output,
		Proxy:      a.proxy,
		Info:       a.Info,
		Shutdown:   a.RequestShutdown,
		Logger:     logging.Component(a.log, "rpc"),
	}
	srv, err := server.New(svc, server.Options{
		Port:       port,
		HTTPListen: httpListen,
		Metrics:    a.metrics.Handler(),
		Logger:     logging.Component(a.log, "server"),
	})
	if err != nil {
		return err
	}
	a.srv = srv

	info := models.NewDaemonInfo(server.DefaultHost, srv.Port(), srv.HTTPAddr(), os.Getpid())
	if err := config.SaveDaemonInfo(info); err != nil {
		srv.Stop()
		return fmt.Errorf("failed to write daemon info: %w", err)
	}
	a.infoMu.Lock()
	a.info = info
	a.infoMu.Unlock()

	go func() {
		if err := srv.Serve(); err != nil {
			a.log.WithError(err).Error("server error")
			a.RequestShutdown()
		}
	}()

	if err := a.sched.Every("status-poll", a.settings.Daemon.PollInterval, a.refresh); err != nil {
		return err
	}
	if err := a.sched.After("auto-resume", a.settings.Daemon.AutoResumeDelay, func() {
		_ = a.sup.AutoResume(context.Background())
	}); err != nil {
		return err
	}
	a.sched.Start()

	if a.watcher != nil {
		if err := a.watcher.Start(); err != nil {
			a.log.WithError(err).Warn("failed to watch config directory")
		} else {
			go a.handleFileEvents()
		}
	}

	a.log.WithFields(logrus.Fields{"port": srv.Port(), "http": srv.HTTPAddr(), "pid": os.Getpid()}).Info("daemon started")
	return nil
}

// Info returns the published daemon info, or nil before Start.
func (a *App) Info() *models.DaemonInfo {
	a.infoMu.RLock()
	defer a.infoMu.RUnlock()
	return a.info
}

// Done is closed when a shutdown has been requested.
func (a *App) Done() <-chan struct{} {
	return a.done
}

// RequestShutdown asks the daemon to exit. It only signals; Close does the work.
func (a *App) RequestShutdown() {
	a.doneOnce.Do(func() { close(a.done) })
}

// Close stops the worker, restores the OS proxy and releases every resource.
// LastState is left as it was so the next launch can resume.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.doneOnce.Do(func() { close(a.done) })

		if a.watcher != nil {
			a.watcher.Stop()
		}
		if a.sched != nil {
			if err := a.sched.Shutdown(); err != nil {
				a.log.WithError(err).Warn("scheduler shutdown failed")
			}
		}
		if a.sup != nil {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			if err := a.sup.Shutdown(ctx); err != nil {
				a.log.WithError(err).Warn("worker shutdown incomplete")
			}
			if err := a.census.TerminateAllMatching(ctx); err != nil {
				a.log.WithError(err).Warn("leftover workers could not be terminated")
			}
			cancel()
		}
		if a.srv != nil {
			a.srv.Stop()
		}
		if a.store != nil {
			if err := a.store.Save(); err != nil {
				a.log.WithError(err).Warn("failed to save config")
			}
		}
		if err := config.RemoveDaemonInfo(); err != nil {
			a.log.WithError(err).Warn("failed to remove daemon info")
		}
		a.log.Info("daemon stopped")
		a.release()
	})
}

func (a *App) release() {
	if a.logClose != nil {
		_ = a.logClose.Close()
	}
	_ = a.lock.Release()
}

// refresh pushes the current status to metrics and the tray.
func (a *App) refresh() {
	st := a.sup.Status()
	a.metrics.ObserveStatus(st)
	tray.Update(a.snapshot(st), a.servers())
}

func (a *App) handleFileEvents() {
	for {
		select {
		case <-a.done:
			return
		case ev := <-a.watcher.Events():
			switch ev.Type {
			case watcher.EventConfigChanged:
				changed, err := a.store.Reload()
				if err != nil {
					a.log.WithError(err).Warn("failed to reload config")
					continue
				}
				if changed {
					a.log.Info("config reloaded from disk")
					a.refresh()
				}
			case watcher.EventSettingsChanged:
				a.log.Info("settings changed on disk; restart the daemon to apply them")
			}
		}
	}
}

// writeSessionLog persists the output of a finished worker session.
func (a *App) writeSessionLog(ev supervisor.ExitEvent) {
	status := "exited"
	if ev.Expected {
		status = "stopped"
	}
	entry := models.LogEntry{
		PID:       ev.PID,
		Server:    ev.Config.Server,
		StartedAt: ev.StartedAt.UTC().Format(time.RFC3339),
		EndedAt:   ev.EndedAt.UTC().Format(time.RFC3339),
		ExitCode:  ev.ExitCode,
		Status:    status,
	}
	written, err := config.WriteSessionLog(entry, ev.Output)
	if err != nil {
		a.log.WithError(err).Warn("failed to write session log")
		return
	}
	a.log.WithField("log_id", written.LogID).Debug("session log written")
}

// Package census finds and terminates worker processes by executable name,
// independent of who started them.
package census

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ech-workers/ech-client/internal/daemon/worker"
)

// ErrExternalKillFailed is returned when matching processes survive every
// cleanup round.
var ErrExternalKillFailed = errors.New("failed to terminate external worker processes")

// ProcInfo is one row of a process table snapshot.
type ProcInfo struct {
	PID  int
	PPID int
	Name string
	// Zombie marks an exited process its parent has not reaped yet.
	Zombie bool
}

// ProcessTable is the OS process table.
type ProcessTable interface {
	Snapshot() ([]ProcInfo, error)
	// Kill force-terminates pid. A process that is already gone is not an error.
	Kill(pid int) error
}

// Census queries a ProcessTable for workers.
type Census struct {
	table    ProcessTable
	name     string
	attempts int
	delay    time.Duration
	self     int
	log      logrus.FieldLogger
}

// Option configures a Census.
type Option func(*Census)

// WithName matches processes named name instead of the worker executable.
func WithName(name string) Option { return func(c *Census) { c.name = name } }

// WithAttempts sets the number of cleanup rounds.
func WithAttempts(n int) Option {
	return func(c *Census) {
		if n > 0 {
			c.attempts = n
		}
	}
}

// WithDelay sets the pause between a kill and the next snapshot.
func WithDelay(d time.Duration) Option { return func(c *Census) { c.delay = d } }

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option { return func(c *Census) { c.log = l } }

// New creates a Census over table.
func New(table ProcessTable, opts ...Option) *Census {
	c := &Census{
		table:    table,
		name:     worker.ExecutableName(),
		attempts: 3,
		delay:    time.Second,
		self:     os.Getpid(),
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewSystem creates a Census over the host's process table.
func NewSystem(opts ...Option) *Census {
	return New(NewSystemTable(), opts...)
}

func (c *Census) matches(name string) bool {
	if runtime.GOOS == "windows" {
		return strings.EqualFold(name, c.name)
	}
	return name == c.name
}

func (c *Census) matching(snap []ProcInfo) []int {
	var pids []int
	for _, p := range snap {
		if p.PID != c.self && !p.Zombie && c.matches(p.Name) {
			pids = append(pids, p.PID)
		}
	}
	return pids
}

// Workers returns the pids of every running worker.
func (c *Census) Workers() ([]int, error) {
	snap, err := c.table.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	return c.matching(snap), nil
}

// IsWorkerPresent reports whether any worker is running. Snapshot errors
// are logged and reported as absent.
func (c *Census) IsWorkerPresent() bool {
	pids, err := c.Workers()
	if err != nil {
		c.log.WithError(err).Warn("census: process snapshot failed")
		return false
	}
	return len(pids) > 0
}

// TerminateAllMatching force-kills every worker and its descendants, in up
// to the configured number of snapshot, kill, delay rounds.
func (c *Census) TerminateAllMatching(ctx context.Context) error {
	for round := 1; round <= c.attempts; round++ {
		snap, err := c.table.Snapshot()
		if err != nil {
			return fmt.Errorf("failed to list processes: %w", err)
		}
		roots := c.matching(snap)
		if len(roots) == 0 {
			return nil
		}

		victims := withDescendants(snap, roots)
		c.log.WithFields(logrus.Fields{"round": round, "pids": victims}).Warn("census: terminating worker processes")
		for _, pid := range victims {
			if err := c.table.Kill(pid); err != nil {
				c.log.WithError(err).WithField("pid", pid).Debug("census: kill failed")
			}
		}

		if err := sleep(ctx, c.delay); err != nil {
			return err
		}
	}

	pids, err := c.Workers()
	if err != nil {
		return err
	}
	if len(pids) > 0 {
		return fmt.Errorf("%w: %v still running after %d attempts", ErrExternalKillFailed, pids, c.attempts)
	}
	return nil
}

// withDescendants returns the process trees rooted at roots, children first.
func withDescendants(snap []ProcInfo, roots []int) []int {
	children := make(map[int][]int)
	for _, p := range snap {
		if p.PID != p.PPID {
			children[p.PPID] = append(children[p.PPID], p.PID)
		}
	}

	seen := make(map[int]bool)
	var order []int
	var visit func(pid int)
	visit = func(pid int) {
		if seen[pid] {
			return
		}
		seen[pid] = true
		for _, child := range children[pid] {
			visit(child)
		}
		order = append(order, pid)
	}
	for _, pid := range roots {
		visit(pid)
	}
	return order
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

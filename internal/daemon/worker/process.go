// Package worker spawns and supervises a single ech-workers process and
// captures its output.
package worker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"

	"github.com/ech-workers/ech-client/internal/models"
)

// Errors returned by Spawn and Stop.
var (
	ErrExecutableNotFound = errors.New("worker executable not found")
	ErrSpawnFailed        = errors.New("failed to spawn worker")
	ErrKillFailed         = errors.New("failed to stop worker")
)

// StdoutTag prefixes stdout lines in the OutputLog.
const StdoutTag = "[STDOUT] "

const maxLineSize = 1 << 20

// drainGrace bounds how long an exited worker's handle waits for its
// output pipes to close.
const drainGrace = 500 * time.Millisecond

// ExecutableName returns the worker's file name on this platform.
func ExecutableName() string {
	if runtime.GOOS == "windows" {
		return "ech-workers.exe"
	}
	return "ech-workers"
}

// InstallDir returns the directory containing the running executable.
func InstallDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Spawner starts worker processes from a fixed directory and feeds their
// output into a shared OutputLog.
type Spawner struct {
	dir    string
	output *OutputLog
	log    logrus.FieldLogger
}

// NewSpawner creates a Spawner. An empty dir means InstallDir.
func NewSpawner(dir string, output *OutputLog, log logrus.FieldLogger) *Spawner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Spawner{dir: dir, output: output, log: log}
}

// Resolve returns the worker's path, or ErrExecutableNotFound.
func (s *Spawner) Resolve() (string, error) {
	dir := s.dir
	if dir == "" {
		d, err := InstallDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrExecutableNotFound, err)
		}
		dir = d
	}
	path := filepath.Join(dir, ExecutableName())
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, path)
	}
	return path, nil
}

// Spawn starts the worker with cfg's flags.
func (s *Spawner) Spawn(cfg models.ProxyConfig) (*Process, error) {
	path, err := s.Resolve()
	if err != nil {
		return nil, err
	}

	args := BuildArgs(cfg)
	cmd := exec.Command(path, args...)
	cmd.Dir = filepath.Dir(path)
	cmd.SysProcAttr = sysProcAttr()

	// cmd.Wait does not wait on *os.File outputs, so a grandchild holding
	// the write ends cannot hide the worker's exit.
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout pipe: %w", ErrSpawnFailed, err)
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		closeAll(stdoutR, stdoutW)
		return nil, fmt.Errorf("%w: stderr pipe: %w", ErrSpawnFailed, err)
	}
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	err = cmd.Start()
	closeAll(stdoutW, stderrW)
	if err != nil {
		closeAll(stdoutR, stderrR)
		return nil, fmt.Errorf("%w: %w", ErrSpawnFailed, err)
	}

	var startSeq uint64
	if s.output != nil {
		startSeq = s.output.Seq()
	}
	p := &Process{
		cmd:       cmd,
		cfg:       cfg,
		pid:       cmd.Process.Pid,
		startedAt: time.Now().UTC(),
		done:      make(chan struct{}),
		drained:   make(chan struct{}),
		exitCode:  -1,
		output:    s.output,
		startSeq:  startSeq,
		log:       s.log.WithField("pid", cmd.Process.Pid),
	}

	release, err := bindLifetime(cmd.Process)
	if err != nil {
		p.log.WithError(err).Warn("could not tie worker lifetime to the daemon")
	}
	p.release = release

	p.log.WithField("args", RedactArgs(args)).Infof("started %s", path)

	var wg sync.WaitGroup
	wg.Add(2)
	go p.drain(stdoutR, true, &wg)
	go p.drain(stderrR, false, &wg)
	go func() {
		wg.Wait()
		close(p.drained)
	}()
	go p.wait()

	return p, nil
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

// Process is the handle for one running worker.
type Process struct {
	cmd       *exec.Cmd
	cfg       models.ProxyConfig
	pid       int
	startedAt time.Time
	done      chan struct{}
	drained   chan struct{}
	exitCode  int
	exitErr   error
	release   func()
	output    *OutputLog
	startSeq  uint64
	endSeq    uint64
	log       logrus.FieldLogger
}

// drain reads one stream line by line until it closes.
func (p *Process) drain(r io.ReadCloser, isStdout bool, wg *sync.WaitGroup) {
	defer wg.Done()
	defer r.Close()

	stream := "stderr"
	if isStdout {
		stream = "stdout"
	}
	log := p.log.WithField("stream", stream)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := ansi.Strip(scanner.Text())
		if isStdout {
			p.appendOutput(StdoutTag + line)
			log.Info(line)
		} else {
			p.appendOutput(line)
			log.Warn(line)
		}
	}
	if err := scanner.Err(); err != nil {
		log.WithError(err).Debug("output scanner stopped")
		// Keep the pipe empty so the worker never blocks on a full buffer.
		_, _ = io.Copy(io.Discard, r)
	}
}

func (p *Process) appendOutput(line string) {
	if p.output != nil {
		p.output.Append(line)
	}
}

// wait reaps the process, then gives the drainers drainGrace to flush what
// the worker wrote before it exited.
func (p *Process) wait() {
	p.exitErr = p.cmd.Wait()
	if p.cmd.ProcessState != nil {
		p.exitCode = p.cmd.ProcessState.ExitCode()
	}
	if p.release != nil {
		p.release()
	}

	select {
	case <-p.drained:
	case <-time.After(drainGrace):
		p.log.Debug("output pipes still held open after exit")
	}

	if p.output != nil {
		p.endSeq = p.output.Seq()
	}
	p.log.WithField("exit_code", p.exitCode).Info("worker exited")
	close(p.done)
}

// Output returns the retained OutputLog lines written by this process. Once
// it has exited, lines appended after its exit are left out.
func (p *Process) Output() []string {
	if p.output == nil {
		return nil
	}
	lines, seq := p.output.Since(p.startSeq)
	select {
	case <-p.done:
		if extra := int(seq - p.endSeq); extra > 0 {
			if extra >= len(lines) {
				return nil
			}
			lines = lines[:len(lines)-extra]
		}
	default:
	}
	return lines
}

// Drained is closed once both output streams reached EOF. That can be long
// after Done when a child of the worker inherited them.
func (p *Process) Drained() <-chan struct{} {
	return p.drained
}

// Stop asks the worker to exit, waits up to timeout, then kills it.
// ErrKillFailed means the exit was never observed.
func (p *Process) Stop(timeout time.Duration) error {
	if !p.IsRunning() {
		return nil
	}

	if err := terminate(p.cmd.Process); err != nil && !errors.Is(err, os.ErrProcessDone) {
		p.log.WithError(err).Debug("graceful terminate failed")
	}
	select {
	case <-p.done:
		return nil
	case <-time.After(timeout):
	}

	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("%w: pid %d: %w", ErrKillFailed, p.pid, err)
	}
	select {
	case <-p.done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("%w: pid %d did not exit", ErrKillFailed, p.pid)
	}
}

// Poll reports whether the worker is running and, if not, its exit code.
func (p *Process) Poll() (running bool, exitCode int) {
	select {
	case <-p.done:
		return false, p.exitCode
	default:
		return true, 0
	}
}

// IsRunning returns true if the process is still running.
func (p *Process) IsRunning() bool {
	running, _ := p.Poll()
	return running
}

// Done returns a channel that is closed when the process exits.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// ExitErr returns the error from Wait. Only valid after Done is closed.
func (p *Process) ExitErr() error {
	return p.exitErr
}

// PID returns the worker's process id.
func (p *Process) PID() int {
	return p.pid
}

// StartedAt returns when the process was spawned.
func (p *Process) StartedAt() time.Time {
	return p.startedAt
}

// Config returns the config the worker was started with.
func (p *Process) Config() models.ProxyConfig {
	return p.cfg
}

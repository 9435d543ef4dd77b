package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ech-workers/ech-client/internal/daemon/worker"
	pb "github.com/ech-workers/ech-client/proto"
)

type fakeClient struct {
	status   *pb.Status
	lines    []string
	started  int
	stopped  int
	proxy    []bool
	cleared  int
	startErr error
}

func (f *fakeClient) Status(context.Context) (*pb.Status, error) {
	return f.status, nil
}

func (f *fakeClient) Output(_ context.Context, since uint64) (*pb.Output, error) {
	seq := uint64(len(f.lines))
	if since >= seq {
		return &pb.Output{Seq: seq}, nil
	}
	return &pb.Output{Lines: f.lines[since:], Seq: seq}, nil
}

func (f *fakeClient) Start(context.Context) (*pb.StartResponse, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.started++
	return &pb.StartResponse{Pid: 42}, nil
}

func (f *fakeClient) Stop(context.Context) error {
	f.stopped++
	return nil
}

func (f *fakeClient) SetSystemProxy(_ context.Context, enabled bool) error {
	f.proxy = append(f.proxy, enabled)
	return nil
}

func (f *fakeClient) ClearOutput(context.Context) error {
	f.cleared++
	return nil
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func press(m Model, k string) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return next.(Model), cmd
}

func TestAppendLinesCapsAtMax(t *testing.T) {
	m := sized(t, NewModel(&fakeClient{}))

	lines := make([]string, maxLines+25)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	next, _ := m.Update(OutputMsg{Lines: lines, Seq: uint64(len(lines))})
	m = next.(Model)

	if len(m.lines) != maxLines {
		t.Fatalf("len(lines) = %d, want %d", len(m.lines), maxLines)
	}
	if m.lines[0] != "line 25" {
		t.Errorf("oldest line = %q, want %q", m.lines[0], "line 25")
	}
	if m.seq != uint64(len(lines)) {
		t.Errorf("seq = %d, want %d", m.seq, len(lines))
	}
}

func TestAppendLinesResetsOnSeqRewind(t *testing.T) {
	m := sized(t, NewModel(&fakeClient{}))
	next, _ := m.Update(OutputMsg{Lines: []string{"a", "b"}, Seq: 10})
	next, _ = next.(Model).Update(OutputMsg{Lines: []string{"c"}, Seq: 1})
	m = next.(Model)

	if len(m.lines) != 1 || m.lines[0] != "c" {
		t.Errorf("lines = %v, want [c]", m.lines)
	}
}

func TestStartKey(t *testing.T) {
	tests := []struct {
		name    string
		status  *pb.Status
		busy    bool
		wantCmd bool
	}{
		{"stopped", &pb.Status{State: "idle"}, false, true},
		{"running", &pb.Status{State: "running", Running: true}, false, false},
		{"busy", &pb.Status{State: "idle"}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{status: tt.status}
			m := sized(t, NewModel(client))
			m.status = tt.status
			m.busy = tt.busy

			m, cmd := press(m, "s")
			if (cmd != nil) != tt.wantCmd {
				t.Fatalf("cmd returned = %v, want %v", cmd != nil, tt.wantCmd)
			}
			if cmd == nil {
				return
			}
			if !m.busy {
				t.Error("model not busy after start")
			}
			msg := cmd()
			done, ok := msg.(ActionDoneMsg)
			if !ok {
				t.Fatalf("msg = %T, want ActionDoneMsg", msg)
			}
			if !strings.Contains(done.Text, "42") {
				t.Errorf("text = %q, want PID", done.Text)
			}
			if client.started != 1 {
				t.Errorf("started = %d, want 1", client.started)
			}
		})
	}
}

func TestStartError(t *testing.T) {
	client := &fakeClient{status: &pb.Status{}, startErr: errors.New("boom")}
	m := sized(t, NewModel(client))
	m.status = client.status

	m, cmd := press(m, "s")
	next, _ := m.Update(cmd())
	m = next.(Model)

	if m.busy {
		t.Error("model still busy after error")
	}
	if m.err == nil || m.err.Error() != "boom" {
		t.Errorf("err = %v, want boom", m.err)
	}
}

func TestStopKeyOnlyWhenRunning(t *testing.T) {
	client := &fakeClient{}
	m := sized(t, NewModel(client))

	m.status = &pb.Status{}
	if _, cmd := press(m, "x"); cmd != nil {
		t.Fatal("stop issued while stopped")
	}

	m.status = &pb.Status{Running: true, ManagedRunning: true}
	_, cmd := press(m, "x")
	if cmd == nil {
		t.Fatal("stop not issued while running")
	}
	cmd()
	if client.stopped != 1 {
		t.Errorf("stopped = %d, want 1", client.stopped)
	}
}

func TestProxyKeyToggles(t *testing.T) {
	client := &fakeClient{}
	m := sized(t, NewModel(client))
	m.status = &pb.Status{SystemProxyEnabled: true}

	_, cmd := press(m, "p")
	if cmd == nil {
		t.Fatal("no command for proxy toggle")
	}
	cmd()
	if len(client.proxy) != 1 || client.proxy[0] {
		t.Errorf("proxy calls = %v, want [false]", client.proxy)
	}
}

func TestClearKey(t *testing.T) {
	client := &fakeClient{}
	m := sized(t, NewModel(client))
	next, _ := m.Update(OutputMsg{Lines: []string{"a"}, Seq: 1})
	m = next.(Model)

	_, cmd := press(m, "c")
	next, _ = m.Update(cmd())
	m = next.(Model)

	if client.cleared != 1 {
		t.Errorf("cleared = %d, want 1", client.cleared)
	}
	if len(m.lines) != 0 {
		t.Errorf("lines = %v, want none", m.lines)
	}
}

func TestRenderLine(t *testing.T) {
	out := renderLine(worker.StdoutTag + "hello")
	if strings.Contains(out, worker.StdoutTag) {
		t.Errorf("stdout tag not stripped: %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("line text missing: %q", out)
	}
	if !strings.Contains(renderLine("oops"), "oops") {
		t.Error("stderr text missing")
	}
}

func TestRenderBadge(t *testing.T) {
	tests := []struct {
		name   string
		status *pb.Status
		want   string
	}{
		{"nil", nil, "connecting"},
		{"starting", &pb.Status{State: "starting"}, "starting"},
		{"managed", &pb.Status{Running: true, ManagedRunning: true, Pid: 7}, "PID 7"},
		{"external", &pb.Status{Running: true, ExternalRunning: true}, "external"},
		{"stopped", &pb.Status{State: "idle"}, "stopped"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Model{status: tt.status}
			if got := m.renderBadge(); !strings.Contains(got, tt.want) {
				t.Errorf("badge = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestQuitKey(t *testing.T) {
	m := sized(t, NewModel(&fakeClient{}))
	_, cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("no command for quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

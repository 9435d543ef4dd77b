package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ech-workers/ech-client/internal/daemon/worker"
	pb "github.com/ech-workers/ech-client/proto"
)

// maxLines matches the daemon's output retention.
const maxLines = worker.DefaultOutputCapacity

// Model is the monitor's Bubble Tea model.
type Model struct {
	client Client

	status *pb.Status
	lines  []string
	seq    uint64
	busy   bool
	flash  string
	err    error

	viewport viewport.Model
	help     help.Model
	follow   bool
	ready    bool

	width  int
	height int
}

// NewModel creates a monitor bound to client.
func NewModel(client Client) Model {
	return Model{
		client: client,
		help:   help.New(),
		follow: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchStatusCmd(m.client),
		fetchOutputCmd(m.client, 0),
		tickCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		return m, tea.Batch(
			fetchStatusCmd(m.client),
			fetchOutputCmd(m.client, m.seq),
			tickCmd(),
		)

	case StatusMsg:
		m.status = msg.Status
		m.err = nil
		return m, nil

	case OutputMsg:
		m.appendLines(msg.Lines, msg.Seq)
		return m, nil

	case ActionDoneMsg:
		m.busy = false
		m.flash = msg.Text
		m.err = nil
		return m, fetchStatusCmd(m.client)

	case OutputClearedMsg:
		m.lines = nil
		m.refreshViewport()
		m.flash = "Output cleared"
		return m, nil

	case ErrorMsg:
		m.busy = false
		m.err = msg.Err
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, keys.Start):
		if m.busy || m.running() {
			return m, nil
		}
		m.busy = true
		m.flash = "Starting..."
		return m, startCmd(m.client)

	case key.Matches(msg, keys.Stop):
		if m.busy || !m.running() {
			return m, nil
		}
		m.busy = true
		m.flash = "Stopping..."
		return m, stopCmd(m.client)

	case key.Matches(msg, keys.Proxy):
		if m.busy || m.status == nil {
			return m, nil
		}
		m.busy = true
		return m, setSystemProxyCmd(m.client, !m.status.SystemProxyEnabled)

	case key.Matches(msg, keys.Clear):
		return m, clearOutputCmd(m.client)

	case key.Matches(msg, keys.Follow):
		m.follow = !m.follow
		if m.follow && m.ready {
			m.viewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, keys.Up), key.Matches(msg, keys.Down):
		m.follow = false
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		if m.viewport.AtBottom() {
			m.follow = true
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) running() bool {
	return m.status != nil && m.status.Running
}

// appendLines adds new output and trims to maxLines.
func (m *Model) appendLines(lines []string, seq uint64) {
	if seq < m.seq {
		// The daemon restarted and its sequence began again.
		m.lines = nil
	}
	m.seq = seq
	if len(lines) == 0 && m.lines != nil {
		return
	}
	m.lines = append(m.lines, lines...)
	if over := len(m.lines) - maxLines; over > 0 {
		m.lines = append([]string(nil), m.lines[over:]...)
	}
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderLines(m.lines))
	if m.follow {
		m.viewport.GotoBottom()
	}
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// header, status bar, help and the output border
	reserved := 1 + 1 + m.helpHeight() + 2
	h := m.height - reserved
	if h < 1 {
		h = 1
	}
	w := m.width - 2
	if w < 1 {
		w = 1
	}
	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = h
	}
	m.help.Width = m.width
	m.refreshViewport()
}

func (m Model) helpHeight() int {
	return strings.Count(m.help.View(keys), "\n") + 1
}

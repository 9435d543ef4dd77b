package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ech-workers/ech-client/internal/daemon/worker"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		outputBorderStyle.Render(m.viewport.View()),
		m.renderStatusBar(),
		m.help.View(keys),
	)
}

func (m Model) renderHeader() string {
	left := brandStyle.Render("ECH Client") + "  " + m.renderBadge()
	right := ""
	if m.status != nil && m.status.Server != "" {
		right = hintStyle.Render(m.status.Server)
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderBadge() string {
	st := m.status
	switch {
	case st == nil:
		return badgeStoppedStyle.Render("○ connecting")
	case st.State == "starting" || st.State == "stopping":
		return badgeBusyStyle.Render("◐ " + st.State)
	case st.ManagedRunning:
		return badgeRunningStyle.Render(fmt.Sprintf("● running (PID %d)", st.Pid))
	case st.ExternalRunning:
		return badgeExternalStyle.Render("● running (external)")
	default:
		return badgeStoppedStyle.Render("○ stopped")
	}
}

func (m Model) renderStatusBar() string {
	var parts []string
	if m.status != nil {
		if m.status.Listen != "" {
			parts = append(parts, "listen "+m.status.Listen)
		}
		if m.status.SystemProxyEnabled {
			parts = append(parts, "system proxy on")
		} else {
			parts = append(parts, "system proxy off")
		}
	}
	if !m.follow {
		parts = append(parts, "paused")
	}
	text := " " + strings.Join(parts, " │ ")
	switch {
	case m.err != nil:
		text += "  " + errorStyle.Render(m.err.Error())
	case m.flash != "":
		text += "  " + m.flash
	}
	return statusBarStyle.Width(m.width).Render(text)
}

func renderLines(lines []string) string {
	if len(lines) == 0 {
		return hintStyle.Render("No output yet.")
	}
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderLine(line))
	}
	return b.String()
}

// renderLine dims the stdout tag and colors stderr lines.
func renderLine(line string) string {
	if rest, ok := strings.CutPrefix(line, worker.StdoutTag); ok {
		return stdoutTagStyle.Render("│") + " " + rest
	}
	return stderrStyle.Render(line)
}

package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	refreshInterval = time.Second
	callTimeout     = 30 * time.Second
)

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func fetchStatusCmd(c Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		st, err := c.Status(ctx)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return StatusMsg{Status: st}
	}
}

func fetchOutputCmd(c Client, since uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		out, err := c.Output(ctx, since)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return OutputMsg{Lines: out.Lines, Seq: out.Seq}
	}
}

func startCmd(c Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		res, err := c.Start(ctx)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		if res.External {
			return ActionDoneMsg{Text: res.Message}
		}
		return ActionDoneMsg{Text: fmt.Sprintf("Started (PID %d)", res.GetPid())}
	}
}

func stopCmd(c Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		if err := c.Stop(ctx); err != nil {
			return ErrorMsg{Err: err}
		}
		return ActionDoneMsg{Text: "Stopped"}
	}
}

func setSystemProxyCmd(c Client, enabled bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		if err := c.SetSystemProxy(ctx, enabled); err != nil {
			return ErrorMsg{Err: err}
		}
		if enabled {
			return ActionDoneMsg{Text: "System proxy on"}
		}
		return ActionDoneMsg{Text: "System proxy off"}
	}
}

func clearOutputCmd(c Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		if err := c.ClearOutput(ctx); err != nil {
			return ErrorMsg{Err: err}
		}
		return OutputClearedMsg{}
	}
}

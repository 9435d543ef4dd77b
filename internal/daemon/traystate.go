package daemon

import (
	"context"

	"github.com/ech-workers/ech-client/internal/daemon/supervisor"
	"github.com/ech-workers/ech-client/internal/daemon/tray"
)

// TrayState adapts the App to the tray menu.
func (a *App) TrayState() tray.DaemonState {
	return &trayState{app: a}
}

type trayState struct {
	app *App
}

func (t *trayState) Snapshot() tray.Snapshot {
	return t.app.snapshot(t.app.sup.Status())
}

func (a *App) snapshot(st supervisor.Status) tray.Snapshot {
	snap := tray.Snapshot{
		Running:     st.Running,
		External:    st.ExternalRunning && !st.ManagedRunning,
		Busy:        st.State == supervisor.StateStarting || st.State == supervisor.StateStopping,
		SystemProxy: st.SystemProxyEnabled,
		Server:      st.Server,
		Listen:      st.Listen,
	}
	if info := a.Info(); info != nil {
		snap.HTTPAddr = info.HTTPAddr
	}
	return snap
}

func (t *trayState) Servers() []tray.ServerInfo {
	return t.app.servers()
}

func (a *App) servers() []tray.ServerInfo {
	current := ""
	if p, ok := a.store.CurrentServer(); ok {
		current = p.ID
	}
	var out []tray.ServerInfo
	for _, p := range a.store.ListServers() {
		out = append(out, tray.ServerInfo{ID: p.ID, Name: p.Name, Current: p.ID == current})
	}
	return out
}

func (t *trayState) Start() {
	if _, err := t.app.sup.Start(context.Background(), t.app.store.GetProxyConfig()); err != nil {
		t.app.log.WithError(err).Warn("tray: start failed")
	}
}

func (t *trayState) Stop() {
	if err := t.app.sup.Stop(context.Background()); err != nil {
		t.app.log.WithError(err).Warn("tray: stop failed")
	}
}

func (t *trayState) SetSystemProxy(enabled bool) {
	if err := t.app.sup.SetSystemProxy(enabled); err != nil {
		t.app.log.WithError(err).Warn("tray: system proxy change failed")
	}
}

func (t *trayState) SelectServer(id string) {
	if err := t.app.store.SetCurrentServer(id); err != nil {
		t.app.log.WithError(err).Warn("tray: select server failed")
		return
	}
	if err := t.app.store.Save(); err != nil {
		t.app.log.WithError(err).Warn("tray: failed to save config")
	}
	t.app.refresh()
}

func (t *trayState) RequestShutdown() {
	t.app.RequestShutdown()
}

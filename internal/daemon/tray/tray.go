package tray

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"
	"github.com/sirupsen/logrus"
)

const maxServerSlots = 10

var (
	state   DaemonState
	logger  logrus.FieldLogger = logrus.StandardLogger()
	onStart func()
	onExit  func()

	statusItem   *systray.MenuItem
	startItem    *systray.MenuItem
	stopItem     *systray.MenuItem
	proxyItem    *systray.MenuItem
	serversMenu  *systray.MenuItem
	noServerItem *systray.MenuItem
	quitItem     *systray.MenuItem

	// Pre-allocated server menu slots
	serverSlots [maxServerSlots]*systray.MenuItem

	// Maps slot index → server profile ID
	slotMu      sync.RWMutex
	slotServers [maxServerSlots]string

	// ready is closed once the menu items exist.
	ready     = make(chan struct{})
	readyOnce sync.Once
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStartFn is called when the tray is ready (launch the daemon services here).
// onExitFn is called when the tray exits (cleanup here).
func Run(s DaemonState, log logrus.FieldLogger, onStartFn, onExitFn func()) {
	state = s
	if log != nil {
		logger = log
	}
	onStart = onStartFn
	onExit = onExitFn
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	systray.SetTemplateIcon(iconData, iconData)
	systray.SetTitle("")
	systray.SetTooltip(formatTooltip(Snapshot{}))

	header := systray.AddMenuItem("ECH Client", "")
	header.Disable()

	statusItem = systray.AddMenuItem("Starting...", "")
	statusItem.Disable()

	systray.AddSeparator()

	startItem = systray.AddMenuItem("Start Proxy", "Start the ech-workers process")
	stopItem = systray.AddMenuItem("Stop Proxy", "Stop the ech-workers process")
	stopItem.Hide()
	proxyItem = systray.AddMenuItemCheckbox("System Proxy", "Route system traffic through the local proxy", false)

	systray.AddSeparator()

	serversMenu = systray.AddMenuItem("Servers", "")
	for i := 0; i < maxServerSlots; i++ {
		serverSlots[i] = serversMenu.AddSubMenuItemCheckbox("", "", false)
		serverSlots[i].Hide()
	}
	noServerItem = serversMenu.AddSubMenuItem("No servers", "")
	noServerItem.Disable()

	systray.AddSeparator()

	quitItem = systray.AddMenuItem("Quit", "Stop the proxy and exit")

	readyOnce.Do(func() { close(ready) })

	if onStart != nil {
		onStart()
	}
	if state != nil {
		Update(state.Snapshot(), state.Servers())
	}

	go handleClicks()
	for i := 0; i < maxServerSlots; i++ {
		go handleServerSlot(i)
	}
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

func handleClicks() {
	for {
		select {
		case <-startItem.ClickedCh:
			if state != nil {
				go state.Start()
			}

		case <-stopItem.ClickedCh:
			if state != nil {
				go state.Stop()
			}

		case <-proxyItem.ClickedCh:
			if state != nil {
				go state.SetSystemProxy(!proxyItem.Checked())
			}

		case <-quitItem.ClickedCh:
			if state != nil {
				state.RequestShutdown()
			}
		}
	}
}

func handleServerSlot(slot int) {
	for range serverSlots[slot].ClickedCh {
		slotMu.RLock()
		id := slotServers[slot]
		slotMu.RUnlock()

		if id == "" || state == nil {
			continue
		}
		logger.WithFields(logrus.Fields{"server_id": id, "slot": slot}).Info("tray: selecting server")
		go state.SelectServer(id)
	}
}

// Update refreshes the menu and tooltip. Calls made before the tray is
// ready are ignored.
func Update(snap Snapshot, servers []ServerInfo) {
	select {
	case <-ready:
	default:
		return
	}

	statusItem.SetTitle(formatStatus(snap))
	systray.SetTooltip(formatTooltip(snap))

	switch {
	case snap.Busy:
		startItem.Disable()
		stopItem.Disable()
	case snap.Running:
		startItem.Hide()
		stopItem.Enable()
		stopItem.Show()
	default:
		stopItem.Hide()
		startItem.Enable()
		startItem.Show()
	}

	if snap.SystemProxy {
		proxyItem.Check()
	} else {
		proxyItem.Uncheck()
	}

	updateServers(servers)
}

func updateServers(servers []ServerInfo) {
	slotMu.Lock()
	for i := 0; i < maxServerSlots; i++ {
		slotServers[i] = ""
	}
	for i, srv := range servers {
		if i >= maxServerSlots {
			break
		}
		slotServers[i] = srv.ID
	}
	slotMu.Unlock()

	for i := 0; i < maxServerSlots; i++ {
		serverSlots[i].Hide()
	}
	if len(servers) == 0 {
		noServerItem.Show()
		return
	}
	noServerItem.Hide()
	for i, srv := range servers {
		if i >= maxServerSlots {
			break
		}
		serverSlots[i].SetTitle(srv.Name)
		if srv.Current {
			serverSlots[i].Check()
		} else {
			serverSlots[i].Uncheck()
		}
		serverSlots[i].Show()
	}
}

func formatStatus(snap Snapshot) string {
	switch {
	case snap.Busy:
		return "Working..."
	case snap.External:
		return "Running (external process)"
	case snap.Running && snap.Listen != "":
		return fmt.Sprintf("Running on %s", snap.Listen)
	case snap.Running:
		return "Running"
	default:
		return "Stopped"
	}
}

func formatTooltip(snap Snapshot) string {
	tip := "ECH Client: " + formatStatus(snap)
	if snap.Server != "" && snap.Running {
		tip += " via " + snap.Server
	}
	if snap.SystemProxy {
		tip += " (system proxy on)"
	}
	return tip
}

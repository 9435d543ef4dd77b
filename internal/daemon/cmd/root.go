// Package cmd implements the ech-clientd command line.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ech-workers/ech-client/internal/config"
	"github.com/ech-workers/ech-client/internal/daemon"
	"github.com/ech-workers/ech-client/internal/daemon/tray"
)

var (
	flagForeground    bool
	flagPort          int
	flagHTTP          string
	flagWorkerDir     string
	flagNoSystemProxy bool
	flagLogLevel      string
)

var rootCmd = &cobra.Command{
	Use:           "ech-clientd",
	Short:         "Supervises the ech-workers proxy and the OS proxy setting",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDaemon,
}

func init() {
	rootCmd.Flags().BoolVar(&flagForeground, "foreground", false, "Run in foreground (no system tray)")
	rootCmd.Flags().IntVar(&flagPort, "port", -1, "gRPC port (0 for dynamic allocation, -1 to use settings)")
	rootCmd.Flags().StringVar(&flagHTTP, "http", "", `HTTP API address ("off" to disable)`)
	rootCmd.Flags().StringVar(&flagWorkerDir, "worker-dir", "", "Directory containing the ech-workers executable")
	rootCmd.Flags().BoolVar(&flagNoSystemProxy, "no-system-proxy", false, "Never touch the OS proxy settings")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// Execute runs the daemon command line.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ech-clientd:", err)
		return err
	}
	return nil
}

func runDaemon(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}
	if running {
		return fmt.Errorf("daemon already running on port %d (PID %d)", info.Port, info.PID)
	}

	app, err := daemon.New(daemon.Options{
		Port:          flagPort,
		HTTPListen:    flagHTTP,
		WorkerDir:     flagWorkerDir,
		NoSystemProxy: flagNoSystemProxy,
		LogLevel:      flagLogLevel,
	})
	if errors.Is(err, config.ErrDaemonLocked) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to initialize daemon: %w", err)
	}

	if flagForeground {
		app.Log().Info("running in foreground mode (no system tray)")
		return runForeground(app)
	}
	app.Log().Info("running in background mode (with system tray)")
	return runWithTray(app)
}

// runForeground runs the daemon without a system tray, blocking on signals.
func runForeground(app *daemon.App) error {
	defer app.Close()
	if err := app.Start(); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		app.Log().Infof("received signal %v, shutting down", sig)
	case <-app.Done():
	}
	return nil
}

// runWithTray runs the daemon with a system tray icon on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func runWithTray(app *daemon.App) error {
	var startErr error

	onStart := func() {
		if err := app.Start(); err != nil {
			startErr = err
			tray.Quit()
			return
		}

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-sigCh:
				app.Log().Infof("received signal %v, shutting down", sig)
			case <-app.Done():
			}
			tray.Quit()
		}()
	}

	// This blocks the main goroutine until the tray exits.
	tray.Run(app.TrayState(), app.Log(), onStart, app.Close)
	return startErr
}

package config

import (
	"errors"
	"os"
	"testing"

	"github.com/ech-workers/ech-client/internal/models"
)

func TestDaemonInfoLifecycle(t *testing.T) {
	homeOverride = t.TempDir()
	t.Cleanup(func() { homeOverride = "" })

	if info, err := LoadDaemonInfo(); err != nil || info != nil {
		t.Fatalf("LoadDaemonInfo() = %v, %v; want nil, nil", info, err)
	}

	want := models.NewDaemonInfo("127.0.0.1", 40123, "127.0.0.1:30080", os.Getpid())
	if err := SaveDaemonInfo(want); err != nil {
		t.Fatalf("SaveDaemonInfo() error = %v", err)
	}

	running, got, err := IsDaemonRunning()
	if err != nil {
		t.Fatalf("IsDaemonRunning() error = %v", err)
	}
	if !running {
		t.Error("IsDaemonRunning() = false for own pid")
	}
	if got.Port != want.Port || got.HTTPAddr != want.HTTPAddr || got.PID != want.PID {
		t.Errorf("info = %+v, want %+v", got, want)
	}

	if err := RemoveDaemonInfo(); err != nil {
		t.Fatalf("RemoveDaemonInfo() error = %v", err)
	}
	if err := RemoveDaemonInfo(); err != nil {
		t.Errorf("second RemoveDaemonInfo() error = %v", err)
	}
}

func TestDaemonLockIsExclusive(t *testing.T) {
	homeOverride = t.TempDir()
	t.Cleanup(func() { homeOverride = "" })

	first, err := AcquireDaemonLock()
	if err != nil {
		t.Fatalf("AcquireDaemonLock() error = %v", err)
	}

	if _, err := AcquireDaemonLock(); !errors.Is(err, ErrDaemonLocked) {
		t.Fatalf("second AcquireDaemonLock() error = %v, want ErrDaemonLocked", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	again, err := AcquireDaemonLock()
	if err != nil {
		t.Fatalf("AcquireDaemonLock() after release error = %v", err)
	}
	_ = again.Release()
}

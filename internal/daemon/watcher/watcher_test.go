package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ech-workers/ech-client/internal/logging"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path   string
		want   EventType
		wantOK bool
	}{
		{"/home/u/.ech-client/config.yaml", EventConfigChanged, true},
		{"/home/u/.ech-client/settings.yaml", EventSettingsChanged, true},
		{"/home/u/.ech-client/daemon.yaml", 0, false},
		{"/home/u/.ech-client/config.yaml.tmp", 0, false},
	}
	for _, tt := range tests {
		got, ok := classify(tt.path)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("classify(%q) = %v, %v; want %v, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestWatcherDebouncesConfigWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, logging.Discard())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.SetDebounce(50 * time.Millisecond)
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "config.yaml")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("version: 1\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		if ev.Type != EventConfigChanged || ev.Path != path {
			t.Errorf("unexpected event %+v", ev)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event received")
	}

	select {
	case ev := <-w.Events():
		t.Errorf("expected a single debounced event, got another: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestStopIsIdempotent(t *testing.T) {
	w, err := New(t.TempDir(), logging.Discard())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	w.Stop()
	w.Stop()
}

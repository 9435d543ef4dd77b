package jobs

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/ech-workers/ech-client/internal/logging"
)

func TestAfterRunsOnce(t *testing.T) {
	s, err := New(logging.Discard())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	var runs atomic.Int32
	done := make(chan struct{})
	if err := s.After("resume", 20*time.Millisecond, func() {
		if runs.Add(1) == 1 {
			close(done)
		}
	}); err != nil {
		t.Fatalf("After() error = %v", err)
	}
	s.Start()
	defer s.Shutdown()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("one-time job never ran")
	}
	time.Sleep(100 * time.Millisecond)
	if n := runs.Load(); n != 1 {
		t.Errorf("runs = %d, want 1", n)
	}
}

func TestEveryRepeats(t *testing.T) {
	s, err := New(logging.Discard())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	var runs atomic.Int32
	if err := s.Every("poll", 20*time.Millisecond, func() { runs.Add(1) }); err != nil {
		t.Fatalf("Every() error = %v", err)
	}
	s.Start()
	defer s.Shutdown()

	deadline := time.Now().Add(5 * time.Second)
	for runs.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if n := runs.Load(); n < 3 {
		t.Errorf("runs = %d, want at least 3", n)
	}
}

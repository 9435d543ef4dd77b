package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ech-workers/ech-client/internal/daemon/supervisor"
	"github.com/ech-workers/ech-client/internal/daemon/worker"
)

var _ supervisor.Observer = (*Metrics)(nil)

func TestObserver(t *testing.T) {
	m := New(nil)

	m.StartAttempt(supervisor.OutcomeStarted)
	m.StartAttempt(supervisor.OutcomeStarted)
	m.StartAttempt(supervisor.OutcomeFailed)
	m.Stopped()
	m.WorkerExited(false)

	if got := testutil.ToFloat64(m.Starts.WithLabelValues(supervisor.OutcomeStarted)); got != 2 {
		t.Errorf("started = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Starts.WithLabelValues(supervisor.OutcomeFailed)); got != 1 {
		t.Errorf("failed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Stops); got != 1 {
		t.Errorf("stops = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Exits.WithLabelValues("false")); got != 1 {
		t.Errorf("unexpected exits = %v, want 1", got)
	}
}

func TestObserveStatus(t *testing.T) {
	m := New(nil)
	m.ObserveStatus(supervisor.Status{ManagedRunning: true, SystemProxyEnabled: true})

	if got := testutil.ToFloat64(m.WorkerRunning.WithLabelValues("managed")); got != 1 {
		t.Errorf("managed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.WorkerRunning.WithLabelValues("external")); got != 0 {
		t.Errorf("external = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.SystemProxyEnabled); got != 1 {
		t.Errorf("system proxy = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	out := worker.NewOutputLog(10)
	out.Append("a")
	out.Append("b")
	m := New(out)
	m.Stopped()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	for _, want := range []string{"ech_client_worker_stops_total 1", "ech_client_output_lines 2"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

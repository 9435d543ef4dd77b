package notify

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestDisabledNotifierOnlyLogs(t *testing.T) {
	log, hook := test.NewNullLogger()
	d := New(false, log)

	d.Notify("ech-workers exited", "exit code 1")

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("no log entry written")
	}
	if entry.Level != logrus.InfoLevel {
		t.Errorf("level = %v, want info", entry.Level)
	}
	if entry.Message != "exit code 1" {
		t.Errorf("message = %q, want %q", entry.Message, "exit code 1")
	}
	if entry.Data["title"] != "ech-workers exited" {
		t.Errorf("title field = %v", entry.Data["title"])
	}
}

func TestNewNilLogger(t *testing.T) {
	if d := New(false, nil); d.log == nil {
		t.Error("nil logger not replaced")
	}
}

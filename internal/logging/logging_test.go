package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		want    logrus.Level
		wantErr bool
	}{
		{"", logrus.InfoLevel, false},
		{"debug", logrus.DebugLevel, false},
		{"warn", logrus.WarnLevel, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, _, err := New(Options{Level: tt.level, Stderr: &bytes.Buffer{}})
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if l.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", l.GetLevel(), tt.want)
			}
		})
	}
}

func TestNewWritesFileAndStderr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "daemon.log")
	var stderr bytes.Buffer

	l, closer, err := New(Options{File: path, Stderr: &stderr})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	Component(l, "supervisor").Info("worker started")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for name, out := range map[string]string{"file": string(data), "stderr": stderr.String()} {
		if !strings.Contains(out, "worker started") {
			t.Errorf("%s missing message: %q", name, out)
		}
		if !strings.Contains(out, "component=supervisor") {
			t.Errorf("%s missing component field: %q", name, out)
		}
	}
}

func TestComponentNilLogger(t *testing.T) {
	entry := Component(nil, "census")
	if e, ok := entry.(*logrus.Entry); !ok || e.Data["component"] != "census" {
		t.Errorf("Component(nil) = %#v, want entry tagged census", entry)
	}
}

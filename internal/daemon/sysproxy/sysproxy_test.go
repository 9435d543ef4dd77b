package sysproxy

import (
	"errors"
	"testing"

	"github.com/ech-workers/ech-client/internal/logging"
	"github.com/ech-workers/ech-client/internal/models"
)

func newTestController() (*Controller, *MemoryBackend) {
	b := NewMemoryBackend()
	return NewController(b, logging.Discard()), b
}

func TestEnableSetsEndpoint(t *testing.T) {
	c, b := newTestController()

	if err := c.Enable("127.0.0.1", 30000); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	s, err := c.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if !s.Enabled || s.Endpoint != "127.0.0.1:30000" {
		t.Errorf("Current() = %+v, want enabled at 127.0.0.1:30000", s)
	}
	if notifies, _ := b.Counts(); notifies != 1 {
		t.Errorf("notifies = %d, want 1", notifies)
	}
}

func TestEnableListen(t *testing.T) {
	tests := []struct {
		listen  string
		want    string
		wantErr bool
	}{
		{listen: "127.0.0.1:30000", want: "127.0.0.1:30000"},
		{listen: "0.0.0.0:1080", want: "127.0.0.1:1080"},
		{listen: "[::1]:8080", want: "[::1]:8080"},
		{listen: "nonsense", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.listen, func(t *testing.T) {
			c, _ := newTestController()
			err := c.EnableListen(tt.listen)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EnableListen() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			s, _ := c.Current()
			if s.Endpoint != tt.want {
				t.Errorf("endpoint = %q, want %q", s.Endpoint, tt.want)
			}
		})
	}
}

func TestEnableRejectsBadPort(t *testing.T) {
	c, _ := newTestController()
	if err := c.Enable("127.0.0.1", 0); !errors.Is(err, models.ErrInvalidConfig) {
		t.Errorf("Enable() error = %v, want ErrInvalidConfig", err)
	}
}

func TestEnableNotifyFailureSwallowed(t *testing.T) {
	c, b := newTestController()
	b.NotifyErr = errors.New("broadcast failed")
	if err := c.Enable("127.0.0.1", 30000); err != nil {
		t.Fatalf("Enable() error = %v, want nil", err)
	}
	if on, _ := c.IsEnabled(); !on {
		t.Error("proxy should be enabled despite notify failure")
	}
}

func TestDisableWithoutEndpoint(t *testing.T) {
	c, b := newTestController()

	if err := c.Disable(); err != nil {
		t.Fatalf("Disable() error = %v", err)
	}
	if on, _ := c.IsEnabled(); on {
		t.Error("IsEnabled() = true after Disable")
	}
	if _, reasserts := b.Counts(); reasserts != 1 {
		t.Errorf("reasserts = %d, want 1", reasserts)
	}
}

func TestDisableReassertFailureSwallowed(t *testing.T) {
	c, b := newTestController()
	_ = c.Enable("127.0.0.1", 30000)
	b.ReassertErr = errors.New("powershell missing")

	if err := c.Disable(); err != nil {
		t.Fatalf("Disable() error = %v, want nil", err)
	}
}

func TestDisablePrimaryFailure(t *testing.T) {
	c, b := newTestController()
	b.DisableErr = ErrSettingsAccessDenied

	if err := c.Disable(); !errors.Is(err, ErrSettingsAccessDenied) {
		t.Fatalf("Disable() error = %v, want ErrSettingsAccessDenied", err)
	}
	if _, reasserts := b.Counts(); reasserts != 0 {
		t.Error("re-assert should not run when the primary write fails")
	}
}

func TestUnsupportedBackend(t *testing.T) {
	c := NewController(unsupportedBackend{}, logging.Discard())
	if err := c.Enable("127.0.0.1", 30000); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Enable() error = %v, want ErrUnsupported", err)
	}
	if err := c.Disable(); err != nil {
		t.Errorf("Disable() error = %v, want nil", err)
	}
}
